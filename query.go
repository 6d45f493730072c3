package expense

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the ledger document, as it would be saved.
//
//	$.Balance
//	$.Entry[?(@.Kind=="C")].Amount
//
// Numbers are returned as float64, as decoded by encoding/json.
func Query(ledger *Ledger, path string) (any, error) {
	var b bytes.Buffer
	if err := EncodeLedger(&b, ledger); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(b.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("error decoding ledger document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
