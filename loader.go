package expense

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// LoadLedger opens and decodes the ledger document at path.
//
// If the document does not exist yet, a new empty ledger is created with the balance returned by
// opening, and created is true. The caller is expected to save it.
//
// The file is not locked: concurrent writers are not supported and the last one to save wins.
func LoadLedger(path string, opening func() (Money, error)) (ledger *Ledger, created bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("ledger does not exist, creating a new one", "path", path)
		balance, err := opening()
		if err != nil {
			return nil, false, fmt.Errorf("could not get the opening balance: %w", err)
		}
		return NewLedger(balance), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: could not open ledger file %q: %w", ErrStorage, path, err)
	}
	defer f.Close()

	ledger, err = DecodeLedger(f)
	if err != nil {
		return nil, false, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	slog.Debug("ledger loaded", "path", path, "entries", ledger.Len(), "balance", ledger.Balance().String())
	return ledger, false, nil
}

// RepairLedgerFile decodes the ledger document at path with RepairLedger.
func RepairLedgerFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open ledger file %q: %w", ErrStorage, path, err)
	}
	defer f.Close()

	ledger, err := RepairLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not repair ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger document to path, creating the parent directory if needed.
func SaveLedger(path string, ledger *Ledger) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrStorage, path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: error opening ledger file %q for writing: %w", ErrStorage, path, err)
	}
	defer file.Close()

	if err := EncodeLedger(file, ledger); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: error closing ledger file %q: %w", ErrStorage, path, err)
	}
	slog.Debug("ledger saved", "path", path, "entries", ledger.Len())
	return nil
}
