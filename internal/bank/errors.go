package bank

import "fmt"

// FormatError indicates a bank file could not be used: it was unreadable,
// not valid YAML, or missing a required field.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("question bank %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// CapacityError indicates a sample request larger than the bank.
type CapacityError struct {
	Bank      string
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bank %q: requested %d questions but only %d available", e.Bank, e.Requested, e.Available)
}
