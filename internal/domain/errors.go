package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound classifies every "entity does not exist" failure. The HTTP
	// layer maps this class to 404.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable classifies internal store failures. The HTTP layer maps
	// this class to 500.
	ErrUnavailable = errors.New("store unavailable")

	// ErrMenusRetrieve is returned when the menu catalog cannot be read.
	ErrMenusRetrieve = fmt.Errorf("error when retrieving menus: %w", ErrUnavailable)
	// ErrTablesRetrieve is returned when the table registry cannot be read.
	ErrTablesRetrieve = fmt.Errorf("error when retrieving tables: %w", ErrUnavailable)
)

// TableNotFoundError reports a table ID that is absent from the registry.
type TableNotFoundError struct {
	TableID uint32
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %d not found", e.TableID)
}

func (e *TableNotFoundError) Is(target error) bool { return target == ErrNotFound }

// MenuNotFoundError reports a menu item ID that is absent from the catalog.
type MenuNotFoundError struct {
	ItemID uint32
}

func (e *MenuNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ItemID)
}

func (e *MenuNotFoundError) Is(target error) bool { return target == ErrNotFound }

// NoOrderForTableError reports a table that has no order at all.
type NoOrderForTableError struct {
	TableID uint32
}

func (e *NoOrderForTableError) Error() string {
	return fmt.Sprintf("no order exists for table %d", e.TableID)
}

func (e *NoOrderForTableError) Is(target error) bool { return target == ErrNotFound }

// NoMatchingItemError reports a table whose order does not contain the
// requested item. Distinct from NoOrderForTableError so callers can tell
// "never ordered" apart from "ordered, but not this item".
type NoMatchingItemError struct {
	TableID uint32
	ItemID  uint32
}

func (e *NoMatchingItemError) Error() string {
	return fmt.Sprintf("no item %d in the order for table %d", e.ItemID, e.TableID)
}

func (e *NoMatchingItemError) Is(target error) bool { return target == ErrNotFound }

// StoreError wraps a backend failure on an order store write or read.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("order store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrUnavailable }
