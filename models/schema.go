package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumnType is returned for column types outside the supported set.
	ErrUnknownColumnType = errors.New("unknown column type")
	// ErrInvalidSchema is returned when a schema fails validation.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ColumnType is the declared type of a table column.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnInteger ColumnType = "integer"
	ColumnNumber  ColumnType = "number"
	ColumnBool    ColumnType = "bool"
	ColumnDate    ColumnType = "date"
)

// Validate rejects column types outside the closed set.
func (t ColumnType) Validate() error {
	switch t {
	case ColumnString, ColumnInteger, ColumnNumber, ColumnBool, ColumnDate:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownColumnType, string(t))
}

// Column is a single column definition.
type Column struct {
	Key  string     `json:"key"`
	Type ColumnType `json:"type"`
}

// Schema describes the columns and the key/value properties of a table. It is
// versioned by [SyncTag.SchemaVersion].
type Schema struct {
	Columns    []Column          `json:"columns"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Validate checks column keys are present and unique and every type is known.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Columns))
	for i, c := range s.Columns {
		if c.Key == "" {
			return fmt.Errorf("%w: column %d has empty key", ErrInvalidSchema, i)
		}
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, c.Key)
		}
		seen[c.Key] = struct{}{}

		if err := c.Type.Validate(); err != nil {
			return fmt.Errorf("%w: column %q: %w", ErrInvalidSchema, c.Key, err)
		}
	}
	return nil
}

// HasColumn reports whether key is a declared column.
func (s Schema) HasColumn(key string) bool {
	for _, c := range s.Columns {
		if c.Key == key {
			return true
		}
	}
	return false
}
