package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTableID   = errors.New("invalid table id")
	ErrInvalidRowID     = errors.New("invalid row id")
	ErrInvalidSchema    = errors.New("invalid schema")
	ErrInvalidSchemaTag = errors.New("invalid schema tag")
	ErrInvalidSyncTag   = errors.New("invalid sync tag")
	ErrEmptyValues      = errors.New("row values are required")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrInvalidValue     = errors.New("value does not match column type")
)
