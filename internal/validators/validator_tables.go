package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-table-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTableID    = "table_id"
	FieldRowID      = "row_id"
	FieldSchema     = "schema"
	FieldSchemaETag = "schema_etag"
	FieldValues     = "values"
	FieldSyncTag    = "sync_tag"
)

// DateLayout is the accepted format of date cells.
const DateLayout = time.DateOnly

// RowValues pairs row cells with the schema they must conform to. An empty
// cell is always valid: it clears the value.
type RowValues struct {
	Schema models.Schema
	Values map[string]string
}

// TableID is a table identifier from a request path.
type TableID string

// RowID is a row identifier from a request path.
type RowID string

// TableValidator implements [Validator] for the table service requests.
type TableValidator struct{}

// NewTableValidator constructs a TableValidator.
func NewTableValidator() Validator {
	return &TableValidator{}
}

func (v *TableValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case TableID:
		return validateID(string(value), ErrInvalidTableID)
	case RowID:
		return validateID(string(value), ErrInvalidRowID)

	case models.Schema:
		return validateSchema(value)
	case *models.Schema:
		return validateSchema(*value)

	case models.SyncTag:
		return validateSyncTag(value)

	case models.CreateTableRequest:
		return validateSchema(value.Schema)
	case *models.CreateTableRequest:
		return validateSchema(value.Schema)

	case models.SetSchemaRequest:
		return v.validateSetSchemaRequest(value, fields...)
	case *models.SetSchemaRequest:
		return v.validateSetSchemaRequest(*value, fields...)

	case RowValues:
		return validateRowValues(value)
	case *RowValues:
		return validateRowValues(*value)

	default:
		return ErrUnsupportedType
	}
}

func validateID(id string, kind error) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "/\\") {
		return fmt.Errorf("%w: %q", kind, id)
	}
	return nil
}

func validateSchema(schema models.Schema) error {
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return nil
}

func validateSyncTag(tag models.SyncTag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSyncTag, err)
	}
	return nil
}

func (v *TableValidator) validateSetSchemaRequest(request models.SetSchemaRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSchemaETag, FieldSchema}
	}

	for _, f := range fields {
		switch f {
		case FieldSchemaETag:
			if request.SchemaETag == "" || strings.Contains(request.SchemaETag, models.SyncTagDelimiter) {
				return ErrInvalidSchemaTag
			}
		case FieldSchema:
			if err := validateSchema(request.Schema); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRowValues(row RowValues) error {
	if row.Values == nil {
		return ErrEmptyValues
	}

	types := make(map[string]models.ColumnType, len(row.Schema.Columns))
	for _, c := range row.Schema.Columns {
		types[c.Key] = c.Type
	}

	for key, value := range row.Values {
		colType, ok := types[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
		if value == "" {
			continue
		}
		if err := checkValue(colType, value); err != nil {
			return fmt.Errorf("%w: column %q: %w", ErrInvalidValue, key, err)
		}
	}

	return nil
}

func checkValue(colType models.ColumnType, value string) error {
	var err error
	switch colType {
	case models.ColumnInteger:
		_, err = strconv.ParseInt(value, 10, 64)
	case models.ColumnNumber:
		_, err = strconv.ParseFloat(value, 64)
	case models.ColumnBool:
		_, err = strconv.ParseBool(value)
	case models.ColumnDate:
		_, err = time.Parse(DateLayout, value)
	}
	return err
}
