package service

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-table-sync/internal/validators"
	"github.com/MKhiriev/go-table-sync/models"
)

// TableValidationService checks requests before they reach the wrapped
// TableService. Every failure wraps ErrInvalidDataProvided.
type TableValidationService struct {
	inner     TableService
	validator validators.Validator
}

func NewTableValidationService() TableServiceWrapper {
	return &TableValidationService{
		validator: validators.NewTableValidator(),
	}
}

func (v *TableValidationService) Wrap(inner TableService) TableService {
	v.inner = inner
	return v
}

func (v *TableValidationService) check(ctx context.Context, objs ...any) error {
	for _, obj := range objs {
		if err := v.validator.Validate(ctx, obj); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	return nil
}

func (v *TableValidationService) ListTables(ctx context.Context) ([]models.RemoteTable, error) {
	return v.inner.ListTables(ctx)
}

func (v *TableValidationService) CreateTable(ctx context.Context, tableID string, schema models.Schema) (models.SyncTag, error) {
	if err := v.check(ctx, validators.TableID(tableID), schema); err != nil {
		return models.SyncTag{}, err
	}
	return v.inner.CreateTable(ctx, tableID, schema)
}

func (v *TableValidationService) DeleteTable(ctx context.Context, tableID string) error {
	if err := v.check(ctx, validators.TableID(tableID)); err != nil {
		return err
	}
	return v.inner.DeleteTable(ctx, tableID)
}

func (v *TableValidationService) Changes(ctx context.Context, tableID string, since models.SyncTag) (models.ChangesResponse, error) {
	if err := v.check(ctx, validators.TableID(tableID), since); err != nil {
		return models.ChangesResponse{}, err
	}
	return v.inner.Changes(ctx, tableID, since)
}

// PutRow checks the values against the current remote schema.
func (v *TableValidationService) PutRow(ctx context.Context, tableID, rowID string, base models.SyncTag, req models.PutRowRequest) (models.RowWriteResponse, error) {
	if err := v.check(ctx, validators.TableID(tableID), validators.RowID(rowID), base); err != nil {
		return models.RowWriteResponse{}, err
	}

	current, err := v.inner.GetSchema(ctx, tableID)
	if err != nil {
		return models.RowWriteResponse{}, err
	}
	if err = v.check(ctx, validators.RowValues{Schema: current.Schema, Values: req.Values}); err != nil {
		return models.RowWriteResponse{}, err
	}

	return v.inner.PutRow(ctx, tableID, rowID, base, req)
}

func (v *TableValidationService) DeleteRow(ctx context.Context, tableID, rowID, versionTag string, base models.SyncTag) (models.RowWriteResponse, error) {
	if err := v.check(ctx, validators.TableID(tableID), validators.RowID(rowID), base); err != nil {
		return models.RowWriteResponse{}, err
	}
	return v.inner.DeleteRow(ctx, tableID, rowID, versionTag, base)
}

func (v *TableValidationService) GetSchema(ctx context.Context, tableID string) (models.SchemaResponse, error) {
	if err := v.check(ctx, validators.TableID(tableID)); err != nil {
		return models.SchemaResponse{}, err
	}
	return v.inner.GetSchema(ctx, tableID)
}

func (v *TableValidationService) SetSchema(ctx context.Context, tableID string, req models.SetSchemaRequest) (models.SyncTag, error) {
	if err := v.check(ctx, validators.TableID(tableID), req); err != nil {
		return models.SyncTag{}, err
	}
	return v.inner.SetSchema(ctx, tableID, req)
}

func (v *TableValidationService) Manifest(ctx context.Context, tableID string) ([]models.ManifestEntry, error) {
	if err := v.check(ctx, validators.TableID(tableID)); err != nil {
		return nil, err
	}
	return v.inner.Manifest(ctx, tableID)
}

func (v *TableValidationService) OpenFile(ctx context.Context, tableID, name string) (*os.File, error) {
	if err := v.check(ctx, validators.TableID(tableID)); err != nil {
		return nil, err
	}
	return v.inner.OpenFile(ctx, tableID, name)
}
