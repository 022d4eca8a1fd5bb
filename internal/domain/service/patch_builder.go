package service

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// PatchBuilder builds partial UPDATE statements for a single row by primary id.
// Only columns on the allow-list may be written.
type PatchBuilder struct {
	allowed       map[string]struct{}
	versionColumn string
}

// PatchOption configures a PatchBuilder.
type PatchOption func(*PatchBuilder)

// WithVersionColumn makes every statement also increment the given column.
func WithVersionColumn(column string) PatchOption {
	return func(b *PatchBuilder) {
		b.versionColumn = column
	}
}

// NewPatchBuilder creates a builder accepting only the given columns.
func NewPatchBuilder(allowed []string, opts ...PatchOption) *PatchBuilder {
	b := &PatchBuilder{allowed: make(map[string]struct{}, len(allowed))}
	for _, column := range allowed {
		b.allowed[column] = struct{}{}
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Allowed reports whether the column may be patched.
func (b *PatchBuilder) Allowed(column string) bool {
	_, ok := b.allowed[column]

	return ok
}

// Build returns `UPDATE table SET col = ?, ... WHERE id = ?` for the given fields.
// Columns are emitted in sorted order. Structured values are bound as JSON text,
// scalars as-is. An empty field set is rejected with ErrEmptyPatch.
func (b *PatchBuilder) Build(table string, id any, fields map[string]any) (repository.Statement, error) {
	if len(fields) == 0 {
		return repository.Statement{}, domainerrors.ErrEmptyPatch
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if !b.Allowed(column) {
			return repository.Statement{}, domainerrors.ErrFieldNotAllowed.WithDetails(column)
		}
		columns = append(columns, column)
	}
	slices.Sort(columns)

	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		value, err := bindValue(fields[column])
		if err != nil {
			return repository.Statement{}, errors.Wrapf(err, "failed to encode field %s", column)
		}
		assignments = append(assignments, quoteIdent(column)+" = ?")
		args = append(args, value)
	}
	if b.versionColumn != "" {
		assignments = append(assignments, quoteIdent(b.versionColumn)+" = "+quoteIdent(b.versionColumn)+" + 1")
	}
	args = append(args, id)

	sql := "UPDATE " + quoteIdent(table) + " SET " + strings.Join(assignments, ", ") + " WHERE " + quoteIdent("id") + " = ?"

	return repository.Statement{SQL: sql, Args: args}, nil
}

func bindValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, time.Time, []byte:
		return v, nil
	case json.RawMessage:
		return string(v), nil
	case driver.Valuer:
		return v, nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return string(encoded), nil
	default:
		return rv.Interface(), nil
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
