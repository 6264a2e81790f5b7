package postgres

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// Table describes how an entity type maps onto one relational table.
// Columns, Values and Fields must stay aligned position by position.
type Table[T any, K comparable] struct {
	// Name is the table name. It doubles as the entity label in errors.
	Name string
	// Key is the primary-key column. It must appear in Columns.
	Key string
	// Columns lists every persisted column of the table.
	Columns []string
	// KeyOf extracts the primary key from an entity.
	KeyOf func(e *T) K
	// Values returns the column values of e for INSERT and UPDATE.
	Values func(e *T) []any
	// Fields returns scan destinations inside e.
	Fields func(e *T) []any
	// Relations lists the navigations that can be loaded eagerly.
	Relations map[domain.Relation]Join[T]
	// Sortable lists the columns accepted as an order field.
	Sortable []string
}

// Join loads one optional related row through a LEFT JOIN.
type Join[T any] struct {
	Table   string
	On      string
	Columns []string
	// Bind returns scan destinations for Columns and an attach func that
	// copies the scanned values into e once the row has been read.
	Bind func(e *T) (dest []any, attach func())
}

func (t Table[T, K]) qualify(col string) string {
	return t.Name + "." + col
}

func (t Table[T, K]) selectColumns() []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = t.qualify(c)
	}
	return cols
}

func (t Table[T, K]) join(rel domain.Relation) (Join[T], error) {
	j, ok := t.Relations[rel]
	if !ok {
		return Join[T]{}, domain.NewValidationError("include", fmt.Sprintf("unknown relation %q", rel))
	}
	return j, nil
}

func (t Table[T, K]) orderColumn(o domain.Order) (string, error) {
	if !slices.Contains(t.Sortable, o.Field) {
		return "", domain.NewValidationError("order", fmt.Sprintf("unknown field %q", o.Field))
	}
	return t.qualify(o.Field), nil
}

func (t Table[T, K]) check() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("table: empty name")
	case !slices.Contains(t.Columns, t.Key):
		return fmt.Errorf("table %s: key %q is not a column", t.Name, t.Key)
	case t.KeyOf == nil || t.Values == nil || t.Fields == nil:
		return fmt.Errorf("table %s: KeyOf, Values and Fields are required", t.Name)
	}
	for rel, j := range t.Relations {
		if j.Bind == nil || j.Table == "" || len(j.Columns) == 0 {
			return fmt.Errorf("table %s: relation %q is incomplete", t.Name, rel)
		}
	}
	return nil
}
