package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoFieldsToUpdate is returned when a sparse update record carries no
// fields at all.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// ProductUpdate is a sparse update record: each field is independently
// optional and a nil field is never touched by the generated statement.
type ProductUpdate struct {
	Nombre      *string
	CategoriaID *uuid.UUID
	Precio      *decimal.Decimal
	Stock       *int
}

// IsEmpty reports whether no field is set.
func (u ProductUpdate) IsEmpty() bool {
	return u.Nombre == nil && u.CategoriaID == nil && u.Precio == nil && u.Stock == nil
}

// buildProductUpdate generates a parameterized UPDATE statement touching only
// the supplied fields. Assignments always follow the canonical column order
// (nombre, categoria_id, precio, stock) regardless of how the record was
// filled, so generated statements are deterministic; the id is bound as the
// final parameter.
func buildProductUpdate(id uuid.UUID, update ProductUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	assignments := []string{}
	args := []any{}

	if update.Nombre != nil {
		args = append(args, *update.Nombre)
		assignments = append(assignments, fmt.Sprintf("nombre = $%d", len(args)))
	}
	if update.CategoriaID != nil {
		args = append(args, *update.CategoriaID)
		assignments = append(assignments, fmt.Sprintf("categoria_id = $%d", len(args)))
	}
	if update.Precio != nil {
		args = append(args, *update.Precio)
		assignments = append(assignments, fmt.Sprintf("precio = $%d", len(args)))
	}
	if update.Stock != nil {
		args = append(args, *update.Stock)
		assignments = append(assignments, fmt.Sprintf("stock = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE producto SET %s WHERE id = $%d RETURNING id, nombre, categoria_id, precio, stock",
		strings.Join(assignments, ", "),
		len(args),
	)

	return query, args, nil
}
