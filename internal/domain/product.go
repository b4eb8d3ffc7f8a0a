package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a pharmacy product. Reads always carry the name of the
// owning category; JSON field names follow the public API contract.
type Product struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Nombre          string          `json:"nombre" db:"nombre"`
	CategoriaID     uuid.UUID       `json:"categoria_id" db:"categoria_id"`
	Precio          decimal.Decimal `json:"precio" db:"precio"`
	Stock           int             `json:"stock" db:"stock"`
	CategoriaNombre string          `json:"categoria_nombre" db:"categoria_nombre"`
}

// Category groups products. It is referenced by products but never mutated
// through this API.
type Category struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Nombre string    `json:"nombre" db:"nombre"`
}
