package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is one row of the paginated purchase listing.
type Purchase struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UsuarioID   uuid.UUID       `json:"usuario_id" db:"usuario_id"`
	MetodoPago  string          `json:"metodo_pago" db:"metodo_pago"`
	TotalPrice  decimal.Decimal `json:"total_price" db:"total_price"`
	FechaCompra time.Time       `json:"fecha_compra" db:"fecha_compra"`
	Estado      string          `json:"estado" db:"estado"`
}

// PurchaseDetail is a purchase joined with its owning user, as returned by
// the detail endpoint.
type PurchaseDetail struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UsuarioID     uuid.UUID       `json:"usuario_id" db:"usuario_id"`
	NombreUsuario string          `json:"nombre_usuario" db:"nombre_usuario"`
	EmailUsuario  string          `json:"email_usuario" db:"email_usuario"`
	MetodoPago    string          `json:"metodo_pago" db:"metodo_pago"`
	TotalPrice    decimal.Decimal `json:"total_price" db:"total_price"`
	FechaCompra   time.Time       `json:"fecha_compra" db:"fecha_compra"`
	Estado        string          `json:"estado" db:"estado"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// PurchaseLineItem is one product row belonging to a purchase, joined with
// the product it references. Line items are read-only.
type PurchaseLineItem struct {
	ProductoID     uuid.UUID       `json:"producto_id" db:"producto_id"`
	NombreProducto string          `json:"nombre_producto" db:"nombre_producto"`
	Cantidad       int             `json:"cantidad" db:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" db:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal" db:"subtotal"`
}
