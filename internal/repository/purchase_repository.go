package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmacia-api/internal/domain"

	"github.com/google/uuid"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository defines read access to purchases and their line items.
// Purchases are created elsewhere; this API never writes them.
type PurchaseRepository interface {
	List(ctx context.Context, limit, offset int, estado string) ([]*domain.Purchase, error)
	Count(ctx context.Context, estado string) (int, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseDetail, error)
	FindLineItems(ctx context.Context, purchaseID uuid.UUID) ([]*domain.PurchaseLineItem, error)
}

type purchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new instance of PurchaseRepository
func NewPurchaseRepository(db *sql.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// List retrieves one page of purchases ordered by purchase date, newest
// first. When estado is non-empty both this query and Count must apply the
// same equality predicate; here the filter is bound after limit and offset.
func (r *purchaseRepository) List(ctx context.Context, limit, offset int, estado string) ([]*domain.Purchase, error) {
	query := `
		SELECT id, usuario_id, metodo_pago, total_price, fecha_compra, estado
		FROM compra
	`
	args := []any{limit, offset}

	if estado != "" {
		query += ` WHERE estado = $3`
		args = append(args, estado)
	}
	query += " ORDER BY fecha_compra DESC LIMIT $1 OFFSET $2"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := []*domain.Purchase{}
	for rows.Next() {
		purchase := &domain.Purchase{}
		err := rows.Scan(
			&purchase.ID,
			&purchase.UsuarioID,
			&purchase.MetodoPago,
			&purchase.TotalPrice,
			&purchase.FechaCompra,
			&purchase.Estado,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	return purchases, nil
}

// Count returns the number of purchases matching the optional estado filter.
// The filter value is the only parameter of this statement.
func (r *purchaseRepository) Count(ctx context.Context, estado string) (int, error) {
	query := `SELECT COUNT(*) FROM compra`
	args := []any{}

	if estado != "" {
		query += ` WHERE estado = $1`
		args = append(args, estado)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}
	return total, nil
}

// FindDetailByID retrieves one purchase joined with its owning user.
func (r *purchaseRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseDetail, error) {
	query := `
		SELECT
			c.id,
			c.usuario_id,
			u.nombre AS nombre_usuario,
			u.email AS email_usuario,
			c.metodo_pago,
			c.total_price,
			c.fecha_compra,
			c.estado,
			c.created_at,
			c.updated_at
		FROM compra c
		JOIN usuario u ON c.usuario_id = u.id
		WHERE c.id = $1
	`

	detail := &domain.PurchaseDetail{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.UsuarioID,
		&detail.NombreUsuario,
		&detail.EmailUsuario,
		&detail.MetodoPago,
		&detail.TotalPrice,
		&detail.FechaCompra,
		&detail.Estado,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	return detail, nil
}

// FindLineItems retrieves every line item of a purchase joined with the
// product it references. A purchase without line items yields an empty slice.
func (r *purchaseRepository) FindLineItems(ctx context.Context, purchaseID uuid.UUID) ([]*domain.PurchaseLineItem, error) {
	query := `
		SELECT
			p.id AS producto_id,
			p.nombre AS nombre_producto,
			dc.cantidad,
			dc.precio_unitario,
			dc.subtotal
		FROM detalle_compra dc
		JOIN producto p ON dc.producto_id = p.id
		WHERE dc.compra_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase line items: %w", err)
	}
	defer rows.Close()

	items := []*domain.PurchaseLineItem{}
	for rows.Next() {
		item := &domain.PurchaseLineItem{}
		err := rows.Scan(
			&item.ProductoID,
			&item.NombreProducto,
			&item.Cantidad,
			&item.PrecioUnitario,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase line item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase line items: %w", err)
	}

	return items, nil
}
