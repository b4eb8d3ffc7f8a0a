package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmacia-api/internal/domain"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// productColumns is the join every product read returns: the product row
// plus the name of its category.
const productColumns = `
	SELECT p.id, p.nombre, p.categoria_id, p.precio, p.stock, c.nombre AS categoria_nombre
	FROM producto p
	JOIN categoria c ON p.categoria_id = c.id
`

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	FindAll(ctx context.Context, name string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByCategory(ctx context.Context, categoryName string) ([]*domain.Product, error)
	FindByCategoryAndID(ctx context.Context, categoryName string, id uuid.UUID) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindAll retrieves all products, optionally filtered by a case-insensitive
// name substring.
func (r *productRepository) FindAll(ctx context.Context, name string) ([]*domain.Product, error) {
	query := productColumns
	args := []any{}

	if name != "" {
		query += ` WHERE p.nombre ILIKE $1`
		args = append(args, "%"+name+"%")
	}

	return r.queryProducts(ctx, query, args...)
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := productColumns + ` WHERE p.id = $1`
	return r.queryProduct(ctx, query, id)
}

// FindByCategory retrieves every product whose category name contains the
// given substring, case-insensitively.
func (r *productRepository) FindByCategory(ctx context.Context, categoryName string) ([]*domain.Product, error) {
	query := productColumns + ` WHERE c.nombre ILIKE $1`
	return r.queryProducts(ctx, query, "%"+categoryName+"%")
}

// FindByCategoryAndID retrieves one product by id within a category filter.
func (r *productRepository) FindByCategoryAndID(ctx context.Context, categoryName string, id uuid.UUID) (*domain.Product, error) {
	query := productColumns + ` WHERE c.nombre ILIKE $1 AND p.id = $2`
	return r.queryProduct(ctx, query, "%"+categoryName+"%", id)
}

// Create inserts a new product and returns the stored row. The category name
// is filled in by the service layer.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO producto (id, nombre, categoria_id, precio, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nombre, categoria_id, precio, stock
	`

	created := &domain.Product{}
	err := r.db.QueryRowContext(
		ctx,
		query,
		product.ID,
		product.Nombre,
		product.CategoriaID,
		product.Precio,
		product.Stock,
	).Scan(
		&created.ID,
		&created.Nombre,
		&created.CategoriaID,
		&created.Precio,
		&created.Stock,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

// Update applies a sparse update as a single conditional statement. A result
// of zero rows means the product does not exist; there is no separate
// existence probe, so a concurrent delete cannot race the write.
func (r *productRepository) Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error) {
	query, args, err := buildProductUpdate(id, update)
	if err != nil {
		return nil, err
	}

	updated := &domain.Product{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID,
		&updated.Nombre,
		&updated.CategoriaID,
		&updated.Precio,
		&updated.Stock,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}

// UpdateStock writes only the stock column, bypassing the general builder.
func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error) {
	query := `
		UPDATE producto
		SET stock = $1
		WHERE id = $2
		RETURNING id, nombre, categoria_id, precio, stock
	`

	updated := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, stock, id).Scan(
		&updated.ID,
		&updated.Nombre,
		&updated.CategoriaID,
		&updated.Precio,
		&updated.Stock,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return updated, nil
}

// Delete removes a product. Deleting an absent id reports ErrProductNotFound,
// never success.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM producto WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *productRepository) queryProduct(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.Nombre,
		&product.CategoriaID,
		&product.Precio,
		&product.Stock,
		&product.CategoriaNombre,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Nombre,
			&product.CategoriaID,
			&product.Precio,
			&product.Stock,
			&product.CategoriaNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
