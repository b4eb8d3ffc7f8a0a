package service

import (
	"context"
	"errors"
	"net/http"

	"farmacia-api/internal/apperror"
	"farmacia-api/internal/domain"
	"farmacia-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCategoryNotFound is raised deliberately when a referenced category does
// not exist. It carries an explicit 400 classification that survives the
// service-boundary wrapping.
var ErrCategoryNotFound = apperror.New("La categoría especificada no existe", http.StatusBadRequest)

// ProductService defines the business operations over products. Absent rows
// surface as repository.ErrProductNotFound so the transport layer can map
// them to 404; every other store failure is wrapped with a 500
// classification at this boundary.
type ProductService interface {
	FindAll(ctx context.Context, name string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByCategory(ctx context.Context, categoryName string) ([]*domain.Product, error)
	FindByCategoryAndID(ctx context.Context, categoryName string, id uuid.UUID) (*domain.Product, error)
	Create(ctx context.Context, nombre string, categoriaID uuid.UUID, precio decimal.Decimal, stock int) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, update repository.ProductUpdate) (*domain.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{
		products:   products,
		categories: categories,
	}
}

// FindAll lists products, optionally filtered by a name substring.
func (s *productService) FindAll(ctx context.Context, name string) ([]*domain.Product, error) {
	products, err := s.products.FindAll(ctx, name)
	if err != nil {
		return nil, apperror.Wrap(err, "Error al obtener productos")
	}
	return products, nil
}

// FindByID fetches one product with its category name.
func (s *productService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, "Error al obtener producto")
	}
	return product, nil
}

// FindByCategory lists products whose category name contains the substring.
func (s *productService) FindByCategory(ctx context.Context, categoryName string) ([]*domain.Product, error) {
	products, err := s.products.FindByCategory(ctx, categoryName)
	if err != nil {
		return nil, apperror.Wrap(err, "Error al obtener productos por categoría")
	}
	return products, nil
}

// FindByCategoryAndID fetches one product within a category filter.
func (s *productService) FindByCategoryAndID(ctx context.Context, categoryName string, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.FindByCategoryAndID(ctx, categoryName, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, "Error al obtener producto de la categoría")
	}
	return product, nil
}

// Create validates that the category exists, inserts the product and returns
// it enriched with the category name.
func (s *productService) Create(ctx context.Context, nombre string, categoriaID uuid.UUID, precio decimal.Decimal, stock int) (*domain.Product, error) {
	exists, err := s.categories.Exists(ctx, categoriaID)
	if err != nil {
		return nil, apperror.Wrap(err, "Error al crear el producto")
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	created, err := s.products.Create(ctx, &domain.Product{
		ID:          uuid.New(),
		Nombre:      nombre,
		CategoriaID: categoriaID,
		Precio:      precio,
		Stock:       stock,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "Error al crear el producto")
	}

	return s.withCategoryName(ctx, created, "Error al crear el producto")
}

// Update applies a sparse update. When a new category reference is supplied
// its existence is validated first (400 on absence); a missing product
// surfaces as repository.ErrProductNotFound.
func (s *productService) Update(ctx context.Context, id uuid.UUID, update repository.ProductUpdate) (*domain.Product, error) {
	if update.IsEmpty() {
		return nil, apperror.New("Se debe proporcionar al menos un campo para actualizar", http.StatusBadRequest)
	}

	if update.CategoriaID != nil {
		exists, err := s.categories.Exists(ctx, *update.CategoriaID)
		if err != nil {
			return nil, apperror.Wrap(err, "Error al actualizar el producto")
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
	}

	updated, err := s.products.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, "Error al actualizar el producto")
	}

	return s.withCategoryName(ctx, updated, "Error al actualizar el producto")
}

// UpdateStock writes the stock field only.
func (s *productService) UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error) {
	updated, err := s.products.UpdateStock(ctx, id, stock)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, "Error al actualizar el stock")
	}

	return s.withCategoryName(ctx, updated, "Error al actualizar el stock")
}

// Delete removes a product; deleting an absent id reports not found.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}
		return apperror.Wrap(err, "Error al eliminar el producto")
	}
	return nil
}

// withCategoryName re-fetches the category display name after a write, since
// INSERT/UPDATE ... RETURNING cannot join.
func (s *productService) withCategoryName(ctx context.Context, product *domain.Product, wrapMsg string) (*domain.Product, error) {
	category, err := s.categories.FindByID(ctx, product.CategoriaID)
	if err != nil {
		return nil, apperror.Wrap(err, wrapMsg)
	}
	product.CategoriaNombre = category.Nombre
	return product, nil
}
