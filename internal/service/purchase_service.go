package service

import (
	"context"
	"errors"

	"farmacia-api/internal/apperror"
	"farmacia-api/internal/domain"
	"farmacia-api/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PurchaseListResult is one page of purchases together with the pagination
// totals derived from the concurrent count query.
type PurchaseListResult struct {
	Compras      []*domain.Purchase
	TotalCompras int
	PaginaActual int
	TotalPaginas int
}

// PurchaseDetailResult is a purchase joined with its user plus all of its
// line items. Productos is never nil: a purchase without line items carries
// an empty slice.
type PurchaseDetailResult struct {
	Compra    *domain.PurchaseDetail
	Productos []*domain.PurchaseLineItem
}

// PurchaseService defines the read operations over purchases.
type PurchaseService interface {
	List(ctx context.Context, page, limit int, estado string) (*PurchaseListResult, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseDetailResult, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
}

// NewPurchaseService creates a new instance of PurchaseService
func NewPurchaseService(purchases repository.PurchaseRepository) PurchaseService {
	return &purchaseService{purchases: purchases}
}

// List fetches one page of purchases. The page query and the count query are
// independent, so they run concurrently and are awaited jointly; a failure
// in either aborts the operation. Both apply the same estado predicate.
func (s *purchaseService) List(ctx context.Context, page, limit int, estado string) (*PurchaseListResult, error) {
	offset := (page - 1) * limit

	var (
		compras []*domain.Purchase
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		compras, err = s.purchases.List(gctx, limit, offset, estado)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.purchases.Count(gctx, estado)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Wrap(err, "Error al obtener compras")
	}

	return &PurchaseListResult{
		Compras:      compras,
		TotalCompras: total,
		PaginaActual: page,
		TotalPaginas: totalPages(total, limit),
	}, nil
}

// FindByID fetches a purchase detail and its line items concurrently. An
// absent purchase row makes the whole operation not-found; the line items
// are returned verbatim otherwise.
func (s *purchaseService) FindByID(ctx context.Context, id uuid.UUID) (*PurchaseDetailResult, error) {
	var (
		compra    *domain.PurchaseDetail
		productos []*domain.PurchaseLineItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		compra, err = s.purchases.FindDetailByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		productos, err = s.purchases.FindLineItems(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}
		return nil, apperror.Wrap(err, "Error al obtener compra")
	}

	if productos == nil {
		productos = []*domain.PurchaseLineItem{}
	}

	return &PurchaseDetailResult{
		Compra:    compra,
		Productos: productos,
	}, nil
}

// totalPages is ceil(total/limit); zero purchases means zero pages.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
