package transport

import (
	"errors"
	"net/http"

	"farmacia-api/internal/domain"
	"farmacia-api/internal/middleware"
	"farmacia-api/internal/repository"
	"farmacia-api/internal/service"
	"farmacia-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PurchaseListResponse is the paginated purchase list envelope
type PurchaseListResponse struct {
	Compras      []*domain.Purchase `json:"compras"`
	TotalCompras int                `json:"totalCompras"`
	PaginaActual int                `json:"paginaActual"`
	TotalPaginas int                `json:"totalPaginas"`
}

// PurchaseDetailResponse is a purchase together with its line items
type PurchaseDetailResponse struct {
	Compra    *domain.PurchaseDetail     `json:"compra"`
	Productos []*domain.PurchaseLineItem `json:"productos"`
}

// PurchaseHandler handles HTTP requests for purchase operations
type PurchaseHandler struct {
	purchaseService service.PurchaseService
	logger          *zap.Logger
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService service.PurchaseService, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// RegisterRoutes registers all purchase routes
func (h *PurchaseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/compras", func(r chi.Router) {
		r.Get("/", h.GetAllPurchases)
		r.Get("/{id}", h.GetPurchaseByID)
	})
}

// GetAllPurchases godoc
// @Summary      Listar compras paginadas
// @Tags         compras
// @Produce      json
// @Param        page    query  int     false  "Número de página"           default(1)
// @Param        limit   query  int     false  "Resultados por página"      default(10)
// @Param        estado  query  string  false  "Filtro por estado de compra"
// @Success      200  {object}  PurchaseListResponse
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      500  {object}  middleware.ErrorEnvelope
// @Router       /compras [get]
func (h *PurchaseHandler) GetAllPurchases(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, limit, err := validation.ParsePagination(query.Get("page"), query.Get("limit"))
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	result, err := h.purchaseService.List(r.Context(), page, limit, query.Get("estado"))
	if err != nil {
		h.logger.Error("Failed to list purchases", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, PurchaseListResponse{
		Compras:      result.Compras,
		TotalCompras: result.TotalCompras,
		PaginaActual: result.PaginaActual,
		TotalPaginas: result.TotalPaginas,
	})
}

// GetPurchaseByID godoc
// @Summary      Obtener compra por ID
// @Tags         compras
// @Produce      json
// @Param        id  path  string  true  "UUID de la compra"
// @Success      200  {object}  PurchaseDetailResponse
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /compras/{id} [get]
func (h *PurchaseHandler) GetPurchaseByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de compra inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	result, err := h.purchaseService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Compra no encontrada")
			return
		}
		h.logger.Error("Failed to get purchase", zap.Error(err), zap.String("id", id.String()))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, PurchaseDetailResponse{
		Compra:    result.Compra,
		Productos: result.Productos,
	})
}
