package transport

import (
	"errors"
	"net/http"

	"farmacia-api/internal/middleware"
	"farmacia-api/internal/repository"
	"farmacia-api/internal/service"
	"farmacia-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload. Stock is
// optional and defaults to zero.
type CreateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	CategoriaID string          `json:"categoria_id" validate:"required"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       *int            `json:"stock"`
}

// UpdateProductRequest represents a sparse product update payload. Absent
// fields are left untouched.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre"`
	CategoriaID *string          `json:"categoria_id"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
}

// UpdateStockRequest represents the stock-only update payload
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

var createProductMessages = map[string]string{
	"Nombre":      "El nombre del producto es obligatorio",
	"CategoriaID": "La categoría es obligatoria",
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.GetAllProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/category/{categoryName}", h.GetProductsByCategory)
		r.Get("/category/{categoryName}/{id}", h.GetProductByCategoryAndID)
		r.Get("/{id}", h.GetProductByID)
		r.Put("/{id}", h.UpdateProduct)
		r.Patch("/{id}/stock", h.UpdateStock)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

// GetAllProducts godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        name  query  string  false  "Filtro por nombre del producto"
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  middleware.ErrorEnvelope
// @Router       /products [get]
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	products, err := h.productService.FindAll(r.Context(), name)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProductByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "UUID del producto"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de producto inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	product, err := h.productService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err), zap.String("id", id.String()))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetProductsByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Produce      json
// @Param        categoryName  path  string  true  "Nombre de la categoría"
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  middleware.ErrorEnvelope
// @Router       /products/category/{categoryName} [get]
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryName := chi.URLParam(r, "categoryName")

	products, err := h.productService.FindByCategory(r.Context(), categoryName)
	if err != nil {
		h.logger.Error("Failed to list products by category",
			zap.Error(err),
			zap.String("category", categoryName),
		)
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProductByCategoryAndID godoc
// @Summary      Obtener producto dentro de una categoría
// @Tags         products
// @Produce      json
// @Param        categoryName  path  string  true  "Nombre de la categoría"
// @Param        id            path  string  true  "UUID del producto"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /products/category/{categoryName}/{id} [get]
func (h *ProductHandler) GetProductByCategoryAndID(w http.ResponseWriter, r *http.Request) {
	categoryName := chi.URLParam(r, "categoryName")

	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de producto inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	product, err := h.productService.FindByCategoryAndID(r.Context(), categoryName, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Producto no encontrado en esta categoría")
			return
		}
		h.logger.Error("Failed to get product by category",
			zap.Error(err),
			zap.String("category", categoryName),
			zap.String("id", id.String()),
		)
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product creation validation failed", zap.Error(err))

		if msg := middleware.ValidationMessage(err, createProductMessages); msg != "" {
			middleware.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	categoriaID, err := validation.ParseID(req.CategoriaID, "La categoría especificada no existe")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	if err := validation.ValidatePrecio(req.Precio); err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	stock := 0
	if req.Stock != nil {
		if err := validation.ValidateStock(req.Stock); err != nil {
			middleware.RespondWithAppError(w, err)
			return
		}
		stock = *req.Stock
	}

	product, err := h.productService.Create(r.Context(), req.Nombre, categoriaID, req.Precio, stock)
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	h.logger.Info("Product created",
		zap.String("id", product.ID.String()),
		zap.String("nombre", product.Nombre),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "UUID del producto"
// @Param        body  body  UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de producto inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	update, err := h.buildUpdate(req)
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	product, err := h.productService.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.logger.Error("Failed to update product", zap.Error(err), zap.String("id", id.String()))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// buildUpdate validates the sparse payload and converts it into a repository
// update. Field-level invariants hold on update exactly as they do on
// creation.
func (h *ProductHandler) buildUpdate(req UpdateProductRequest) (repository.ProductUpdate, error) {
	var update repository.ProductUpdate

	if req.Nombre == nil && req.CategoriaID == nil && req.Precio == nil && req.Stock == nil {
		return update, validation.ErrNoFields()
	}

	update.Nombre = req.Nombre
	update.Precio = req.Precio
	update.Stock = req.Stock

	if req.CategoriaID != nil {
		categoriaID, err := validation.ParseID(*req.CategoriaID, "La categoría especificada no existe")
		if err != nil {
			return update, err
		}
		update.CategoriaID = &categoriaID
	}
	if req.Precio != nil {
		if err := validation.ValidatePrecio(*req.Precio); err != nil {
			return update, err
		}
	}
	if req.Stock != nil {
		if err := validation.ValidateStock(req.Stock); err != nil {
			return update, err
		}
	}

	return update, nil
}

// UpdateStock godoc
// @Summary      Actualizar stock de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "UUID del producto"
// @Param        body  body  UpdateStockRequest  true  "Nuevo valor del stock"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de producto inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	var req UpdateStockRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Stock update decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	if err := validation.ValidateStock(req.Stock); err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	product, err := h.productService.UpdateStock(r.Context(), id, *req.Stock)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.logger.Error("Failed to update stock", zap.Error(err), zap.String("id", id.String()))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  string  true  "UUID del producto"
// @Success      204  "Producto eliminado"
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      404  {object}  middleware.ErrorEnvelope
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(chi.URLParam(r, "id"), "ID de producto inválido")
	if err != nil {
		middleware.RespondWithAppError(w, err)
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.logger.Error("Failed to delete product", zap.Error(err), zap.String("id", id.String()))
		middleware.RespondWithAppError(w, err)
		return
	}

	h.logger.Info("Product deleted", zap.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
