package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmacia-api/internal/domain"
	"farmacia-api/internal/repository"
	"farmacia-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type mockPurchaseService struct {
	purchases map[uuid.UUID]*domain.PurchaseDetail
	items     map[uuid.UUID][]*domain.PurchaseLineItem
	calls     int
}

func newMockPurchaseService() *mockPurchaseService {
	return &mockPurchaseService{
		purchases: make(map[uuid.UUID]*domain.PurchaseDetail),
		items:     make(map[uuid.UUID][]*domain.PurchaseLineItem),
	}
}

func (m *mockPurchaseService) add(estado string) *domain.PurchaseDetail {
	p := &domain.PurchaseDetail{
		ID:            uuid.New(),
		UsuarioID:     uuid.New(),
		NombreUsuario: "Ana López",
		EmailUsuario:  "ana@example.com",
		MetodoPago:    "tarjeta",
		TotalPrice:    decimal.NewFromFloat(50.00),
		FechaCompra:   time.Now(),
		Estado:        estado,
	}
	m.purchases[p.ID] = p
	return p
}

func (m *mockPurchaseService) List(ctx context.Context, page, limit int, estado string) (*service.PurchaseListResult, error) {
	m.calls++
	compras := make([]*domain.Purchase, 0)
	for _, p := range m.purchases {
		if estado == "" || p.Estado == estado {
			compras = append(compras, &domain.Purchase{
				ID:          p.ID,
				UsuarioID:   p.UsuarioID,
				MetodoPago:  p.MetodoPago,
				TotalPrice:  p.TotalPrice,
				FechaCompra: p.FechaCompra,
				Estado:      p.Estado,
			})
		}
	}
	total := len(compras)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &service.PurchaseListResult{
		Compras:      compras,
		TotalCompras: total,
		PaginaActual: page,
		TotalPaginas: totalPages,
	}, nil
}

func (m *mockPurchaseService) FindByID(ctx context.Context, id uuid.UUID) (*service.PurchaseDetailResult, error) {
	m.calls++
	p, ok := m.purchases[id]
	if !ok {
		return nil, repository.ErrPurchaseNotFound
	}
	items := m.items[id]
	if items == nil {
		items = []*domain.PurchaseLineItem{}
	}
	return &service.PurchaseDetailResult{Compra: p, Productos: items}, nil
}

var _ service.PurchaseService = (*mockPurchaseService)(nil)

func newPurchaseRouter(svc service.PurchaseService) chi.Router {
	r := chi.NewRouter()
	NewPurchaseHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestGetAllPurchasesEnvelopeKeys(t *testing.T) {
	svc := newMockPurchaseService()
	svc.add("completada")
	svc.add("pendiente")
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"compras", "totalCompras", "paginaActual", "totalPaginas"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing key %q", key)
		}
	}
}

func TestGetAllPurchasesPaginationValidation(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantMessage string
	}{
		{"negative page", "?page=-1", "El número de página debe ser mayor a 0"},
		{"limit too large", "?limit=101", "Límite de página debe estar entre 1 y 100"},
		{"negative limit", "?limit=-5", "Límite de página debe estar entre 1 y 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMockPurchaseService()
			router := newPurchaseRouter(svc)

			r := httptest.NewRequest(http.MethodGet, "/compras"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			body := decodeEnvelope(t, w)
			if body["status"] != "fail" {
				t.Errorf("status field = %v, want %q", body["status"], "fail")
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMessage)
			}
			if svc.calls != 0 {
				t.Error("service must not be reached for invalid pagination")
			}
		})
	}
}

func TestGetAllPurchasesDefaultsInvalidValuesSilently(t *testing.T) {
	svc := newMockPurchaseService()
	svc.add("completada")
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras?page=abc&limit=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with defaulted pagination", w.Code)
	}

	var body struct {
		PaginaActual int `json:"paginaActual"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.PaginaActual != 1 {
		t.Errorf("paginaActual = %d, want 1", body.PaginaActual)
	}
}

func TestGetPurchaseByIDMalformedID(t *testing.T) {
	svc := newMockPurchaseService()
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "ID de compra inválido" {
		t.Errorf("message = %v", body["message"])
	}
	if svc.calls != 0 {
		t.Error("service must not be reached for a malformed id")
	}
}

func TestGetPurchaseByIDNotFound(t *testing.T) {
	svc := newMockPurchaseService()
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Compra no encontrada" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestGetPurchaseByIDDetailShape(t *testing.T) {
	svc := newMockPurchaseService()
	p := svc.add("completada")
	svc.items[p.ID] = []*domain.PurchaseLineItem{
		{
			ProductoID:     uuid.New(),
			NombreProducto: "Paracetamol 500mg",
			Cantidad:       2,
			PrecioUnitario: decimal.NewFromFloat(10.50),
			Subtotal:       decimal.NewFromFloat(21.00),
		},
	}
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras/"+p.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Compra    *domain.PurchaseDetail     `json:"compra"`
		Productos []*domain.PurchaseLineItem `json:"productos"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Compra == nil || body.Compra.ID != p.ID {
		t.Error("compra field missing or wrong purchase")
	}
	if len(body.Productos) != 1 {
		t.Fatalf("productos length = %d, want 1", len(body.Productos))
	}
	if body.Productos[0].NombreProducto != "Paracetamol 500mg" {
		t.Errorf("nombre_producto = %q", body.Productos[0].NombreProducto)
	}
}

func TestGetPurchaseByIDWithoutItemsRendersEmptyArray(t *testing.T) {
	svc := newMockPurchaseService()
	p := svc.add("pendiente")
	router := newPurchaseRouter(svc)

	r := httptest.NewRequest(http.MethodGet, "/compras/"+p.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(body["productos"]) != "[]" {
		t.Errorf("productos = %s, want []", body["productos"])
	}
}
