package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"farmacia-api/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS categoria (
			id UUID PRIMARY KEY,
			nombre VARCHAR(100) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS producto (
			id UUID PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			categoria_id UUID NOT NULL REFERENCES categoria(id),
			precio NUMERIC(10, 2) NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS usuario (
			id UUID PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			rol VARCHAR(50) NOT NULL DEFAULT 'cliente',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS compra (
			id UUID PRIMARY KEY,
			usuario_id UUID NOT NULL REFERENCES usuario(id),
			metodo_pago VARCHAR(50) NOT NULL,
			total_price NUMERIC(10, 2) NOT NULL,
			fecha_compra TIMESTAMP NOT NULL,
			estado VARCHAR(50) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS detalle_compra (
			id UUID PRIMARY KEY,
			compra_id UUID NOT NULL REFERENCES compra(id),
			producto_id UUID NOT NULL REFERENCES producto(id),
			cantidad INTEGER NOT NULL,
			precio_unitario NUMERIC(10, 2) NOT NULL,
			subtotal NUMERIC(10, 2) NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := testDB.Exec(stmt); err != nil {
			return dbContainer.Terminate, err
		}
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown postgres container: %v", err)
		}
	}

	os.Exit(code)
}

func mustCreateCategory(t *testing.T, nombre string) *domain.Category {
	t.Helper()
	category := &domain.Category{ID: uuid.New(), Nombre: nombre}
	_, err := testDB.Exec(`INSERT INTO categoria (id, nombre) VALUES ($1, $2)`, category.ID, category.Nombre)
	if err != nil {
		t.Fatalf("failed to insert category: %v", err)
	}
	return category
}

func mustCreateProduct(t *testing.T, repo ProductRepository, categoriaID uuid.UUID, nombre string) *domain.Product {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Product{
		ID:          uuid.New(),
		Nombre:      nombre,
		CategoriaID: categoriaID,
		Precio:      decimal.NewFromFloat(10.50),
		Stock:       3,
	})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return created
}

func TestProductCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	category := mustCreateCategory(t, "Analgésicos "+uuid.New().String())

	created := mustCreateProduct(t, repo, category.ID, "Ibuprofeno 400mg")

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Nombre != "Ibuprofeno 400mg" {
		t.Errorf("Nombre = %q", found.Nombre)
	}
	if found.CategoriaID != category.ID {
		t.Errorf("CategoriaID = %s, want %s", found.CategoriaID, category.ID)
	}
	if found.CategoriaNombre != category.Nombre {
		t.Errorf("CategoriaNombre = %q, want %q", found.CategoriaNombre, category.Nombre)
	}
	if !found.Precio.Equal(decimal.NewFromFloat(10.50)) {
		t.Errorf("Precio = %s, want 10.50", found.Precio)
	}
	if found.Stock != 3 {
		t.Errorf("Stock = %d, want 3", found.Stock)
	}
}

func TestProductFindByIDNotFound(t *testing.T) {
	repo := NewProductRepository(testDB)
	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductFindAllNameFilterIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	category := mustCreateCategory(t, "Antibióticos "+uuid.New().String())
	created := mustCreateProduct(t, repo, category.ID, "Amoxicilina "+uuid.New().String())

	products, err := repo.FindAll(ctx, "aMOXICILINA")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	found := false
	for _, p := range products {
		if p.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("case-insensitive substring filter did not match the product")
	}
}

func TestProductFindByCategorySubstring(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	marker := uuid.New().String()
	category := mustCreateCategory(t, "Dermatología "+marker)
	created := mustCreateProduct(t, repo, category.ID, "Crema hidratante")

	products, err := repo.FindByCategory(ctx, marker)
	if err != nil {
		t.Fatalf("FindByCategory failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != created.ID {
		t.Fatalf("expected exactly the created product, got %d rows", len(products))
	}

	one, err := repo.FindByCategoryAndID(ctx, marker, created.ID)
	if err != nil {
		t.Fatalf("FindByCategoryAndID failed: %v", err)
	}
	if one.CategoriaNombre != category.Nombre {
		t.Errorf("CategoriaNombre = %q, want %q", one.CategoriaNombre, category.Nombre)
	}

	if _, err := repo.FindByCategoryAndID(ctx, "otra categoria", created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound outside the category, got %v", err)
	}
}

func TestProductPartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	category := mustCreateCategory(t, "Vitaminas "+uuid.New().String())
	created := mustCreateProduct(t, repo, category.ID, "Vitamina C")

	newPrecio := decimal.NewFromFloat(12.99)
	updated, err := repo.Update(ctx, created.ID, ProductUpdate{Precio: &newPrecio})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !updated.Precio.Equal(newPrecio) {
		t.Errorf("Precio = %s, want %s", updated.Precio, newPrecio)
	}
	// Untouched fields keep their values.
	if updated.Nombre != created.Nombre || updated.Stock != created.Stock {
		t.Error("partial update touched fields that were not supplied")
	}
}

func TestProductUpdateMissingRow(t *testing.T) {
	nombre := "Fantasma"
	_, err := NewProductRepository(testDB).Update(context.Background(), uuid.New(), ProductUpdate{Nombre: &nombre})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductUpdateStock(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	category := mustCreateCategory(t, "Jarabes "+uuid.New().String())
	created := mustCreateProduct(t, repo, category.ID, "Jarabe para la tos")

	updated, err := repo.UpdateStock(ctx, created.ID, 42)
	if err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}
	if updated.Stock != 42 {
		t.Errorf("Stock = %d, want 42", updated.Stock)
	}

	if _, err := repo.UpdateStock(ctx, uuid.New(), 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDeleteIsNotFoundAfterwards(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)
	category := mustCreateCategory(t, "Descartables "+uuid.New().String())
	created := mustCreateProduct(t, repo, category.ID, "Gasas")

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Repeated deletes of the same id always report not found.
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestCategoryExists(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testDB)
	category := mustCreateCategory(t, "Homeopatía "+uuid.New().String())

	exists, err := repo.Exists(ctx, category.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected category to exist")
	}

	exists, err = repo.Exists(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected category to be absent")
	}
}

func mustCreateUser(t *testing.T) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New(),
		Nombre:       "Cliente de Prueba",
		Email:        uuid.New().String() + "@mfarma.com",
		PasswordHash: "x",
		Rol:          "cliente",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := NewUserRepository(testDB).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func mustCreatePurchase(t *testing.T, usuarioID uuid.UUID, estado string, fecha time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testDB.Exec(`
		INSERT INTO compra (id, usuario_id, metodo_pago, total_price, fecha_compra, estado)
		VALUES ($1, $2, 'tarjeta', 99.90, $3, $4)
	`, id, usuarioID, fecha, estado)
	if err != nil {
		t.Fatalf("failed to insert purchase: %v", err)
	}
	return id
}

func TestPurchaseListAndCountShareFilterSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewPurchaseRepository(testDB)
	user := mustCreateUser(t)

	estado := "estado-" + uuid.New().String()
	for i := 0; i < 3; i++ {
		mustCreatePurchase(t, user.ID, estado, time.Now().Add(-time.Duration(i)*time.Hour))
	}
	mustCreatePurchase(t, user.ID, "otro-"+uuid.New().String(), time.Now())

	total, err := repo.Count(ctx, estado)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Count = %d, want 3", total)
	}

	page, err := repo.List(ctx, 2, 0, estado)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}
	for _, compra := range page {
		if compra.Estado != estado {
			t.Errorf("page and count disagree on the filter: got estado %q", compra.Estado)
		}
	}
	// Newest first.
	if page[0].FechaCompra.Before(page[1].FechaCompra) {
		t.Error("expected descending fecha_compra ordering")
	}

	rest, err := repo.List(ctx, 2, 2, estado)
	if err != nil {
		t.Fatalf("List with offset failed: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("second page size = %d, want 1", len(rest))
	}
}

func TestPurchaseDetailJoinsUser(t *testing.T) {
	ctx := context.Background()
	repo := NewPurchaseRepository(testDB)
	user := mustCreateUser(t)
	compraID := mustCreatePurchase(t, user.ID, "completada", time.Now())

	detail, err := repo.FindDetailByID(ctx, compraID)
	if err != nil {
		t.Fatalf("FindDetailByID failed: %v", err)
	}
	if detail.NombreUsuario != user.Nombre || detail.EmailUsuario != user.Email {
		t.Errorf("user join mismatch: got %q/%q", detail.NombreUsuario, detail.EmailUsuario)
	}

	if _, err := repo.FindDetailByID(ctx, uuid.New()); !errors.Is(err, ErrPurchaseNotFound) {
		t.Errorf("expected ErrPurchaseNotFound, got %v", err)
	}
}

func TestPurchaseLineItems(t *testing.T) {
	ctx := context.Background()
	repo := NewPurchaseRepository(testDB)
	productRepo := NewProductRepository(testDB)
	user := mustCreateUser(t)
	category := mustCreateCategory(t, "Inyectables "+uuid.New().String())
	product := mustCreateProduct(t, productRepo, category.ID, "Insulina")
	compraID := mustCreatePurchase(t, user.ID, "pendiente", time.Now())

	// A purchase without line items yields an empty slice, not an error.
	items, err := repo.FindLineItems(ctx, compraID)
	if err != nil {
		t.Fatalf("FindLineItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no line items, got %d", len(items))
	}

	_, err = testDB.Exec(`
		INSERT INTO detalle_compra (id, compra_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, 2, 10.50, 21.00)
	`, uuid.New(), compraID, product.ID)
	if err != nil {
		t.Fatalf("failed to insert line item: %v", err)
	}

	items, err = repo.FindLineItems(ctx, compraID)
	if err != nil {
		t.Fatalf("FindLineItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].NombreProducto != "Insulina" || items[0].Cantidad != 2 {
		t.Errorf("line item join mismatch: %+v", items[0])
	}
	if !items[0].Subtotal.Equal(decimal.NewFromFloat(21.00)) {
		t.Errorf("Subtotal = %s, want 21.00", items[0].Subtotal)
	}
}
