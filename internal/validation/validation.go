// Package validation holds the pure input checks shared by the product and
// purchase handlers. Every function takes raw request input and returns
// either a normalized value or a classified 400 error; validation always
// runs before any store access.
package validation

import (
	"net/http"
	"regexp"
	"strconv"

	"farmacia-api/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Canonical 8-4-4-4-12 textual form only. uuid.Parse alone is too permissive
// here: it also accepts braced, urn-prefixed and bare-hex encodings.
var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ParseID validates that raw is a canonically formatted UUID and parses it.
// message is the user-facing text used on failure, e.g. "ID de producto inválido".
func ParseID(raw, message string) (uuid.UUID, error) {
	if !uuidPattern.MatchString(normalizeHex(raw)) {
		return uuid.Nil, apperror.New(message, http.StatusBadRequest)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.New(message, http.StatusBadRequest)
	}
	return id, nil
}

func normalizeHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ParsePagination normalizes page and limit query parameters. Absent,
// non-numeric or zero values fall back to the defaults; a negative page or a
// limit outside [1,MaxLimit] is rejected.
func ParsePagination(pageRaw, limitRaw string) (page, limit int, err error) {
	page = DefaultPage
	if v, parseErr := strconv.Atoi(pageRaw); parseErr == nil && v != 0 {
		page = v
	}
	limit = DefaultLimit
	if v, parseErr := strconv.Atoi(limitRaw); parseErr == nil && v != 0 {
		limit = v
	}

	if page < 1 {
		return 0, 0, apperror.New("El número de página debe ser mayor a 0", http.StatusBadRequest)
	}
	if limit < 1 || limit > MaxLimit {
		return 0, 0, apperror.New("Límite de página debe estar entre 1 y 100", http.StatusBadRequest)
	}
	return page, limit, nil
}

// ValidatePrecio enforces the strictly-positive price invariant.
func ValidatePrecio(precio decimal.Decimal) error {
	if !precio.IsPositive() {
		return apperror.New("El precio debe ser un número positivo", http.StatusBadRequest)
	}
	return nil
}

// ValidateStock enforces the non-negative stock invariant. A nil value means
// the field was absent from the payload.
func ValidateStock(stock *int) error {
	if stock == nil || *stock < 0 {
		return apperror.New("El stock debe ser un número no negativo", http.StatusBadRequest)
	}
	return nil
}

// ErrNoFields is returned when an update payload carries none of the
// recognized fields.
func ErrNoFields() error {
	return apperror.New("Se debe proporcionar al menos un campo para actualizar", http.StatusBadRequest)
}
