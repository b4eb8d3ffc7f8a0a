package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"farmacia-api/internal/middleware"
	"farmacia-api/internal/repository"
	"farmacia-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the token refresh request payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserProfile `json:"user"`
}

// RefreshResponse represents the token refresh response
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// UserProfile represents user profile data
type UserProfile struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

var registerMessages = map[string]string{
	"Nombre":   "El nombre es obligatorio",
	"Email":    "El email es obligatorio y debe ser válido",
	"Password": "La contraseña debe tener al menos 8 caracteres",
}

var loginMessages = map[string]string{
	"Email":    "El email es obligatorio y debe ser válido",
	"Password": "La contraseña es obligatoria",
}

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService service.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers all authentication routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/profile", h.GetProfile)
		})
	})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterRequest  true  "Datos del usuario"
// @Success      201  {object}  UserProfile
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      409  {object}  middleware.ErrorEnvelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))

		if msg := middleware.ValidationMessage(err, registerMessages); msg != "" {
			middleware.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	user, err := h.userService.Register(r.Context(), req.Nombre, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			middleware.RespondWithError(w, http.StatusConflict, "Ya existe un usuario con este email")
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, UserProfile{
		ID:     user.ID.String(),
		Nombre: user.Nombre,
		Email:  user.Email,
		Rol:    user.Rol,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "Credenciales"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      401  {object}  middleware.ErrorEnvelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if msg := middleware.ValidationMessage(err, loginMessages); msg != "" {
			middleware.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	accessToken, refreshToken, user, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "Email o contraseña incorrectos")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	h.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserProfile{
			ID:     user.ID.String(),
			Nombre: user.Nombre,
			Email:  user.Email,
			Rol:    user.Rol,
		},
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  RefreshRequest  true  "Refresh token a revocar"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Logout decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	if err := h.userService.Logout(r.Context(), req.RefreshToken); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Sesión cerrada exitosamente"})
}

// RefreshToken godoc
// @Summary      Renovar token de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  RefreshRequest  true  "Refresh token"
// @Success      200  {object}  RefreshResponse
// @Failure      400  {object}  middleware.ErrorEnvelope
// @Failure      401  {object}  middleware.ErrorEnvelope
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Refresh token validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	accessToken, err := h.userService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "Refresh token inválido")
			return
		}
		if errors.Is(err, service.ErrTokenExpired) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "Refresh token expirado")
			return
		}
		h.logger.Error("Token refresh failed", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, RefreshResponse{AccessToken: accessToken})
}

// GetProfile godoc
// @Summary      Obtener perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  UserProfile
// @Failure      401  {object}  middleware.ErrorEnvelope
// @Router       /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userIDStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		middleware.RespondWithError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		h.logger.Error("Invalid user ID in context", zap.Error(err))
		middleware.RespondWithError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		h.logger.Error("Failed to get user profile", zap.Error(err))
		middleware.RespondWithAppError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, UserProfile{
		ID:     user.ID.String(),
		Nombre: user.Nombre,
		Email:  user.Email,
		Rol:    user.Rol,
	})
}
