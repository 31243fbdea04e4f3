package handlers

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/model"
	"StockKeeper/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// AuthHandler обрабатывает регистрацию, вход и сведения о текущем пользователе.
type AuthHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewAuthHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func (h *AuthHandler) tokenTTL() time.Duration {
	return time.Duration(h.Config.TokenTTLHours) * time.Hour
}

// Register — POST /api/v1/auth/register.
// Успешная регистрация сразу выдаёт сессионный токен.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.SetLoginCookie(w, user.ID, user.Role, h.Config.AuthSecret, h.tokenTTL())
	if err != nil {
		h.Logger.Errorw("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.Logger.Infow("user registered", "email", user.Email, "role", user.Role)
	writeJSON(w, http.StatusOK, tokenResponse{Success: true, Token: token, User: user})
}

// Login — POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.SetLoginCookie(w, user.ID, user.Role, h.Config.AuthSecret, h.tokenTTL())
	if err != nil {
		h.Logger.Errorw("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Success: true, Token: token, User: user})
}

// Me — GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GetIdentityFromContext(r.Context())

	user, err := h.UserService.GetByID(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: user})
}

// Logout — GET /api/v1/auth/logout. Сбрасывает cookie; сам токен остаётся
// валиден до истечения срока, сервер выданные токены не отслеживает.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: struct{}{}})
}
