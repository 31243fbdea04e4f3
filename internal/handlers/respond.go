package handlers

import (
	"StockKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
)

// errorResponse — единый конверт ошибок API.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
// Таксономия: валидация — 400, учётные данные — 401, политика — 403,
// отсутствие записи — 404, всё остальное — 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		writeError(w, http.StatusBadRequest, ve.Error())
		return
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
