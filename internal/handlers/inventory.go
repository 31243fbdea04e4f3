package handlers

import (
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/model"
	"StockKeeper/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InventoryHandler обрабатывает CRUD складских позиций.
type InventoryHandler struct {
	InventoryService *service.InventoryService
	Logger           *zap.SugaredLogger
}

func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.SugaredLogger) *InventoryHandler {
	return &InventoryHandler{InventoryService: inventoryService, Logger: logger}
}

// listResponse — конверт списка с пагинацией.
type listResponse struct {
	Success    bool                  `json:"success"`
	Count      int                   `json:"count"`
	Pagination service.PageInfo      `json:"pagination"`
	Data       []model.InventoryItem `json:"data"`
}

func actorFrom(r *http.Request) service.Actor {
	id, _ := middleware.GetIdentityFromContext(r.Context())
	return service.Actor{ID: id.UserID, Role: id.Role}
}

// List — GET /api/v1/inventory?page=&limit=.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, info, err := h.InventoryService.List(r.Context(), actorFrom(r), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Count:      len(items),
		Pagination: info,
		Data:       items,
	})
}

// Get — GET /api/v1/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.InventoryService.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Create — POST /api/v1/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.InventoryService.Create(r.Context(), actorFrom(r), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// Update — PUT /api/v1/inventory/{id}. Поле владельца игнорируется,
// даже если присутствует во входе.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.InventoryService.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Delete — DELETE /api/v1/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.InventoryService.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: struct{}{}})
}
