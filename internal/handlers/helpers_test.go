package handlers_test

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/handlers"
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestRouter поднимает полный стек над in-memory SQLite.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TokenTTLHours: 1}
	logger := zap.NewNop().Sugar()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.InventoryItem{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	invSvc := service.NewInventoryService(repo.NewInventoryRepository(db))

	h := handlers.NewHandler(userSvc, invSvc, logger, cfg)
	return h.Router
}

// doJSON выполняет запрос к роутеру. Непустой token уходит в Bearer-заголовок.
func doJSON(t *testing.T, router http.Handler, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// registerUser регистрирует пользователя и возвращает его токен и ID.
func registerUser(t *testing.T, router http.Handler, name, email, role string) (string, int64) {
	t.Helper()
	payload := map[string]string{"name": name, "email": email, "password": "secret"}
	if role != "" {
		payload["role"] = role
	}
	rr := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", payload, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("register %s failed: %d %s", email, rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("register must return a token")
	}
	return resp.Token, resp.User.ID
}

// createItem создаёт позицию от имени держателя токена и возвращает её ID.
func createItem(t *testing.T, router http.Handler, token, name string) string {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/inventory", map[string]any{
		"name": name, "description": "test item", "quantity": 1, "price": 9.99,
	}, token)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create item failed: %d %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.Data.ID
}
