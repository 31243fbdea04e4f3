package commands

import (
	"StockKeeper/internal/cli/repo/fs"
	"StockKeeper/internal/config"
	"errors"
	"strings"
	"time"
)

// endpoint собирает полный URL эндпоинта API.
func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func tokenStore(cfg *config.Config) fs.TokenFSStore {
	return fs.TokenFSStore{Path: cfg.TokenFile}
}

// loadToken читает сохранённый токен; без него защищённые команды не работают.
func loadToken(cfg *config.Config) (string, error) {
	token, err := tokenStore(cfg).Load()
	if err != nil {
		return "", errors.New("not logged in (run: skcli login <email> <password>)")
	}
	return token, nil
}

// itemView — представление позиции в ответах API.
type itemView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	User        *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

type pageView struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}
