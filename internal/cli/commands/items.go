package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "List inventory (server pages; --filter narrows the fetched page locally)"
}
func (itemsCmd) Usage() string { return "items [--page N] [--limit N] [--filter substr]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(Out)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "page size")
	filter := fs.String("filter", "", "substring filter applied to the fetched page only")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s?page=%d&limit=%d", endpoint(cfg, "/api/v1/inventory"), *page, *limit)
	resp, body, err := api.GetJSON(url, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("token expired or invalid, login again")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}

	var env struct {
		Pagination pageView   `json:"pagination"`
		Data       []itemView `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}

	items := env.Data
	if *filter != "" {
		// Фильтр работает только по уже полученной странице: на сервер
		// он не отправляется, серверного полнотекстового поиска нет.
		needle := strings.ToLower(*filter)
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if len(items) == 0 {
		fmt.Fprintln(Out, "No items")
	}
	for _, it := range items {
		owner := ""
		if it.User != nil {
			owner = "  owner=" + it.User.Email
		}
		fmt.Fprintf(Out, "- %s  %s  qty=%d  price=%.2f%s\n", it.ID, it.Name, it.Quantity, it.Price, owner)
	}
	fmt.Fprintf(Out, "Page %d/%d, total items: %d\n",
		env.Pagination.CurrentPage, env.Pagination.TotalPages, env.Pagination.TotalItems)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
