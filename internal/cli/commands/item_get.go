package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Show a single inventory item" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.GetJSON(endpoint(cfg, "/api/v1/inventory/"+args[0]), token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errors.New("item not found")
	case http.StatusUnauthorized:
		return errors.New("token expired or invalid, login again")
	default:
		return errors.New(api.ErrorMessage(body))
	}

	var env struct {
		Data itemView `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	it := env.Data
	fmt.Fprintf(Out, "ID:          %s\n", it.ID)
	fmt.Fprintf(Out, "Name:        %s\n", it.Name)
	fmt.Fprintf(Out, "Description: %s\n", it.Description)
	fmt.Fprintf(Out, "Quantity:    %d\n", it.Quantity)
	fmt.Fprintf(Out, "Price:       %.2f\n", it.Price)
	if it.User != nil {
		fmt.Fprintf(Out, "Owner:       %s <%s>\n", it.User.Name, it.User.Email)
	}
	fmt.Fprintf(Out, "Created:     %s\n", it.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
