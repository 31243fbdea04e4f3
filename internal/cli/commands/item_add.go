package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

type itemPayload struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Create an inventory item" }
func (itemAddCmd) Usage() string       { return "item-add <name> <description> <quantity> <price>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("quantity must be an integer: %q", args[2])
	}
	price, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("price must be a number: %q", args[3])
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	payload := itemPayload{Name: &args[0], Description: &args[1], Quantity: &qty, Price: &price}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/v1/inventory"), payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return errors.New(api.ErrorMessage(body))
	}

	var env struct {
		Data itemView `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created item %s\n", env.Data.ID)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
