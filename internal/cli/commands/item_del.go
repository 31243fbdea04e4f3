package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type itemDelCmd struct{}

func (itemDelCmd) Name() string        { return "item-del" }
func (itemDelCmd) Description() string { return "Delete an inventory item (no undo)" }
func (itemDelCmd) Usage() string       { return "item-del <id>" }

func (itemDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.RequestJSON(http.MethodDelete, endpoint(cfg, "/api/v1/inventory/"+args[0]), nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Deleted item %s\n", args[0])
		return nil
	case http.StatusNotFound:
		return errors.New("item not found")
	case http.StatusForbidden:
		return errors.New("you are not the owner of this item")
	default:
		return errors.New(api.ErrorMessage(body))
	}
}

func init() { RegisterCmd(itemDelCmd{}) }
