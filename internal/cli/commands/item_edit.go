package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Update fields of an inventory item" }
func (itemEditCmd) Usage() string {
	return "item-edit <id> [--name s] [--desc s] [--qty n] [--price x]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "new name")
	desc := fs.String("desc", "", "new description")
	qty := fs.Int("qty", -1, "new quantity")
	price := fs.Float64("price", -1, "new price")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	// Собираем частичное обновление только из явно переданных флагов,
	// чтобы -1 или пустая строка не затёрли поля на сервере.
	payload := itemPayload{}
	changed := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			payload.Name = name
		case "desc":
			payload.Description = desc
		case "qty":
			payload.Quantity = qty
		case "price":
			payload.Price = price
		}
		changed = true
	})
	if !changed {
		return ErrUsage
	}

	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.RequestJSON(http.MethodPut, endpoint(cfg, "/api/v1/inventory/"+id), payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Updated item %s\n", id)
		return nil
	case http.StatusNotFound:
		return errors.New("item not found")
	case http.StatusForbidden:
		return errors.New("you are not the owner of this item")
	default:
		return errors.New(api.ErrorMessage(body))
	}
}

func init() { RegisterCmd(itemEditCmd{}) }
