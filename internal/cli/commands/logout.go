package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Drop the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	// Сервер выданные токены не отслеживает: logout — это прежде всего
	// удаление локального токена. Запрос шлём по возможности, но его
	// неудача не мешает разлогиниться.
	if token, err := tokenStore(cfg).Load(); err == nil {
		if resp, _, err := api.GetJSON(endpoint(cfg, "/api/v1/auth/logout"), token); err == nil {
			resp.Body.Close()
		}
	}

	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
