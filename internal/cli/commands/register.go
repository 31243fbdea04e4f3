package commands

import (
	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new account and store auth token" }
func (registerCmd) Usage() string       { return "register <name> <email> <password> [role]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	req := registerRequest{Name: args[0], Email: args[1], Password: args[2]}
	if len(args) == 4 {
		req.Role = args[3]
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/v1/auth/register"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}
	token, err := api.TokenFromBody(body)
	if err != nil {
		return err
	}
	if err := tokenStore(cfg).Save(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Registered and logged in")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
