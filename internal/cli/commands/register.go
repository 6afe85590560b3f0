package commands

import (
	"context"
	"fmt"
	"net/http"

	"ParaVault/internal/config"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and log in" }
func (registerCmd) Usage() string       { return "register <username> <password> [email]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	req := RegisterRequest{Username: args[0], Password: args[1]}
	if len(args) == 3 {
		req.Email = args[2]
	}
	var u profile
	if err := newClient(cfg).Do(ctx, http.MethodPost, "/users/register", req, &u, false); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered %s (id %d)\n", u.Username, u.ID)
	return login(ctx, cfg, req.Username, req.Password)
}

func init() { RegisterCmd(registerCmd{}) }
