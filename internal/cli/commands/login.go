package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ParaVault/internal/cli/api"
	"ParaVault/internal/cli/repo"
	fsrepo "ParaVault/internal/cli/repo/fs"
	"ParaVault/internal/config"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store access/refresh tokens" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return login(ctx, cfg, args[0], args[1])
}

func login(ctx context.Context, cfg *config.Config, username, password string) error {
	var tokens repo.Tokens
	err := newClient(cfg).Do(ctx, http.MethodPost, "/users/login", LoginRequest{Username: username, Password: password}, &tokens, false)
	if api.IsStatus(err, http.StatusUnauthorized) {
		return errors.New("invalid username or password")
	}
	if err != nil {
		return err
	}
	if err := (fsrepo.AuthFSStore{Path: cfg.TokenFile}).Save(tokens); err != nil {
		return fmt.Errorf("saving tokens: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type refreshCmd struct{}

func (refreshCmd) Name() string        { return "refresh" }
func (refreshCmd) Description() string { return "Obtain a new access token with the stored refresh token" }
func (refreshCmd) Usage() string       { return "refresh" }

func (refreshCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newClient(cfg).Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Access token refreshed")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(refreshCmd{})
}
