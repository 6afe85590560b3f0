package commands

import (
	"context"
	"fmt"
	"net/http"

	"ParaVault/internal/config"
)

type profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Show the current user" }
func (profileCmd) Usage() string       { return "profile" }

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var p profile
	if err := newClient(cfg).Do(ctx, http.MethodGet, "/users/profile", nil, &p, true); err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:       %d\n", p.ID)
	fmt.Fprintf(Out, "username: %s\n", p.Username)
	if p.Email != "" {
		fmt.Fprintf(Out, "email:    %s\n", p.Email)
	}
	if name := joinName(p.FirstName, p.LastName); name != "" {
		fmt.Fprintf(Out, "name:     %s\n", name)
	}
	return nil
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

func init() { RegisterCmd(profileCmd{}) }
