package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ParaVault/internal/config"
)

type containerView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	TypeDisplay string  `json:"type_display"`
	Description *string `json:"description"`
}

func printContainer(c containerView) {
	fmt.Fprintf(Out, "- #%d  [%s] %s", c.ID, c.TypeDisplay, c.Name)
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintf(Out, "  (%s)", *c.Description)
	}
	fmt.Fprintln(Out)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

type containersCmd struct{}

func (containersCmd) Name() string        { return "containers" }
func (containersCmd) Description() string { return "List containers, optionally of one type (P, A, R, ARCHIVE)" }
func (containersCmd) Usage() string       { return "containers [type]" }

func (containersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "/containers"
	if len(args) == 1 {
		path += "?type=" + url.QueryEscape(strings.ToUpper(args[0]))
	}
	var list []containerView
	if err := newClient(cfg).Do(ctx, http.MethodGet, path, nil, &list, true); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No containers")
		return nil
	}
	for _, c := range list {
		printContainer(c)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type containerAddCmd struct{}

func (containerAddCmd) Name() string        { return "container-add" }
func (containerAddCmd) Description() string { return "Create a container" }
func (containerAddCmd) Usage() string       { return "container-add <name> <type> [description]" }

func (containerAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	req := map[string]string{"name": args[0], "type": strings.ToUpper(args[1])}
	if len(args) == 3 {
		req["description"] = args[2]
	}
	var c containerView
	if err := newClient(cfg).Do(ctx, http.MethodPost, "/containers", req, &c, true); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printContainer(c)
	return nil
}

type containerRmCmd struct{}

func (containerRmCmd) Name() string        { return "container-rm" }
func (containerRmCmd) Description() string { return "Delete a container (its notes are kept)" }
func (containerRmCmd) Usage() string       { return "container-rm <id>" }

func (containerRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient(cfg).Do(ctx, http.MethodDelete, fmt.Sprintf("/containers/%d", id), nil, nil, true); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted container #%d\n", id)
	return nil
}

type containerNotesCmd struct{}

func (containerNotesCmd) Name() string        { return "container-notes" }
func (containerNotesCmd) Description() string { return "List notes linked to a container" }
func (containerNotesCmd) Usage() string       { return "container-notes <id>" }

func (containerNotesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var list []noteView
	if err := newClient(cfg).Do(ctx, http.MethodGet, fmt.Sprintf("/containers/%d/notes", id), nil, &list, true); err != nil {
		return err
	}
	printNotes(list)
	return nil
}

func init() {
	RegisterCmd(containersCmd{})
	RegisterCmd(containerAddCmd{})
	RegisterCmd(containerRmCmd{})
	RegisterCmd(containerNotesCmd{})
}
