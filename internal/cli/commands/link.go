package commands

import (
	"context"
	"fmt"
	"net/http"

	"ParaVault/internal/config"
)

type linkResponse struct {
	Status       string  `json:"status"`
	ContainerIDs []int64 `json:"container_ids"`
	IgnoredIDs   []int64 `json:"ignored_ids"`
}

// linkCmd обслуживает и link, и unlink: различается только action.
type linkCmd struct {
	action string
}

func (c linkCmd) Name() string { return c.action }
func (c linkCmd) Description() string {
	if c.action == "unlink" {
		return "Detach a note from containers"
	}
	return "Attach a note to containers (foreign ids are ignored)"
}
func (c linkCmd) Usage() string { return c.action + " <note-id> <container-id>..." }

func (c linkCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(args)-1)
	for _, a := range args[1:] {
		id, err := parseID(a)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	var resp linkResponse
	path := fmt.Sprintf("/notes/%d/%s", noteID, c.action)
	if err := newClient(cfg).Do(ctx, http.MethodPost, path, map[string][]int64{"container_ids": ids}, &resp, true); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s: %v\n", resp.Status, resp.ContainerIDs)
	if len(resp.IgnoredIDs) > 0 {
		fmt.Fprintf(Out, "ignored (not yours or missing): %v\n", resp.IgnoredIDs)
	}
	return nil
}

func init() {
	RegisterCmd(linkCmd{action: "link"})
	RegisterCmd(linkCmd{action: "unlink"})
}
