package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ParaVault/internal/config"
)

type noteView struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	IsArchived bool    `json:"is_archived"`
	Containers []int64 `json:"containers"`
}

func printNote(n noteView) {
	fmt.Fprintf(Out, "- #%d  %s", n.ID, n.Title)
	if n.IsArchived {
		fmt.Fprint(Out, " (archived)")
	}
	if len(n.Containers) > 0 {
		ids := make([]string, 0, len(n.Containers))
		for _, id := range n.Containers {
			ids = append(ids, fmt.Sprintf("#%d", id))
		}
		fmt.Fprintf(Out, "  in %s", strings.Join(ids, ","))
	}
	fmt.Fprintln(Out)
}

func printNotes(list []noteView) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "No notes")
		return
	}
	for _, n := range list {
		printNote(n)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
}

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "List notes, optionally filtered by search terms" }
func (notesCmd) Usage() string       { return "notes [search...]" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	path := "/notes"
	if len(args) > 0 {
		path += "?search=" + url.QueryEscape(strings.Join(args, " "))
	}
	var list []noteView
	if err := newClient(cfg).Do(ctx, http.MethodGet, path, nil, &list, true); err != nil {
		return err
	}
	printNotes(list)
	return nil
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Create a note" }
func (noteAddCmd) Usage() string       { return "note-add <title> <content>" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var n noteView
	req := map[string]string{"title": args[0], "content": args[1]}
	if err := newClient(cfg).Do(ctx, http.MethodPost, "/notes", req, &n, true); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printNote(n)
	return nil
}

type noteRmCmd struct{}

func (noteRmCmd) Name() string        { return "note-rm" }
func (noteRmCmd) Description() string { return "Archive a note" }
func (noteRmCmd) Usage() string       { return "note-rm <id>" }

func (noteRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient(cfg).Do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil, true); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Archived note #%d\n", id)
	return nil
}

func init() {
	RegisterCmd(notesCmd{})
	RegisterCmd(noteAddCmd{})
	RegisterCmd(noteRmCmd{})
}
