package handlers

import (
	"ParaVault/internal/model"
	"time"
)

type userView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func newUserView(u *model.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type containerView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	TypeDisplay string    `json:"type_display"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       string    `json:"owner"`
}

func newContainerView(c *model.Container) containerView {
	return containerView{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		TypeDisplay: c.Type.Display(),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Owner:       ownerName(c.Owner),
	}
}

func newContainerViews(cs []model.Container) []containerView {
	out := make([]containerView, 0, len(cs))
	for i := range cs {
		out = append(out, newContainerView(&cs[i]))
	}
	return out
}

type noteView struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Owner      string    `json:"owner"`
	Containers []int64   `json:"containers"`
}

func newNoteView(n *model.Note) noteView {
	return noteView{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		IsArchived: n.IsArchived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Owner:      ownerName(n.Owner),
		Containers: n.ContainerIDs(),
	}
}

func newNoteViews(ns []model.Note) []noteView {
	out := make([]noteView, 0, len(ns))
	for i := range ns {
		out = append(out, newNoteView(&ns[i]))
	}
	return out
}

func ownerName(u *model.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
