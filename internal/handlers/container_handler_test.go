package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainers_CRUD(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "alice")

	c := mkContainer(t, router, token, "Q3 Launch", "P")
	assert.Equal(t, "Project", c.TypeDisplay)
	assert.Equal(t, "alice", c.Owner)
	assert.Nil(t, c.Description)

	mkContainer(t, router, token, "Health", "A")

	t.Run("list and filter, trailing slash accepted", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/containers/", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]container](t, rr), 2)

		rr = do(t, router, http.MethodGet, "/containers?type=A", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decode[[]container](t, rr)
		if assert.Len(t, list, 1) {
			assert.Equal(t, "Health", list[0].Name)
		}
	})

	t.Run("validation", func(t *testing.T) {
		rr := do(t, router, http.MethodPost, "/containers", token, map[string]string{"name": "x", "type": "Z"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		rr = do(t, router, http.MethodPost, "/containers", token, map[string]string{"name": strings.Repeat("n", 101), "type": "P"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("owner in body is ignored", func(t *testing.T) {
		rr := do(t, router, http.MethodPost, "/containers", token, map[string]any{"name": "R1", "type": "R", "owner": "bob"})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "alice", decode[container](t, rr).Owner)
	})

	t.Run("patch and put", func(t *testing.T) {
		path := fmt.Sprintf("/containers/%d", c.ID)
		rr := do(t, router, http.MethodPatch, path, token, map[string]any{"description": "launch plan"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		got := decode[container](t, rr)
		assert.Equal(t, "Q3 Launch", got.Name)
		if assert.NotNil(t, got.Description) {
			assert.Equal(t, "launch plan", *got.Description)
		}

		rr = do(t, router, http.MethodPut, path, token, map[string]any{"name": "Q3"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = do(t, router, http.MethodPut, path, token, map[string]any{"name": "Q3", "type": "ARCHIVE"})
		require.Equal(t, http.StatusOK, rr.Code)
		got = decode[container](t, rr)
		assert.Equal(t, "ARCHIVE", got.Type)
		assert.Equal(t, "Archive", got.TypeDisplay)
		assert.Nil(t, got.Description)
	})

	t.Run("delete keeps notes", func(t *testing.T) {
		n := mkNote(t, router, token, "Kickoff", "agenda")
		rr := do(t, router, http.MethodPost, fmt.Sprintf("/notes/%d/link", n.ID), token, map[string]any{"container_ids": []int64{c.ID}})
		require.Equal(t, http.StatusOK, rr.Code)

		rr = do(t, router, http.MethodDelete, fmt.Sprintf("/containers/%d", c.ID), token, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = do(t, router, http.MethodGet, fmt.Sprintf("/containers/%d", c.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = do(t, router, http.MethodGet, fmt.Sprintf("/notes/%d", n.ID), token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decode[note](t, rr).Containers)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/containers/abc", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestContainers_RequireAuth(t *testing.T) {
	router := newTestRouter(t)
	rr := do(t, router, http.MethodGet, "/containers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = do(t, router, http.MethodGet, "/containers", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
