package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"ParaVault/internal/cli/repo"
	fsrepo "ParaVault/internal/cli/repo/fs"
)

func tempStore(t *testing.T, tokens *repo.Tokens) fsrepo.AuthFSStore {
	t.Helper()
	st := fsrepo.AuthFSStore{Path: filepath.Join(t.TempDir(), "tokens.json")}
	if tokens != nil {
		if err := st.Save(*tokens); err != nil {
			t.Fatalf("save tokens: %v", err)
		}
	}
	return st
}

func TestDo_SendsBearer_And_DecodesBody(t *testing.T) {
	st := tempStore(t, &repo.Tokens{Access: "tok123", Refresh: "r"})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("Authorization header: %q", got)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["x"] != float64(1) {
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	c := NewClient(ts.URL+"/", st)
	if err := c.Do(context.Background(), http.MethodPost, "/api", map[string]any{"x": 1}, &out, true); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !out.OK {
		t.Fatalf("body not decoded")
	}
}

func TestDo_AnonymousRequestHasNoAuthHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("unexpected Authorization header")
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()
	if err := NewClient(ts.URL, tempStore(t, nil)).Do(context.Background(), http.MethodPost, "/users/register", map[string]string{}, nil, false); err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestDo_NotLoggedIn(t *testing.T) {
	c := NewClient("http://example.invalid", tempStore(t, nil))
	err := c.Do(context.Background(), http.MethodGet, "/notes", nil, nil, true)
	if !errors.Is(err, fsrepo.ErrNoTokens) {
		t.Fatalf("expected ErrNoTokens, got %v", err)
	}
}

func TestDo_MarshalError(t *testing.T) {
	c := NewClient("http://example.invalid", tempStore(t, nil))
	if err := c.Do(context.Background(), http.MethodPost, "/", map[string]any{"c": make(chan int)}, nil, false); err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestDo_StatusErrorCarriesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"name is required"}`))
	}))
	defer ts.Close()
	err := NewClient(ts.URL, tempStore(t, nil)).Do(context.Background(), http.MethodPost, "/x", map[string]string{}, nil, false)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusBadRequest || se.Message != "name is required" {
		t.Fatalf("unexpected error: %+v", se)
	}
	if !IsStatus(err, http.StatusBadRequest) || IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus mismatch")
	}
}

func TestDo_RefreshesOnceOn401(t *testing.T) {
	st := tempStore(t, &repo.Tokens{Access: "old", Refresh: "ref-1"})
	var calls, refreshes int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == refreshPath {
			atomic.AddInt32(&refreshes, 1)
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in["refresh"] != "ref-1" {
				t.Fatalf("unexpected refresh token: %v", in)
			}
			_, _ = w.Write([]byte(`{"access":"new"}`))
			return
		}
		atomic.AddInt32(&calls, 1)
		if r.Header.Get("Authorization") != "Bearer new" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	var out []any
	if err := NewClient(ts.URL, st).Do(context.Background(), http.MethodGet, "/notes", nil, &out, true); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if c, r := atomic.LoadInt32(&calls), atomic.LoadInt32(&refreshes); c != 2 || r != 1 {
		t.Fatalf("calls=%d refreshes=%d", c, r)
	}
	got, _ := st.Load()
	if got.Access != "new" || got.Refresh != "ref-1" {
		t.Fatalf("tokens not updated: %+v", got)
	}
}

func TestDo_RefreshRejected(t *testing.T) {
	st := tempStore(t, &repo.Tokens{Access: "old", Refresh: "expired"})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()
	err := NewClient(ts.URL, st).Do(context.Background(), http.MethodGet, "/notes", nil, nil, true)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access":"fresh"}`))
	}))
	defer ts.Close()

	st := tempStore(t, &repo.Tokens{Access: "a", Refresh: "r"})
	if err := NewClient(ts.URL, st).Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got, _ := st.Load()
	if got.Access != "fresh" {
		t.Fatalf("access not replaced: %+v", got)
	}

	noRefresh := tempStore(t, &repo.Tokens{Access: "a"})
	if err := NewClient(ts.URL, noRefresh).Refresh(context.Background()); err == nil {
		t.Fatalf("expected error without refresh token")
	}
}
