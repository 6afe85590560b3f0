// Package api — HTTP-клиент CLI к серверу ParaVault.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ParaVault/internal/cli/repo"
)

const refreshPath = "/users/token/refresh"

// StatusError — ответ сервера с кодом не из 2xx.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Code)
	}
	return fmt.Sprintf("server status %d: %s", e.Code, e.Message)
}

// IsStatus сообщает, что err — ответ сервера с указанным кодом.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Client отправляет JSON-запросы, подставляя Bearer-токен из хранилища.
type Client struct {
	BaseURL string
	Store   repo.TokenStore
	HTTP    *http.Client
}

func NewClient(baseURL string, store repo.TokenStore) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Store:   store,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Do выполняет запрос. При authed=true добавляет access-токен, а на 401
// один раз обновляет его через refresh-токен и повторяет запрос.
// Тело ответа декодируется в out, если out != nil и код 2xx.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any, authed bool) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = b
	}

	var tokens repo.Tokens
	if authed {
		t, err := c.Store.Load()
		if err != nil {
			return err
		}
		tokens = t
	}

	code, respBody, err := c.send(ctx, method, path, body, tokens.Access)
	if err != nil {
		return err
	}
	if code == http.StatusUnauthorized && authed && tokens.Refresh != "" {
		access, rerr := c.refresh(ctx, tokens.Refresh)
		if rerr != nil {
			return rerr
		}
		tokens.Access = access
		if err := c.Store.Save(tokens); err != nil {
			return fmt.Errorf("saving tokens: %w", err)
		}
		code, respBody, err = c.send(ctx, method, path, body, tokens.Access)
		if err != nil {
			return err
		}
	}
	if code < 200 || code > 299 {
		return &StatusError{Code: code, Message: errorMessage(respBody)}
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}
	return nil
}

// Refresh обменивает сохранённый refresh-токен на новый access-токен.
func (c *Client) Refresh(ctx context.Context) error {
	tokens, err := c.Store.Load()
	if err != nil {
		return err
	}
	if tokens.Refresh == "" {
		return errors.New("no refresh token stored")
	}
	access, err := c.refresh(ctx, tokens.Refresh)
	if err != nil {
		return err
	}
	tokens.Access = access
	return c.Store.Save(tokens)
}

func (c *Client) refresh(ctx context.Context, refresh string) (string, error) {
	b, _ := json.Marshal(map[string]string{"refresh": refresh})
	code, body, err := c.send(ctx, http.MethodPost, refreshPath, b, "")
	if err != nil {
		return "", err
	}
	if code != http.StatusOK {
		return "", &StatusError{Code: code, Message: "session expired, please login again"}
	}
	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Access == "" {
		return "", fmt.Errorf("decode refresh response: %v", err)
	}
	return resp.Access, nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, token string) (int, []byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// errorMessage достаёт поле error из тела ответа, иначе возвращает тело как есть.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
