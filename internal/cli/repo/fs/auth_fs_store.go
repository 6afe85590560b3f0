package fs

import (
	"ParaVault/internal/cli/repo"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoTokens — токены ещё не сохранены (пользователь не выполнял login).
var ErrNoTokens = errors.New("not logged in")

// AuthFSStore — файловое хранилище токенов CLI.
// Пустой Path означает файл tokens.json в пользовательском конфиг-каталоге.
type AuthFSStore struct {
	Path string
}

var _ repo.TokenStore = AuthFSStore{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ParaVault")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
			return "", err
		}
		return s.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tokens.json"), nil
}

// Save сохраняет пару токенов в файл (0600).
func (s AuthFSStore) Save(t repo.Tokens) error {
	if t.Access == "" {
		return errors.New("empty access token")
	}
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Load читает пару токенов из файла.
func (s AuthFSStore) Load() (repo.Tokens, error) {
	var t repo.Tokens
	p, err := s.tokenPath()
	if err != nil {
		return t, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return t, ErrNoTokens
	}
	if err != nil {
		return t, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return t, ErrNoTokens
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return repo.Tokens{}, err
	}
	t.Access = strings.TrimSpace(t.Access)
	t.Refresh = strings.TrimSpace(t.Refresh)
	if t.Access == "" {
		return repo.Tokens{}, ErrNoTokens
	}
	return t, nil
}

// Clear удаляет файл токенов; отсутствие файла ошибкой не считается.
func (s AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
