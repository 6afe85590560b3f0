package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"ParaVault/internal/cli/repo"
	fsrepo "ParaVault/internal/cli/repo/fs"
	"ParaVault/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы файл токенов создавался в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// testConfig возвращает конфиг клиента, смотрящий на serverURL, с токенами в temp.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := withTempConfig(t)
	return &config.Config{ServerURL: serverURL, TokenFile: filepath.Join(dir, "tokens.json")}
}

// loggedIn кладёт в хранилище готовую пару токенов.
func loggedIn(t *testing.T, cfg *config.Config) {
	t.Helper()
	if err := (fsrepo.AuthFSStore{Path: cfg.TokenFile}).Save(repo.Tokens{Access: "acc", Refresh: "ref"}); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
}
