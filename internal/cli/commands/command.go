package commands

import (
	"ParaVault/internal/cli/api"
	fsrepo "ParaVault/internal/cli/repo/fs"
	"ParaVault/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage — аргументы команды неверны; диспетчер печатает её Usage.
var ErrUsage = errors.New("usage")

// Command — подкоманда paracli. Каждая реализация регистрирует себя в init().
type Command interface {
	// Name — имя, которое набирает пользователь: "link", "note-add".
	Name() string
	// Description — одна строка для общей справки.
	Description() string
	// Usage — синтаксис вызова, например "link <note-id> <container-id>...".
	Usage() string
	// Run получает аргументы уже без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd кладёт команду в реестр под её именем в нижнем регистре.
// Повторная регистрация того же имени заменяет прежнюю команду.
func RegisterCmd(cmd Command) {
	registry[strings.ToLower(cmd.Name())] = cmd
}

// Get ищет команду без учёта регистра.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List — все команды по алфавиту.
func List() []Command {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Command, len(names))
	for i, name := range names {
		list[i] = registry[name]
	}
	return list
}

// FormatGlobalUsage собирает общую справку: глобальные флаги и таблицу команд.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("ParaVault CLI\n\n")
	b.WriteString("Usage:\n  paracli [--base-url <host:port>] [--token-file <path>] <command> [args]\n\n")
	b.WriteString("Commands:\n")

	list := List()
	width := 0
	for _, c := range list {
		width = max(width, len(c.Usage()))
	}
	for _, c := range list {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Usage(), c.Description())
	}
	b.WriteString("\nRun 'paracli help <command>' for a single command.\n")
	return b.String()
}

// newClient собирает HTTP-клиент с файловым хранилищем токенов из конфигурации.
func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, fsrepo.AuthFSStore{Path: cfg.TokenFile})
}
