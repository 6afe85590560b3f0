package commands

import (
	"ParaVault/internal/config"
	"context"
	"errors"
	"fmt"
)

// коды завершения процесса
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Dispatch находит команду по args[0], запускает её и возвращает код завершения.
// "help", "help <command>" и флаг -h/--help после имени команды печатают справку.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name, rest := args[0], args[1:]
	if name == "help" || isHelpFlag(name) {
		return help(rest)
	}

	c, ok := Get(name)
	if !ok {
		return unknown(name)
	}
	for _, a := range rest {
		if isHelpFlag(a) {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return exitOK
		}
	}

	err := c.Run(ctx, cfg, rest)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		return exitFailure
	}
}

// help печатает общую справку или Usage одной команды.
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		return unknown(args[0])
	}
	fmt.Fprintf(Out, "Usage: %s\n%s\n", c.Usage(), c.Description())
	return exitOK
}

func unknown(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help" || s == "-help"
}
