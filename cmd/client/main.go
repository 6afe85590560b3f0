package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ParaVault/internal/cli/commands"
	"ParaVault/internal/config"
)

// задаются через -ldflags "-X main.version=… -X main.buildDate=…"
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// -h до имени команды: таблица команд, затем глобальные флаги
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), commands.FormatGlobalUsage())
		fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
		flag.PrintDefaults()
	}
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("paracli %s (built %s)\n", version, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	stop()
	os.Exit(code)
}
