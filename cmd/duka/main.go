package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	clientapi "github.com/dukapos/duka/internal/client/api"
	"github.com/dukapos/duka/internal/client/cli"
	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Sync server URL")
	dataDir := flag.String("data", ".", "Data directory for local databases")
	interval := flag.Duration("interval", 30*time.Second, "Replication interval")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	stdio := iocli.NewStdio()
	apiClient := clientapi.NewClient(*serverURL)
	rt := runtime.New(runtime.Config{
		DataDir:   *dataDir,
		ServerURL: *serverURL,
		Interval:  *interval,
	}, logger)

	var err error
	switch command {
	case "register":
		err = cli.RunRegister(ctx, stdio, apiClient)
	case "login":
		err = cli.RunLogin(ctx, stdio, apiClient, *dataDir)
	case "logout":
		err = cli.RunLogout(ctx, stdio, *dataDir)
	case "status":
		err = cli.RunStatus(ctx, stdio, *dataDir)
	case "sync":
		err = cli.RunSync(ctx, stdio, rt)
	case "list":
		err = cli.RunList(ctx, stdio, rt, args[1:])
	case "get":
		err = cli.RunGet(ctx, stdio, rt, args[1:])
	case "add":
		err = cli.RunAdd(ctx, stdio, rt, args[1:])
	case "patch":
		err = cli.RunPatch(ctx, stdio, rt, args[1:])
	case "delete":
		err = cli.RunDelete(ctx, stdio, rt, args[1:])
	case "watch":
		err = cli.RunWatch(ctx, stdio, rt, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("duka POS sync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
}
