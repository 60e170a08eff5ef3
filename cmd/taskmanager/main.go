package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/taskmanager/internal"
	"github.com/valter-silva-au/taskmanager/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	basePath := app.ResolveBasePath()

	a, err := app.NewApp(basePath, os.Stderr, os.Getenv("TASKMANAGER_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing taskmanager: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCmd(cli.Options{
		Runtime:  a.Runtime,
		LogLevel: &a.LogLevel,
		Version:  version,
		Commit:   commit,
		Date:     date,
	})
	err = root.Execute()
	_ = a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
