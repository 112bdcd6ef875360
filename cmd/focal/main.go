package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mbenedek/focal/internal/cli"
	"github.com/mbenedek/focal/internal/db"
	"github.com/mbenedek/focal/internal/repository"
	"github.com/mbenedek/focal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.focal/focal.db
	dbPath := os.Getenv("FOCAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".focal", "focal.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	tagRepo := repository.NewSQLiteTagRepo(database)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo),
		Tags:     service.NewTagService(tagRepo),
		Stats:    service.NewStatsService(sessionRepo, tagRepo),
	}

	// Detect interactive terminal for the huh form and timer program.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
