// Package main is the entry point for the interactive rebase-todo editor
// (spec.md §6). Grounded on the teacher's cmd/keystorm/main.go: a thin
// parse-build-run-exit shell, generalized from the teacher's stdlib-flag
// parsing to the spec's exclusive-mode flag set, using cobra the way
// other repos in the retrieval pack build their CLI surface.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/logging"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/process"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/vcs"
)

// version is set via ldflags at build time.
var version = "dev"

const licenseText = `Git Interactive Rebase Tool
Copyright (C) 2026 The Git Interactive Rebase Tool Contributors

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU General Public License as published by the
Free Software Foundation, either version 3 of the License, or (at your
option) any later version.`

var (
	showLicense bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:           "git-interactive-rebase-tool [path]",
	Short:         "An interactive editor for git's rebase-todo file",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case showVersion:
			fmt.Printf("Git Interactive Rebase Tool %s\n", version)
			return nil
		case showLicense:
			fmt.Println(licenseText)
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one argument: the path to the rebase-todo file")
		}
		return runEditor(args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVar(&showLicense, "license", false, "Show license information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(events.ConfigError))
	}
	os.Exit(exitCode)
}

// exitCode carries the process exit status out of RunE, since cobra's
// Execute only reports success/failure, not the closed ExitStatus set
// spec.md §6 names.
var exitCode int

func runEditor(path string) error {
	repoRoot, err := repositoryRoot(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to resolve repository root: %v\n", err)
		exitCode = int(events.ConfigError)
		return nil
	}

	settings, err := config.Load(repoRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		exitCode = int(events.ConfigError)
		return nil
	}

	if settings.Editor == "" {
		settings.Editor = fallbackEditor()
	}

	doc, err := todo.Read(path, settings.CommentChar, int(settings.UndoLimit))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to read %q: %v\n", path, err)
		exitCode = int(events.FileReadError)
		return nil
	}

	repo, err := vcs.Open(repoRoot)
	if err != nil {
		// Commit preview degrades gracefully; diff loads simply never
		// complete when repo is nil (internal/diffloader).
		repo = nil
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to initialize terminal: %v\n", err)
		exitCode = int(events.KillExit)
		return nil
	}

	logFile, err := logging.OpenStateFile()
	var log *logging.Logger
	if err != nil {
		log = logging.Discard
	} else {
		defer logFile.Close()
		log = logging.New(logFile, logging.LevelInfo)
	}
	logging.Set(log)

	orchestrator := process.New(term, settings, doc, repo, log)
	exitCode = int(orchestrator.Run())
	return nil
}

// repositoryRoot locates the git repository a rebase-todo file belongs to
// by walking up from its directory, so config.Load and vcs.Open read the
// right repo's configuration even when invoked from elsewhere (spec.md §6,
// "git calls this tool with the todo file inside .git/rebase-merge").
func repositoryRoot(todoPath string) (string, error) {
	dir := filepath.Dir(todoPath)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	out, err := exec.Command("git", "-C", abs, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return abs, nil
	}
	return strings.TrimSpace(string(out)), nil
}

// fallbackEditor consults VISUAL then EDITOR (spec.md §6) when the VCS
// configuration does not name one.
func fallbackEditor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}
