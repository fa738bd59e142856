package main

import (
	"context"
	"io"

	"github.com/beltools/radseek"
	"github.com/beltools/radseek/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	DB     *sqlite.DB

	History radseek.HistoryService

	// NewSearcher builds a Searcher for the given configuration. Commands
	// construct their configuration from flags and call this once per
	// session.
	NewSearcher func(config radseek.Config) (radseek.Searcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Run one query against the corpus"`
	Repl    ReplCmd    `cmd:"" help:"Interactive query loop"`
	History HistoryCmd `cmd:"" help:"Show or clear query history"`
}

// corpusFlags are the corpus and retrieval settings shared by the search
// and repl commands.
type corpusFlags struct {
	Root        string   `short:"r" default:"radar_data" help:"Corpus root directory"`
	MaxDepth    int      `default:"10" help:"Maximum directory nesting depth"`
	Ext         []string `short:"e" help:"File extensions to search (default: .txt,.log,.dat,.csv)"`
	TopN        int      `short:"n" default:"8" help:"Maximum number of results"`
	Window      int      `short:"w" default:"80" help:"Snippet window in bytes"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent file processing limit"`
	Duplicates  bool     `help:"Also return files with duplicate content"`
}

// config converts the flags to a radseek.Config.
func (f corpusFlags) config() radseek.Config {
	config := radseek.DefaultConfig()
	config.Root = f.Root
	config.MaxDepth = f.MaxDepth
	if len(f.Ext) > 0 {
		config.Extensions = f.Ext
	}
	config.TopN = f.TopN
	config.SnippetWindow = f.Window
	config.Concurrency = f.Concurrency
	config.KeepDuplicates = f.Duplicates
	return config
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	corpusFlags
	Query []string `arg:"" help:"Query terms"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct {
	corpusFlags
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int  `short:"l" default:"20" help:"Number of entries to show"`
	Clear bool `help:"Delete all history entries"`
}
