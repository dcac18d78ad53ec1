package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/capture"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Captures  locprof.CaptureService
	Extractor locprof.ProfileExtractor
	Fetcher   locprof.Fetcher
	Capturer  *capture.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `env:"LOCPROF_DB" help:"SQLite database path (default: ~/.locprof/locprof.db)"`
	Verbose bool   `short:"v" help:"Log fetches and extraction to stderr"`

	Extract   ExtractCmd   `cmd:"" help:"Extract a profile from a saved page or URL"`
	Capture   CaptureCmd   `cmd:"" help:"Fetch and store profiles from many URLs"`
	List      ListCmd      `cmd:"" help:"List stored captures"`
	Show      ShowCmd      `cmd:"" help:"Print a stored capture as JSON"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored capture"`
	Shortlist ShortlistCmd `cmd:"" help:"Export stored captures as shortlist entries"`
}

// FetchOptions configures how profile pages are fetched.
type FetchOptions struct {
	Browser    bool          `short:"b" help:"Render pages in a headless browser"`
	ControlURL string        `name:"control-url" env:"LOCPROF_CONTROL_URL" help:"DevTools URL of a running browser to attach to"`
	Timeout    time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Settle     time.Duration `default:"500ms" help:"Time to let a rendered page settle"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"Saved HTML file or profile URL"`
	URL    string `name:"url" short:"u" help:"Profile URL a saved file was captured from"`
	Save   bool   `short:"s" help:"Store the capture in the database"`
	Out    string `short:"o" type:"path" help:"Also write the capture as JSON under this directory"`

	FetchOptions `embed:""`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URLs        []string `arg:"" optional:"" help:"Profile URLs"`
	File        string   `short:"f" help:"Read profile URLs from a file, one per line"`
	Out         string   `short:"o" type:"path" help:"Write captures as JSON under this directory instead of the database"`
	Batch       string   `default:"profiles" help:"Directory name for the batch under --out"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"0.5" help:"Requests per second per domain (0 disables limiting)"`

	FetchOptions `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name  string `short:"n" help:"Only captures with this profile name"`
	Limit int    `short:"l" help:"Maximum number of captures to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Capture ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Capture ID"`
	Force bool   `help:"Confirm deletion"`
}

// ShortlistCmd is the "shortlist" subcommand.
type ShortlistCmd struct {
	Format string `enum:"json,csv" default:"json" help:"Output format (json, csv)"`
	Name   string `short:"n" help:"Only captures with this profile name"`
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
