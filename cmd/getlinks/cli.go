package main

import (
	"context"
	"io"

	"github.com/fwojciec/getlinks"
)

// Parser names accepted by --parser.
const (
	ParserRegexp  = "regexp"
	ParserGoquery = "goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source    getlinks.DocumentSource
	Extractor getlinks.LinkExtractor
	Formatter getlinks.Formatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files       []string `arg:"" optional:"" name:"file" help:"HTML files to scan (default: standard input, \"-\" for standard input)"`
	Max         int      `short:"n" default:"10" env:"GETLINKS_MAX" help:"Maximum links per document"`
	Parser      string   `short:"p" default:"regexp" enum:"regexp,goquery" env:"GETLINKS_PARSER" help:"Anchor matcher: regexp or goquery"`
	Format      string   `short:"f" default:"text" enum:"text,json,yaml" env:"GETLINKS_FORMAT" help:"Output format: text, json or yaml"`
	Include     []string `short:"I" sep:"none" help:"Only keep links matching regex (repeatable)"`
	Exclude     []string `short:"X" sep:"none" help:"Drop links matching regex (repeatable)"`
	Unique      bool     `short:"u" help:"Suppress links already printed for an earlier document"`
	FPRate      float64  `name:"fp-rate" default:"0.001" help:"False positive rate for --unique"`
	Concurrency int      `short:"c" default:"4" help:"Documents processed concurrently"`
	MaxBytes    int64    `name:"max-bytes" default:"33554432" help:"Size limit per document in bytes"`
	Verbose     bool     `short:"v" help:"Log operations to standard error"`
}

// ExtractCmd reads documents, extracts their links and writes the results.
type ExtractCmd struct {
	Names       []string
	MaxLinks    int
	Unique      bool
	FPRate      float64
	Concurrency int
}
