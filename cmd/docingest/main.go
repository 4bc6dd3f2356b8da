package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/otrixindiacloud/tradix-docingest/internal/config"
	"github.com/otrixindiacloud/tradix-docingest/internal/ingest"
	"github.com/otrixindiacloud/tradix-docingest/internal/mcp"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode.
func setupLogging(cfg *config.Config) {
	if cfg.IsServeMode() {
		// In serve mode, redirect log output to stderr to avoid interfering
		// with the stdio protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}
}

// parseFile runs one document through the pipeline and prints the result as
// indented JSON on stdout.
func parseFile(svc *ingest.Service, docType, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	req := ingest.ParseDocumentRequest{
		Filename: filepath.Base(path),
		Data:     data,
	}

	var result any
	switch docType {
	case config.DocTypeDelivery:
		result, err = svc.ParseDelivery(req)
	default:
		result, err = svc.ParseReceipt(req)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// runParseMode parses each file argument in turn.
func runParseMode(cfg *config.Config, svc *ingest.Service, files []string) {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no input files; pass one or more PDF paths")
		pflag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range files {
		if err := parseFile(svc, cfg.DocType, path); err != nil {
			log.Printf("parse failed for %s: %v", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// runServeMode runs the stdio tool server until the parent closes stdin.
func runServeMode(cfg *config.Config, svc *ingest.Service) {
	server, err := mcp.NewServer(cfg, svc)
	if err != nil {
		log.Fatalf("Failed to create tool server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	svc := ingest.NewService(cfg.MaxFileSize, cfg.MinTextLength, cfg.TempDir)

	if cfg.IsServeMode() {
		runServeMode(cfg, svc)
	} else {
		runParseMode(cfg, svc, pflag.Args())
	}
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("docingest\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
