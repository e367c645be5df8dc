// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Ackos95/SimpleSearchEngine/internal/config"
	"github.com/Ackos95/SimpleSearchEngine/internal/tracing"
	"github.com/Ackos95/SimpleSearchEngine/pkg/logging"
	"github.com/Ackos95/SimpleSearchEngine/pkg/ux"
)

// --- Global command flags ---
var (
	rootPath    string
	personality string
	logLevel    string
	logDir      string
	traceDir    string

	sessionID string
	logger    *logging.Logger
	shutdown  func(ctxErr error) error

	rootCmd = &cobra.Command{
		Use:   "simplesearch",
		Short: "A local, in-memory full-text search engine over a directory of HTML documents",
		Long: `simplesearch indexes a directory tree of HTML documents into a word
trie and a document link graph, then answers boolean queries (AND/OR/NOT,
parentheses, "quoted phrases") against the index, ranking results by a
composite of term frequency and inbound-link weight.`,
		PersistentPreRunE: initSession,
		RunE:              runREPL,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootPath, "root", "", "document tree to index (prompted for if empty)")
	flags.StringVar(&personality, "personality", "", "console verbosity: full, minimal, machine")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logDir, "log-dir", "", "directory for log files (logs are not written to stderr)")
	flags.StringVar(&traceDir, "trace-dir", "", "directory for per-session OpenTelemetry trace dumps")
}

// initSession loads configuration, applies flag overrides, and wires up
// the console personality, the structured logger, and the tracer
// provider for the run. It is a cobra PersistentPreRunE so every
// subcommand (today there is only the root one) shares the same setup.
func initSession(cmd *cobra.Command, args []string) error {
	sessionID = uuid.New().String()

	if err := config.Load(); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := config.Global

	if personality != "" {
		// An explicit --personality flag bypasses terminal auto-detection.
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personality))
	} else {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(cfg.Personality))
		ux.InitPersonality()
	}

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	if logDir == "" {
		logDir = cfg.LogDir
	}
	logger = logging.New(logging.Config{
		Level:   parseLevel(logLevel),
		LogDir:  logDir,
		Service: "simplesearch",
		Quiet:   true,
	}).With("session_id", sessionID)

	if traceDir == "" {
		traceDir = cfg.TraceDir
	}
	var traceShutdown func(ctxErr error) error
	if traceDir != "" {
		if err := os.MkdirAll(traceDir, 0750); err != nil {
			return fmt.Errorf("create trace directory: %w", err)
		}
		f, err := os.Create(fmt.Sprintf("%s/%s.json", traceDir, sessionID))
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		stop, err := tracing.Setup(f)
		if err != nil {
			return err
		}
		traceShutdown = func(error) error { defer f.Close(); return stop(cmd.Context()) }
	} else {
		stop, err := tracing.SetupDiscard()
		if err != nil {
			return err
		}
		traceShutdown = func(error) error { return stop(cmd.Context()) }
	}
	shutdown = traceShutdown

	if rootPath == "" {
		rootPath = cfg.Root
	}
	return nil
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
