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
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ackos95/SimpleSearchEngine/internal/query"
	"github.com/Ackos95/SimpleSearchEngine/internal/search"
	"github.com/Ackos95/SimpleSearchEngine/pkg/ux"
)

const resultBreak = "****************************************************************************************************"

// runREPL prompts once for the document root, indexes it, then repeatedly
// prompts for a query expression until the user types QUIT or closes
// stdin. It never returns a non-nil error for ordinary termination: QUIT
// and EOF both exit the process with status 0, matching the original
// console's exit contract.
func runREPL(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if shutdown != nil {
			_ = shutdown(nil)
		}
	}()

	if rootPath == "" {
		path, err := ux.AskInput("Enter the path to the database", "")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		rootPath = path
	}

	printInstruction()
	ux.Info("Loading. Please wait...")

	engine := search.New(logger)
	if err := engine.Index(ctx, rootPath); err != nil {
		return fmt.Errorf("index %s: %w", rootPath, err)
	}

	for {
		expression, err := ux.AskInput("Enter search terms (or 'QUIT' to exit)", "")
		if err != nil && errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if err := runQuery(ctx, engine, expression); err != nil {
			if errors.Is(err, query.ErrQuitRequest) {
				break
			}
			if errors.Is(err, query.ErrInvalidInput) {
				ux.Warning("Malformed request, please try again.")
				continue
			}
			// Structural-invariant violations (trie/graph/stack) are
			// contract breaches, not user error: they propagate.
			return err
		}
	}

	ux.Success("Goodbye")
	return nil
}

func runQuery(ctx context.Context, engine *search.Engine, expression string) error {
	results, err := engine.Search(ctx, expression)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

func printResults(results []search.Result) {
	fmt.Println("Search results:")
	fmt.Println()
	fmt.Println(resultBreak)

	if len(results) == 0 {
		fmt.Println("No results found for the entered terms.")
	} else {
		for i, result := range results {
			relpath, err := filepath.Rel(rootPath, result.Path)
			if err != nil {
				relpath = result.Path
			}
			fmt.Printf("%d) %-40s | %8d |\n", i+1, relpath, int(result.Score))
		}
	}

	fmt.Println(resultBreak)
	fmt.Println()
}

func printInstruction() {
	fmt.Println()
	ux.Title("Instructions:")
	fmt.Println("Entering more than one word separated by whitespace returns the set of")
	fmt.Println("documents containing all of those words.")
	fmt.Println()
	fmt.Println(`Boolean keywords are "AND", "OR" and "NOT" (or "&", "|", "!"). "NOT" is a`)
	fmt.Println(`unary operator of the highest priority; "AND" and "OR" are binary operators`)
	fmt.Println(`of lower priority ("AND" binds tighter than "OR").`)
	fmt.Println()
	fmt.Println(`To search for a phrase, wrap it in "double quotes".`)
	fmt.Println()
	fmt.Println(strings.Repeat("*", 100))
}
