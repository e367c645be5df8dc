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
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ackos95/SimpleSearchEngine/internal/search"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestPrintResultsFormatsRankedLines(t *testing.T) {
	rootPath = "/docs"
	out := captureStdout(t, func() {
		printResults([]search.Result{
			{Path: "/docs/a.html", Score: 3.9},
			{Path: "/docs/sub/b.html", Score: 1.2},
		})
	})

	assert.Contains(t, out, "1) a.html")
	assert.Contains(t, out, "2) sub/b.html")
	assert.Contains(t, out, "|        3 |")
	assert.Contains(t, out, "|        1 |")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("*", 100)))
}

func TestPrintResultsEmptySet(t *testing.T) {
	rootPath = "/docs"
	out := captureStdout(t, func() {
		printResults(nil)
	})
	assert.Contains(t, out, "No results found for the entered terms.")
}

func TestPrintInstructionEndsWithBreak(t *testing.T) {
	out := captureStdout(t, printInstruction)
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), strings.Repeat("*", 100)))
}
