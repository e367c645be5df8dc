// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ackos95/SimpleSearchEngine/internal/query"
)

func buildCorpus(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()

	docs := map[string]string{
		"doc0.html": `<html><body>python class python</body></html>`,
		"doc1.html": `<html><body>class java</body></html>`,
		"doc2.html": `<html><body>python <a href="doc0.html">link</a></body></html>`,
	}
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	e := New(nil)
	require.NoError(t, e.Index(context.Background(), dir))
	return e
}

func TestFindExpressionSingleWord(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "python", false)
	require.NoError(t, err)
	require.Len(t, results, 2)

	paths := make([]string, len(results))
	for i, id := range results {
		paths[i] = filepath.Base(e.DocumentPath(id))
	}
	assert.Equal(t, []string{"doc0.html", "doc2.html"}, paths)
}

func TestFindExpressionAndExcludesNonMatches(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "python AND class", false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc0.html", filepath.Base(e.DocumentPath(results[0])))
}

func TestFindExpressionNot(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "class AND NOT java", false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc0.html", filepath.Base(e.DocumentPath(results[0])))
}

func TestFindExpressionOr(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "java OR python", false)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestFindExpressionQuotedPhrase(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), `"python class"`, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc0.html", filepath.Base(e.DocumentPath(results[0])))
}

func TestFindExpressionNoMatches(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "nonexistentword", false)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindExpressionQuitPropagates(t *testing.T) {
	e := buildCorpus(t)

	_, err := e.FindExpression(context.Background(), "QUIT", false)
	assert.ErrorIs(t, err, query.ErrQuitRequest)
}

func TestRankingFavorsInboundLinks(t *testing.T) {
	e := buildCorpus(t)

	results, err := e.FindExpression(context.Background(), "python", false)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// doc0 is linked from doc2, so its score gets the 0.7*inbound and
	// 0.4*linker-word-count boosts on top of its own term frequency.
	assert.Equal(t, "doc0.html", filepath.Base(e.DocumentPath(results[0])))
	assert.Equal(t, "doc2.html", filepath.Base(e.DocumentPath(results[1])))
}
