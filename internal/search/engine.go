// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search is the core orchestrator: it walks a document tree,
// feeding each HTML file through the htmlindex collaborator to populate
// a word trie and a document link graph, then answers boolean queries
// against those structures and ranks the results.
package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ackos95/SimpleSearchEngine/internal/graph"
	"github.com/Ackos95/SimpleSearchEngine/internal/htmlindex"
	"github.com/Ackos95/SimpleSearchEngine/internal/query"
	"github.com/Ackos95/SimpleSearchEngine/internal/trie"
	"github.com/Ackos95/SimpleSearchEngine/internal/tracing"
	"github.com/Ackos95/SimpleSearchEngine/pkg/logging"
)

const (
	inboundWeight = 0.7
	linkerWeight  = 0.4
)

// Result is one ranked hit: the document's path and its composite score.
type Result struct {
	Path  string
	Score float64
}

// Engine owns the word trie, the document link graph, and the
// insertion-ordered document table built during indexing.
type Engine struct {
	trie *trie.Trie
	docs *graph.Graph

	fileList      []*graph.Vertex
	fileWordCount []int
	docIndex      map[*graph.Vertex]int

	logger *logging.Logger
}

// New returns an empty Engine. A nil logger falls back to logging.Default().
func New(logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		trie:     trie.New(),
		docs:     graph.New(true),
		docIndex: map[*graph.Vertex]int{},
		logger:   logger,
	}
}

// Index walks root depth-first, parsing every .html/.htm file it finds
// and feeding the result into the word trie and link graph. Parser and
// filesystem errors are not caught: they propagate to the caller.
func (e *Engine) Index(ctx context.Context, root string) error {
	ctx, span := tracing.Start(ctx, "search.Index")
	defer span.End()

	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("search: resolve root %s: %w", root, err)
	}

	e.logger.Info("indexing started", "root", abs)
	if err := e.walk(abs); err != nil {
		return err
	}
	e.logger.Info("indexing complete", "documents", len(e.fileList))
	return nil
}

func (e *Engine) walk(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("search: stat %s: %w", path, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return fmt.Errorf("search: read dir %s: %w", path, err)
		}
		for _, entry := range entries {
			if err := e.walk(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext != "html" && ext != "htm" {
		return nil
	}

	result, err := htmlindex.Parse(path)
	if err != nil {
		return err
	}
	if err := e.handleLinks(path, result.Links); err != nil {
		return err
	}
	e.handleWords(path, result.Words)
	return nil
}

// handleLinks ensures graph vertices exist for path and each of its
// links, then adds a directed edge path→link for every link. A link
// target is resolved relative to path's own directory unless it is
// already absolute. Duplicate links within one document's link list are
// a parser-contract violation and propagate as graph.ErrAlreadyConnected.
func (e *Engine) handleLinks(path string, links []string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("search: resolve %s: %w", path, err)
	}
	if e.docs.GetNode(absPath) == nil {
		if _, err := e.docs.CreateNode(absPath, nil); err != nil {
			return err
		}
	}

	dir := filepath.Dir(absPath)
	for _, link := range links {
		target := link
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		target, err = filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("search: resolve link %s: %w", link, err)
		}

		if e.docs.GetNode(target) == nil {
			if _, err := e.docs.CreateNode(target, nil); err != nil {
				return err
			}
		}
		if err := e.docs.ConnectNodes(e.docs.GetNode(absPath), e.docs.GetNode(target)); err != nil {
			return err
		}
	}
	return nil
}

// handleWords assigns path the next document id, records its total token
// count, and inserts every word into the trie with its position within
// the document.
func (e *Engine) handleWords(path string, words []string) {
	absPath, _ := filepath.Abs(path)
	vertex := e.docs.GetNode(absPath)

	docID := len(e.fileList)
	e.fileList = append(e.fileList, vertex)
	e.fileWordCount = append(e.fileWordCount, len(words))
	e.docIndex[vertex] = docID

	for position, word := range words {
		node := e.trie.AddWord(word, true)
		postings := node.Postings()
		postings[docID] = append(postings[docID], position)
	}
}

// DocumentPath returns the absolute path of the document with the given
// id, as assigned during indexing.
func (e *Engine) DocumentPath(docID int) string {
	return e.fileList[docID].Key()
}
