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
	"sort"
	"strings"

	"github.com/Ackos95/SimpleSearchEngine/internal/graph"
	"github.com/Ackos95/SimpleSearchEngine/internal/query"
	"github.com/Ackos95/SimpleSearchEngine/internal/tracing"
)

// lookupCache memoizes, within one FindExpression call, the per-word
// trie postings and per-phrase hit counts so re-evaluating the same
// postfix expression per candidate document during ranking never
// re-walks the trie or recomputes a phrase match.
type lookupCache struct {
	wordPostings map[string]map[int][]int
	phraseHits   map[string]map[int]int
}

func newLookupCache() *lookupCache {
	return &lookupCache{
		wordPostings: map[string]map[int][]int{},
		phraseHits:   map[string]map[int]int{},
	}
}

// FindExpression parses expression, evaluates it against the index to
// obtain the matching document ids, and — unless side is true — ranks
// them by composite score before returning. side is used internally for
// phrase evaluation, which needs the raw candidate set without incurring
// a nested ranking pass.
func (e *Engine) FindExpression(ctx context.Context, expression string, side bool) ([]int, error) {
	_, span := tracing.Start(ctx, "search.FindExpression")
	defer span.End()

	ids, _, err := e.findExpression(expression, side, newLookupCache())
	return ids, err
}

// Search parses expression, evaluates it, and returns the matching
// documents ranked by composite score, highest first.
func (e *Engine) Search(ctx context.Context, expression string) ([]Result, error) {
	_, span := tracing.Start(ctx, "search.Search")
	defer span.End()

	ids, scores, err := e.findExpression(expression, false, newLookupCache())
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(ids))
	for i, id := range ids {
		results[i] = Result{Path: e.DocumentPath(id), Score: scores[id]}
	}
	return results, nil
}

func (e *Engine) findExpression(expression string, side bool, cache *lookupCache) ([]int, map[int]float64, error) {
	postfix, phrases, err := query.ConvertPostfix(expression)
	if err != nil {
		return nil, nil, err
	}

	universe := make([]int, len(e.fileList))
	for i := range universe {
		universe[i] = i
	}

	resolve := func(token string) any {
		if strings.HasPrefix(token, "$") {
			return e.searchPhrase(token, phrases, cache)
		}
		return e.searchWord(token, cache)
	}

	resultAny, err := query.EvaluatePostfix(postfix, resolve, universe, query.SetInterpretation{})
	if err != nil {
		return nil, nil, err
	}
	result := resultAny.([]int)

	if side {
		return result, nil, nil
	}

	ids, scores := e.rankResults(result, postfix, cache)
	return ids, scores, nil
}

// searchWord resolves a plain word token to the sorted list of document
// ids whose postings contain it, caching the underlying postings map for
// reuse by wordPriority.
func (e *Engine) searchWord(word string, cache *lookupCache) []int {
	return sortedIntKeys(e.wordPostings(word, cache))
}

// searchPhrase resolves a "$_KEY-N" token to the sorted list of document
// ids containing the phrase as a contiguous run of its constituent
// words, caching the per-document hit count for reuse by wordPriority.
func (e *Engine) searchPhrase(key string, phrases map[string]string, cache *lookupCache) []int {
	if hits, ok := cache.phraseHits[key]; ok {
		return sortedIntKeys(hits)
	}

	phraseText := phrases[strings.TrimPrefix(key, "$")]
	words := strings.Fields(phraseText)

	candidates, _, err := e.findExpression(phraseText, true, cache)
	if err != nil || len(words) == 0 {
		cache.phraseHits[key] = map[int]int{}
		return nil
	}

	positionSets := make([]map[int]map[int]bool, len(words))
	for i, w := range words {
		postings := e.wordPostings(w, cache)
		sets := make(map[int]map[int]bool, len(postings))
		for doc, positions := range postings {
			set := make(map[int]bool, len(positions))
			for _, p := range positions {
				set[p] = true
			}
			sets[doc] = set
		}
		positionSets[i] = sets
	}

	firstWordPostings := e.wordPostings(words[0], cache)

	hits := map[int]int{}
	for _, doc := range candidates {
		count := 0
		for _, start := range firstWordPostings[doc] {
			complete := true
			for i := 1; i < len(words); i++ {
				if !positionSets[i][doc][start+i] {
					complete = false
					break
				}
			}
			if complete {
				count++
			}
		}
		if count > 0 {
			hits[doc] = count
		}
	}

	cache.phraseHits[key] = hits
	return sortedIntKeys(hits)
}

func (e *Engine) wordPostings(word string, cache *lookupCache) map[int][]int {
	if postings, ok := cache.wordPostings[word]; ok {
		return postings
	}
	node := e.trie.GetNode(word, true)
	postings := map[int][]int{}
	if node != nil {
		postings = node.Postings()
	}
	cache.wordPostings[word] = postings
	return postings
}

// rankResults computes each result's composite score and sorts
// descending, keeping insertion order for ties.
func (e *Engine) rankResults(results []int, postfix []string, cache *lookupCache) ([]int, map[int]float64) {
	scores := make(map[int]float64, len(results))
	for _, docID := range results {
		scores[docID] = e.pageScore(docID, postfix, cache)
	}

	ranked := append([]int(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked, scores
}

func (e *Engine) pageScore(docID int, postfix []string, cache *lookupCache) float64 {
	own := e.wordPriority(docID, postfix, cache)

	vertex := e.fileList[docID]
	inbound := vertex.GetNumberOfEdges(graph.Incoming)

	var linkerSum float64
	for _, linker := range vertex.GetAllConnectedNodes(graph.Incoming) {
		linkerID, ok := e.docIndex[linker]
		if !ok {
			continue
		}
		linkerSum += e.wordPriority(linkerID, postfix, cache)
	}

	return own + inboundWeight*float64(inbound) + linkerWeight*linkerSum
}

// wordPriority re-evaluates postfix in the integer interpretation for a
// single document, with each token replaced by its match count there.
func (e *Engine) wordPriority(docID int, postfix []string, cache *lookupCache) float64 {
	resolve := func(token string) any {
		if strings.HasPrefix(token, "$") {
			hits := cache.phraseHits[token]
			return hits[docID]
		}
		return len(cache.wordPostings[token][docID])
	}

	universe := 0
	if docID < len(e.fileWordCount) {
		universe = e.fileWordCount[docID]
	}

	result, err := query.EvaluatePostfix(postfix, resolve, universe, query.IntInterpretation{})
	if err != nil {
		return 0
	}
	return float64(result.(int))
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
