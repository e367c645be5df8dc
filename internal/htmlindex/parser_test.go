// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package htmlindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReaderExtractsLinksAndWords(t *testing.T) {
	const doc = `<html><body>
		<p>python class python</p>
		<a href="doc1.html">link one</a>
		<a href="doc2.html">link two</a>
	</body></html>`

	result, err := ParseReader(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"doc1.html", "doc2.html"}, result.Links)
	assert.Equal(t, []string{"python", "class", "python", "link", "one", "link", "two"}, result.Words)
}

func TestParseReaderDedupesRepeatedHref(t *testing.T) {
	const doc = `<html><body>
		<a href="doc1.html">one</a>
		<a href="doc1.html">again</a>
	</body></html>`

	result, err := ParseReader(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"doc1.html"}, result.Links)
}

func TestParseReaderSkipsScriptAndStyleContent(t *testing.T) {
	const doc = `<html><head><style>.cls { color: red; }</style></head>
		<body><script>var x = 1;</script><p>python</p></body></html>`

	result, err := ParseReader(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, result.Words)
}

func TestParseReaderSkipsExternalLinks(t *testing.T) {
	const doc = `<html><body>
		<a href="doc1.html">local</a>
		<a href="http://example.com/page.html">external</a>
		<a href="https://example.com/page.html">external https</a>
		<a href="mailto:someone@example.com">mail</a>
	</body></html>`

	result, err := ParseReader(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"doc1.html"}, result.Links)
}

func TestParseReaderEmptyDocument(t *testing.T) {
	result, err := ParseReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, result.Links)
	assert.Empty(t, result.Words)
}
