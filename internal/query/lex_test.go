// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPostfixSimpleAnd(t *testing.T) {
	postfix, phrases, err := ConvertPostfix("python AND class")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "class", "&"}, postfix)
	assert.Empty(t, phrases)
}

func TestConvertPostfixImplicitAnd(t *testing.T) {
	postfix, _, err := ConvertPostfix("python class")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "class", "&"}, postfix)
}

func TestConvertPostfixImplicitAndBeforeNot(t *testing.T) {
	postfix, _, err := ConvertPostfix("python NOT class")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "class", "!", "&"}, postfix)
}

func TestConvertPostfixOperatorPriority(t *testing.T) {
	postfix, _, err := ConvertPostfix("a OR b AND c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "&", "|"}, postfix)
}

func TestConvertPostfixParentheses(t *testing.T) {
	postfix, _, err := ConvertPostfix("(a OR b) AND c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "|", "c", "&"}, postfix)
}

func TestConvertPostfixQuotedPhrase(t *testing.T) {
	postfix, phrases, err := ConvertPostfix(`"quick brown" AND fox`)
	require.NoError(t, err)
	require.Len(t, postfix, 3)
	assert.Equal(t, "fox", postfix[1])
	assert.Equal(t, "&", postfix[2])
	assert.Equal(t, "quick brown", phrases["_KEY-1"])
	assert.Equal(t, "$_KEY-1", postfix[0])
}

func TestConvertPostfixAndreWSubstringBugPreserved(t *testing.T) {
	// "ANDREW" contains the substring "AND", so the literal keyword
	// substitution turns it into "&REW" before tokenization ever sees a
	// word boundary — the query then fails validation because the
	// resulting token stream starts with a binary operator, exactly the
	// kind of surprising failure the substring-replace quirk produces.
	_, _, err := ConvertPostfix("ANDREW")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixQuitSentinel(t *testing.T) {
	_, _, err := ConvertPostfix("QUIT")
	assert.ErrorIs(t, err, ErrQuitRequest)
}

func TestConvertPostfixQuitCheckedBeforePhraseExtraction(t *testing.T) {
	_, _, err := ConvertPostfix(`"QUIT now"`)
	assert.ErrorIs(t, err, ErrQuitRequest)
}

func TestConvertPostfixEmptyExpression(t *testing.T) {
	_, _, err := ConvertPostfix("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixUnbalancedParens(t *testing.T) {
	_, _, err := ConvertPostfix("(python AND class")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixLeadingBinaryOperator(t *testing.T) {
	_, _, err := ConvertPostfix("AND python")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixTrailingBinaryOperator(t *testing.T) {
	_, _, err := ConvertPostfix("python AND")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixDoubleNot(t *testing.T) {
	_, _, err := ConvertPostfix("python AND NOT NOT class")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixUnseparatedPhrase(t *testing.T) {
	_, _, err := ConvertPostfix(`python"quoted"`)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixAdjacentParenGroupsRejected(t *testing.T) {
	_, _, err := ConvertPostfix("(python)(java)")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertPostfixCloseParenBeforeNotIsImplicitAnd(t *testing.T) {
	postfix, _, err := ConvertPostfix("(python) NOT java")
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "java", "!", "&"}, postfix)
}
