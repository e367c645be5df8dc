// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package query implements the boolean query language: lexing,
// validation, shunting-yard conversion to postfix, and a generic postfix
// evaluator parameterized over the interpretation of its operands (sets
// of document ids, or integer counts).
package query

import "errors"

var (
	// ErrInvalidInput is returned whenever an expression fails lexing,
	// validation, or evaluation.
	ErrInvalidInput = errors.New("query: invalid input")

	// ErrQuitRequest is returned by ConvertPostfix when the expression
	// contains the QUIT sentinel. It is not an error condition in the
	// usual sense — callers use it to detect a request to exit.
	ErrQuitRequest = errors.New("query: quit requested")
)
