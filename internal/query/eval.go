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

// Interpretation supplies the operand semantics for EvaluatePostfix.
// SetInterpretation operates over []int (document id lists);
// IntInterpretation operates over int (word counts).
type Interpretation interface {
	And(first, second any) any
	Or(first, second any) any
	Not(operand, universe any) any
}

// Resolve maps a non-operator postfix token (a word or a "$_KEY-N"
// phrase placeholder) to its operand value.
type Resolve func(token string) any

// EvaluatePostfix evaluates a postfix token list against interp, using
// resolve to turn word/phrase tokens into operand values and universe as
// the right-hand side of NOT. It returns ErrInvalidInput if the postfix
// list is malformed (wrong operand count for some operator).
func EvaluatePostfix(postfix []string, resolve Resolve, universe any, interp Interpretation) (any, error) {
	operands := make([]any, 0, len(postfix))

	for _, tok := range postfix {
		switch tok {
		case "&", "|":
			if len(operands) < 2 {
				return nil, ErrInvalidInput
			}
			second := operands[len(operands)-1]
			first := operands[len(operands)-2]
			operands = operands[:len(operands)-2]

			var result any
			if tok == "&" {
				result = interp.And(first, second)
			} else {
				result = interp.Or(first, second)
			}
			operands = append(operands, result)

		case "!":
			if len(operands) < 1 {
				return nil, ErrInvalidInput
			}
			operand := operands[len(operands)-1]
			operands = operands[:len(operands)-1]
			operands = append(operands, interp.Not(operand, universe))

		default:
			operands = append(operands, resolve(tok))
		}
	}

	if len(operands) != 1 {
		return nil, ErrInvalidInput
	}
	return operands[0], nil
}

// SetInterpretation evaluates postfix expressions over []int operands
// representing unordered-but-stably-iterated document id sets.
type SetInterpretation struct{}

// And returns the elements of first that also occur in second, in
// first's order.
func (SetInterpretation) And(first, second any) any {
	a := first.([]int)
	b := second.([]int)
	inB := toSet(b)

	out := make([]int, 0, len(a))
	for _, x := range a {
		if inB[x] {
			out = append(out, x)
		}
	}
	return out
}

// Or interleaves first with the elements of second absent from first,
// falling back to appending whichever side runs longer once the other is
// exhausted.
func (SetInterpretation) Or(first, second any) any {
	a := first.([]int)
	b := second.([]int)
	inA := toSet(a)

	bOnly := make([]int, 0, len(b))
	for _, y := range b {
		if !inA[y] {
			bOnly = append(bOnly, y)
		}
	}

	n := len(a)
	if len(bOnly) > n {
		n = len(bOnly)
	}

	out := make([]int, 0, len(a)+len(bOnly))
	for i := 0; i < n; i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(bOnly) {
			out = append(out, bOnly[i])
		}
	}
	return out
}

// Not returns the elements of universe not present in operand.
func (SetInterpretation) Not(operand, universe any) any {
	op := operand.([]int)
	uni := universe.([]int)
	inOp := toSet(op)

	out := make([]int, 0, len(uni))
	for _, x := range uni {
		if !inOp[x] {
			out = append(out, x)
		}
	}
	return out
}

func toSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// IntInterpretation evaluates postfix expressions over int operands
// representing per-document word occurrence counts.
type IntInterpretation struct{}

// And returns the absolute difference between first and second.
func (IntInterpretation) And(first, second any) any {
	x, y := first.(int), second.(int)
	if x > y {
		return x - y
	}
	return y - x
}

// Or returns the sum of first and second.
func (IntInterpretation) Or(first, second any) any {
	return first.(int) + second.(int)
}

// Not returns universe minus operand.
func (IntInterpretation) Not(operand, universe any) any {
	return universe.(int) - operand.(int)
}
