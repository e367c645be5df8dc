// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// AskInput prompts for a single line of text: a root directory, a query.
// In machine mode it falls back to a bare stdin read with no styling, so
// the prompt can be driven by a script feeding lines on stdin.
func AskInput(question string, placeholder string) (string, error) {
	if GetPersonality().Level == PersonalityMachine || !IsInteractive() {
		return askInputPlain(question)
	}

	var value string
	input := huh.NewInput().
		Title(question).
		Placeholder(placeholder).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(input)).WithTheme(searchTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// AskConfirm presents a yes/no confirmation.
func AskConfirm(question string, defaultYes bool) (bool, error) {
	if GetPersonality().Level == PersonalityMachine || !IsInteractive() {
		return askConfirmPlain(question, defaultYes)
	}

	confirmed := defaultYes
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm)).WithTheme(searchTheme())
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// stdinReader is shared by the plain prompts so lines buffered by one read
// stay available to the next prompt.
var stdinReader = bufio.NewReader(os.Stdin)

func askInputPlain(question string) (string, error) {
	fmt.Printf("%s: ", question)
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

func askConfirmPlain(question string, defaultYes bool) (bool, error) {
	def := "y/N"
	if defaultYes {
		def = "Y/n"
	}
	fmt.Printf("%s [%s]: ", question, def)

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return defaultYes, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return defaultYes, nil
	}
	return line == "y" || line == "yes", nil
}

// searchTheme returns a huh theme using the console color palette.
func searchTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(ColorAccent)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	return t
}
