// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal side of the vault: small Bubble Tea
// programs that ask the user for a line, a hidden secret or a yes/no answer,
// and lipgloss-styled renderers for entry lists and credential details.
package tui

import (
	"errors"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by every prompt the user leaves with esc or ctrl+c.
var ErrUserQuit = errors.New("user quit")

// ErrUnexpectedModel is returned when a program finishes with a model of a
// type the prompter did not start it with.
var ErrUnexpectedModel = errors.New("prompt finished with unexpected model")

type runFunc func(model tea.Model) (tea.Model, error)

// Prompter asks questions on a terminal. Each call runs one short-lived
// Bubble Tea program bound to the prompter's input and output.
type Prompter struct {
	run runFunc
}

var _ service.InteractiveInput = (*Prompter)(nil)

// NewPrompter creates a [Prompter] reading key presses from in and drawing
// on out (usually os.Stdin and os.Stdout).
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		run: func(model tea.Model) (tea.Model, error) {
			return tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
		},
	}
}

// ReadLine shows prompt and returns the visible line typed by the user.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	return p.readInput(newPromptModel(prompt, false))
}

// ReadSecret shows prompt and returns the line typed by the user. The input
// is masked while typing.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	return p.readInput(newPromptModel(prompt, true))
}

// Confirm shows prompt in a box and waits for y or n. Enter means no.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	final, err := p.run(newConfirmModel(prompt))
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, ErrUnexpectedModel
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.answer, nil
}

func (p *Prompter) readInput(model promptModel) (string, error) {
	final, err := p.run(model)
	if err != nil {
		return "", err
	}

	result, ok := final.(promptModel)
	if !ok {
		return "", ErrUnexpectedModel
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.input.Value(), nil
}
