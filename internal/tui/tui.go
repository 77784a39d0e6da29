// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Passbuilder.
// This file, tui.go, holds the phrase screen: a text input with a live
// requirement checklist, the playbook and the generated suggestion.
package tui // import "github.com/toeirei/passbuilder/internal/tui"

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passbuilder/internal/form"
	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/logging"
)

// Options configure the phrase screen.
type Options struct {
	// ShowPlaybook opens the screen with the playbook pane visible.
	ShowPlaybook bool
	// Rand feeds the random suffix of suggestions. Nil uses crypto/rand.
	Rand io.Reader
	// Version is shown in the footer.
	Version string
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// model is the phrase screen. All state lives here; nothing is kept in
// package-level variables.
type model struct {
	form         *form.State
	input        textinput.Model
	keys         keyMap
	help         help.Model
	showPlaybook bool
	status       string
	statusErr    bool
	version      string
	width        int

	// writeClipboard is clipboard.WriteAll outside tests.
	writeClipboard func(string) error
}

func newModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("form.placeholder")
	ti.Prompt = i18n.T("form.label") + ": "
	ti.CharLimit = 1024
	ti.Width = 60
	ti.TextStyle = focusedStyle
	ti.Cursor.Style = focusedStyle
	ti.Focus()

	return model{
		form:           form.New(opts.Rand),
		input:          ti,
		keys:           defaultKeyMap(),
		help:           help.New(),
		showPlaybook:   opts.ShowPlaybook,
		version:        opts.Version,
		writeClipboard: clipboard.WriteAll,
	}
}

// Init starts the cursor blinking.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses, window resizes and clipboard results.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("clipboard write failed: %v", msg.err)
			m.status = i18n.T("tui.copy_failed", msg.err)
			m.statusErr = true
		} else {
			m.status = i18n.T("tui.copied")
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			m.status = ""
			// An unmet phrase is not an error for the screen; the form
			// already carries the guidance message.
			if err := m.form.Submit(); err != nil && !errors.Is(err, form.ErrRequirementsUnmet) {
				logging.Errorf("generate suggestion: %v", err)
				m.status = err.Error()
				m.statusErr = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			if m.form.Suggestion == "" {
				m.status = i18n.T("tui.nothing_to_copy")
				m.statusErr = true
				return m, nil
			}
			return m, m.copyCmd(m.form.Suggestion)

		case key.Matches(msg, m.keys.Playbook):
			m.showPlaybook = !m.showPlaybook
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.form.Input(v)
		m.status = ""
	}
	return m, cmd
}

func (m model) copyCmd(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

// View renders the phrase screen.
func (m model) View() string {
	header := mainTitleStyle.Render("🔐 " + i18n.T("app.title"))

	var left []string
	left = append(left, helpStyle.Render(i18n.T("app.intro")), "")
	left = append(left, m.input.View(), "")
	left = append(left, m.checklistView(), "")

	if m.form.Message != "" {
		if m.form.Result.AllMet() {
			left = append(left, successStyle.Render(m.form.Message))
		} else {
			left = append(left, errorStyle.Render(m.form.Message))
		}
	}
	suggestion := m.form.Suggestion
	if suggestion == "" {
		suggestion = " "
	}
	left = append(left, titleStyle.Render(i18n.T("form.suggestion"))+" "+suggestionStyle.Render(suggestion))
	if m.status != "" {
		if m.statusErr {
			left = append(left, errorStyle.Render(m.status))
		} else {
			left = append(left, successStyle.Render(m.status))
		}
	}

	body := paneStyle.Width(70).Render(lipgloss.JoinVertical(lipgloss.Left, left...))
	if m.showPlaybook {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.playbookView())
	}

	footer := footerStyle.Render(AlignFooter(m.help.View(m.keys), m.version, m.width-6))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}

func (m model) checklistView() string {
	var rows []string
	for _, item := range m.form.Checklist() {
		if item.Met {
			rows = append(rows, metStyle.Render("✔ "+item.Label))
		} else {
			rows = append(rows, unmetStyle.Render("○ "+item.Label))
		}
	}
	return strings.Join(rows, "\n")
}

func (m model) playbookView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("playbook.title")))
	for i, step := range form.Playbook() {
		fmt.Fprintf(&b, "\n\n%s\n%s", focusedStyle.Render(fmt.Sprintf("%d. %s", i+1, step.Title)), helpStyle.Render(step.Detail))
	}
	return paneStyle.Width(40).MarginLeft(2).Render(b.String())
}

// Run starts the phrase screen and blocks until the user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newModel(opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
