package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romycode/xx/editor"
)

// app adapts editor.Model to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
