package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user quits a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Simple confirmation model
type confirmModel struct {
	question  string
	selected  int
	done      bool
	cancelled bool
	result    bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "left", "h":
			m.selected = 0
		case "right", "l":
			m.selected = 1
		case "y":
			m.selected = 0
		case "n":
			m.selected = 1
		case "enter":
			m.result = m.selected == 0
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	s := fmt.Sprintf("%s\n\n", m.question)

	if m.selected == 0 {
		s += "[Yes] No"
	} else {
		s += "Yes [No]"
	}

	s += "\n\n← → to choose, Enter to confirm, q to quit"
	return s
}

// Simple input model using textinput
type inputModel struct {
	textInput textinput.Model
	question  string
	done      bool
	cancelled bool
	validator func(string) error
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.validator != nil {
				if err := m.validator(m.value()); err != nil {
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// value is the typed text, or the placeholder when nothing was typed.
func (m inputModel) value() string {
	if v := m.textInput.Value(); v != "" {
		return v
	}
	return m.textInput.Placeholder
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	s := fmt.Sprintf("%s\n\n", m.question)
	s += m.textInput.View()

	if m.validator != nil && m.textInput.Value() != "" {
		if err := m.validator(m.textInput.Value()); err != nil {
			s += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Error: "+err.Error())
		}
	}

	s += "\n\nEnter to confirm, Esc to cancel"
	return s
}

// List item for selections
type listItem struct {
	title, desc string
	value       string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.desc }

// Simple list model
type listModel struct {
	list   list.Model
	done   bool
	result *listItem
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if selected := m.list.SelectedItem(); selected != nil {
				item := selected.(listItem)
				m.result = &item
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// Confirm asks a yes/no question. No is preselected.
func Confirm(question string) (bool, error) {
	model := confirmModel{
		question: question,
		selected: 1,
	}

	p := tea.NewProgram(model)
	finalModel, err := p.StartReturningModel()
	if err != nil {
		return false, err
	}

	result := finalModel.(confirmModel)
	if result.cancelled {
		return false, ErrCancelled
	}
	return result.result, nil
}

// Input asks for a line of text. An empty answer takes the placeholder,
// so placeholders double as defaults.
func Input(question, placeholder string, validator func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	model := inputModel{
		textInput: ti,
		question:  question,
		validator: validator,
	}

	p := tea.NewProgram(model)
	finalModel, err := p.StartReturningModel()
	if err != nil {
		return "", err
	}

	result := finalModel.(inputModel)
	if result.cancelled {
		return "", ErrCancelled
	}
	return result.value(), nil
}

type Option struct {
	Label       string
	Value       string
	Description string
}

// Select lets the user pick one option from a list.
func Select(title string, options []Option) (*Option, error) {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = listItem{
			title: opt.Label,
			desc:  opt.Description,
			value: opt.Value,
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 60, 14)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	p := tea.NewProgram(listModel{list: l})
	finalModel, err := p.StartReturningModel()
	if err != nil {
		return nil, err
	}

	result := finalModel.(listModel)
	if result.result == nil {
		return nil, ErrCancelled
	}

	return &Option{
		Label:       result.result.title,
		Value:       result.result.value,
		Description: result.result.desc,
	}, nil
}
