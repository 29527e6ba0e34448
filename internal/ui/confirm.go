package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/keyhold/internal/must"
)

// ConfirmKeyMap defines the key bindings for [Confirm].
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
}

// DefaultConfirmKeyMap is the default key map for a [Confirm] field.
var DefaultConfirmKeyMap = ConfirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("enter/tab", "accept"),
	),
}

// ConfirmStyle configures the appearance of a [Confirm] field.
type ConfirmStyle struct {
	Key lipgloss.Style // how to highlight keys
}

// DefaultConfirmStyle is the default style for a [Confirm] field.
var DefaultConfirmStyle = ConfirmStyle{
	Key: NewStyle().Foreground(Magenta),
}

// Confirm is a boolean confirmation field that takes a yes or no answer.
type Confirm struct {
	KeyMap ConfirmKeyMap
	Style  ConfirmStyle

	title string
	desc  string
	value *bool
}

var _ Field = (*Confirm)(nil)

// NewConfirm builds a new confirm field that prompts the user
// with a yes or no question.
func NewConfirm() *Confirm {
	return &Confirm{
		KeyMap: DefaultConfirmKeyMap,
		Style:  DefaultConfirmStyle,
		value:  new(bool),
	}
}

// Err reports any errors in the confirm field.
func (c *Confirm) Err() error {
	return nil
}

// WithValue sets the destination for the confirm field.
// The pointer's current value is used as the default answer.
func (c *Confirm) WithValue(value *bool) *Confirm {
	must.NotBeNilf(value, "value must not be nil")
	c.value = value
	return c
}

// WithTitle sets the title for the confirm field.
func (c *Confirm) WithTitle(title string) *Confirm {
	c.title = title
	return c
}

// Title returns the title for the confirm field.
func (c *Confirm) Title() string {
	return c.title
}

// WithDescription sets the description for the confirm field.
func (c *Confirm) WithDescription(desc string) *Confirm {
	c.desc = desc
	return c
}

// Description returns the description for the confirm field.
func (c *Confirm) Description() string {
	return c.desc
}

// Init initializes the field.
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update handles a bubbletea event.
func (c *Confirm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, c.KeyMap.Yes):
			*c.value = true
			return AcceptField

		case key.Matches(msg, c.KeyMap.No):
			*c.value = false
			return AcceptField

		case key.Matches(msg, c.KeyMap.Accept):
			return AcceptField
		}
	}

	return nil
}

// Render renders the confirm field to the given writer.
func (c *Confirm) Render(w Writer) {
	_, _ = w.WriteString("[")
	if *c.value {
		_, _ = w.WriteString(c.Style.Key.Render("Y"))
		_, _ = w.WriteString("/")
		_, _ = w.WriteString(c.Style.Key.Render("n"))
	} else {
		_, _ = w.WriteString(c.Style.Key.Render("y"))
		_, _ = w.WriteString("/")
		_, _ = w.WriteString(c.Style.Key.Render("N"))
	}
	_, _ = w.WriteString("]")
}
