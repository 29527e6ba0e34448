package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRunNonInteractive(t *testing.T) {
	view := &FileView{W: new(strings.Builder)}

	err := Run(view, NewConfirm().WithTitle("Proceed?"))
	assert.ErrorIs(t, err, ErrPrompt)
}

func TestInteractive(t *testing.T) {
	assert.False(t, Interactive(&FileView{W: new(strings.Builder)}))
	assert.True(t, Interactive(&TerminalView{
		R: strings.NewReader(""),
		W: new(strings.Builder),
	}))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		give tea.KeyMsg
		init bool
		want bool
	}{
		{name: "Yes", give: keyMsg("y"), want: true},
		{name: "No", give: keyMsg("n"), init: true, want: false},
		{name: "AcceptDefault", give: tea.KeyMsg{Type: tea.KeyEnter}, init: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := tt.init
			field := NewConfirm().WithTitle("Proceed?").WithValue(&value)

			cmd := field.Update(tt.give)
			require.NotNil(t, cmd, "key must accept the field")
			assert.Equal(t, acceptFieldMsg{}, cmd())
			assert.Equal(t, tt.want, value)
		})
	}

	t.Run("Render", func(t *testing.T) {
		value := true
		field := NewConfirm().WithValue(&value)

		var s strings.Builder
		field.Render(&s)
		assert.Contains(t, s.String(), "Y/n")
	})
}

func TestInputSecret(t *testing.T) {
	var value string
	field := NewInput().WithTitle("Secret").WithSecret().WithValue(&value)
	_ = field.Init()

	for _, r := range "hunter2" {
		_ = field.Update(keyMsg(string(r)))
	}
	assert.Equal(t, "hunter2", value)

	var s strings.Builder
	field.Render(&s)
	assert.NotContains(t, s.String(), "hunter2",
		"secret must not be echoed in plain text")
	assert.Contains(t, s.String(), "***")
}

func TestInputValidate(t *testing.T) {
	var value string
	field := NewInput().
		WithValue(&value).
		WithValidate(func(s string) error {
			if strings.Contains(s, ",") {
				return assert.AnError
			}
			return nil
		})
	_ = field.Init()

	_ = field.Update(keyMsg(","))
	require.Error(t, field.Err())

	// Accept must be refused while invalid.
	cmd := field.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		assert.NotEqual(t, acceptFieldMsg{}, cmd())
	}
}

func TestFormErr(t *testing.T) {
	var value string
	input := NewInput().
		WithValue(&value).
		WithValidate(func(string) error { return assert.AnError })
	_ = input.Init()
	_ = input.Update(keyMsg("x"))

	form := NewForm(input)
	assert.ErrorIs(t, form.Err(), assert.AnError)
}

func TestFormCancel(t *testing.T) {
	form := NewForm(NewConfirm().WithTitle("Proceed?"))
	_ = form.Init()

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.ErrorContains(t, form.Err(), "user cancelled")
}
