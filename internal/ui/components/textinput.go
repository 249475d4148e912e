package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bookworm/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Bookworm styling.
type TextInput struct {
	Model     textinput.Model
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the submitted state for another try.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}

// HighlightMisspelled renders answer with the given words underlined.
// Matching ignores case; words the checker flags that no longer appear
// in the answer are skipped.
func HighlightMisspelled(answer string, misspelled []string) string {
	if len(misspelled) == 0 {
		return theme.Body.Render(answer)
	}

	flagged := make(map[string]bool, len(misspelled))
	for _, w := range misspelled {
		flagged[strings.ToLower(w)] = true
	}

	words := strings.Fields(answer)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		bare := strings.ToLower(strings.Trim(w, ".,!?;:'\""))
		if flagged[bare] {
			parts = append(parts, theme.Misspelled.Render(w))
		} else {
			parts = append(parts, theme.Body.Render(w))
		}
	}
	return strings.Join(parts, " ")
}
