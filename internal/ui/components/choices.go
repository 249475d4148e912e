package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bookworm/internal/ui/theme"
)

// ChoiceList is a selector for choice questions. Answers are checked by
// the server, so the component never knows which option is correct; it
// only colors the chosen option once a verdict arrives.
type ChoiceList struct {
	Options  []string
	Selected int
	Locked   bool
	Verdict  Verdict
}

// Verdict is the server's judgment of the chosen option.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// NewChoiceList creates a choice selector.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. A locked list ignores input.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Value returns the currently selected option text.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// Freeze pins the selection while the verdict is pending.
func (c *ChoiceList) Freeze() {
	c.Locked = true
}

// Unfreeze re-enables selection for another try.
func (c *ChoiceList) Unfreeze() {
	c.Locked = false
	c.Verdict = VerdictNone
}

// View renders the options.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Verdict == VerdictCorrect && i == c.Selected:
			s += theme.Correct.Render(line) + "\n"
		case c.Verdict == VerdictIncorrect && i == c.Selected:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
