package assistant

import (
	"strings"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Suggestions are the starter questions offered when a chat opens.
var Suggestions = []string{
	"What are my current expenses?",
	"Any fraud risks detected?",
	"Which items are low in stock?",
	"What is my business health score?",
	"How is my energy usage?",
}

// Turn renders one conversation turn with its speaker prefix.
func Turn(turn domain.Turn) string {
	s := newStyles()

	prefix := s.user.Render("you ›")
	body := turn.Content
	if turn.Role == domain.RoleAssistant {
		prefix = s.assistant.Render("assistant ›")
		body = FormatAnswer(turn.Content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, " ", body)
}

// Outcome renders the assistant reply for a dispatch, flagging failures.
func Outcome(outcome domain.DispatchOutcome) string {
	s := newStyles()
	if outcome.Failed() {
		return s.warning.Render(outcome.Message())
	}

	text := FormatAnswer(outcome.Message())
	if len(outcome.Answer.MetricsUsed) > 0 {
		text += "\n" + s.header.Render("based on: "+strings.Join(outcome.Answer.MetricsUsed, ", "))
	}
	return text
}

// SuggestionList renders the starter questions as a bullet list.
func SuggestionList() string {
	s := newStyles()
	lines := []string{s.header.Render("Try asking:")}
	for _, suggestion := range Suggestions {
		lines = append(lines, s.suggestion.Render("  • "+suggestion))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// FormatAnswer renders **double-asterisk** spans in bold. An unmatched
// marker is kept as literal text.
func FormatAnswer(text string) string {
	s := newStyles()

	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			break
		}

		b.WriteString(rest[:start])
		b.WriteString(s.strong.Render(rest[start+2 : start+2+end]))
		rest = rest[start+2+end+2:]
	}
	b.WriteString(rest)

	return b.String()
}
