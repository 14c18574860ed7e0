package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxListedRecommendations = 3

type healthView struct {
	Score *float64 `json:"score"`
	Level string   `json:"level"`
}

type carbonView struct {
	KgCO2PerYear *float64 `json:"kg_co2_per_year"`
	Equivalent   string   `json:"equivalent"`
	Rating       string   `json:"rating"`
}

type recommendationView struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// RenderContext renders an aggregate context as a terminal summary.
func RenderContext(aggregate domain.AggregateContext) (string, error) {
	return run(func(s styles) string {
		return contextView(aggregate, s)
	})
}

// RenderModules renders the result of one probe pass.
func RenderModules(probes []application.ModuleProbe) (string, error) {
	return run(func(s styles) string {
		return modulesView(probes, s)
	})
}

func contextView(aggregate domain.AggregateContext, s styles) string {
	connected := aggregate.Connected()
	lines := []string{
		s.title.Render("Business Context"),
		s.header.Render(fmt.Sprintf("modules with data: %d/%d", len(connected), len(domain.Modules))),
	}

	moduleLines := make([]string, 0, len(domain.Modules))
	for _, id := range domain.Modules {
		moduleLines = append(moduleLines, moduleLine(id, !domain.IsNull(aggregate.Module(id)), s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, moduleLines...)))

	lines = append(lines,
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			healthLine(aggregate.Health, s),
			carbonLine(aggregate.Carbon, s),
		)),
		s.section.Render(recommendationsBlock(aggregate.Recommendations, s)),
	)

	if len(connected) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No module data uploaded yet. Answers will be general.")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func modulesView(probes []application.ModuleProbe, s styles) string {
	withData := 0
	for _, probe := range probes {
		if probe.Status.HasData {
			withData++
		}
	}

	lines := []string{
		s.title.Render("Business Modules"),
		s.header.Render(fmt.Sprintf("modules with data: %d/%d", withData, len(probes))),
	}
	if len(probes) == 0 {
		lines = append(lines, s.empty.Render("No modules probed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, probe := range probes {
		lines = append(lines, moduleLine(probe.Module, probe.Status.HasData, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func moduleLine(id domain.ModuleID, hasData bool, s styles) string {
	state := s.missing.Render("no data")
	if hasData {
		state = s.connected.Render("connected")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.module.Render(fmt.Sprintf("%-16s", id.Label())),
		" ",
		state,
	)
}

func healthLine(snapshot domain.Snapshot, s styles) string {
	label := s.module.Render("health score:")
	if domain.IsNull(snapshot) {
		return label + " " + s.missing.Render("n/a")
	}

	var health healthView
	if err := json.Unmarshal(snapshot, &health); err != nil || health.Score == nil {
		return label + " " + s.detail.Render("available")
	}

	parts := []string{label, renderProgressBar(*health.Score, 20, s), s.detail.Render(fmt.Sprintf("%.0f/100", *health.Score))}
	if health.Level != "" {
		parts = append(parts, s.detail.Render("("+health.Level+")"))
	}
	return strings.Join(parts, " ")
}

func carbonLine(snapshot domain.Snapshot, s styles) string {
	label := s.module.Render("carbon:")
	if domain.IsNull(snapshot) {
		return label + " " + s.missing.Render("n/a")
	}

	var carbon carbonView
	if err := json.Unmarshal(snapshot, &carbon); err != nil || carbon.KgCO2PerYear == nil {
		return label + " " + s.detail.Render("available")
	}

	text := fmt.Sprintf("%.0f kg CO2/year", *carbon.KgCO2PerYear)
	if carbon.Rating != "" {
		text += fmt.Sprintf(", rating %s", carbon.Rating)
	}
	if carbon.Equivalent != "" {
		text += fmt.Sprintf(" (%s)", carbon.Equivalent)
	}
	return label + " " + s.detail.Render(text)
}

func recommendationsBlock(snapshot domain.Snapshot, s styles) string {
	var items []recommendationView
	if err := json.Unmarshal(snapshot, &items); err != nil {
		items = nil
	}

	lines := []string{s.module.Render(fmt.Sprintf("recommendations: %d", len(items)))}
	for i, item := range items {
		if i == maxListedRecommendations {
			lines = append(lines, s.empty.Render(fmt.Sprintf("  … and %d more", len(items)-maxListedRecommendations)))
			break
		}
		line := "  - " + strings.TrimSpace(item.Title)
		if item.Priority != "" {
			line += " [" + item.Priority + "]"
		}
		lines = append(lines, s.detail.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(score) / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
