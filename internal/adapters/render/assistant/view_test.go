package assistant

import (
	"testing"
	"time"

	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContextWithConnectedModules(t *testing.T) {
	aggregate := domain.AggregateContext{
		Health:    domain.Snapshot(`{"score":72,"level":"Good"}`),
		Expense:   domain.Snapshot(`{"total":900}`),
		GreenGrid: domain.Snapshot(`{"current_usage_kwh":310}`),
		Carbon:    domain.Snapshot(`{"kg_co2_per_year":1200,"equivalent":"3 flights","rating":"B"}`),
		Recommendations: domain.Snapshot(`[
			{"title":"Trim SaaS seats","priority":"high"},
			{"title":"Reorder routers","priority":"medium"},
			{"title":"Shift load off-peak"},
			{"title":"Review vendor contracts"}
		]`),
	}

	output, err := RenderContext(aggregate)
	require.NoError(t, err)
	assert.Contains(t, output, "Business Context")
	assert.Contains(t, output, "modules with data: 2/4")
	assert.Contains(t, output, "Expense Sense")
	assert.Contains(t, output, "Fraud Lens")
	assert.Contains(t, output, "connected")
	assert.Contains(t, output, "no data")
	assert.Contains(t, output, "72/100 (Good)")
	assert.Contains(t, output, "1200 kg CO2/year, rating B (3 flights)")
	assert.Contains(t, output, "recommendations: 4")
	assert.Contains(t, output, "- Trim SaaS seats [high]")
	assert.Contains(t, output, "and 1 more")
	assert.NotContains(t, output, "Review vendor contracts")
	assert.NotContains(t, output, "No module data uploaded yet")
}

func TestRenderEmptyContext(t *testing.T) {
	output, err := RenderContext(domain.EmptyContext())
	require.NoError(t, err)
	assert.Contains(t, output, "modules with data: 0/4")
	assert.Contains(t, output, "health score: n/a")
	assert.Contains(t, output, "carbon: n/a")
	assert.Contains(t, output, "recommendations: 0")
	assert.Contains(t, output, "No module data uploaded yet")
}

func TestRenderContextWithUnexpectedShapes(t *testing.T) {
	output, err := RenderContext(domain.AggregateContext{
		Health:          domain.Snapshot(`{"grade":"A"}`),
		Carbon:          domain.Snapshot(`"unknown"`),
		Recommendations: domain.EmptyList(),
	})
	require.NoError(t, err)
	assert.Contains(t, output, "health score: available")
	assert.Contains(t, output, "carbon: available")
}

func TestRenderModules(t *testing.T) {
	output, err := RenderModules([]application.ModuleProbe{
		{Module: domain.ModuleExpense, Status: domain.ModuleStatus{HasData: true}},
		{Module: domain.ModuleFraud},
		{Module: domain.ModuleInventory, Status: domain.ModuleStatus{HasData: true}},
		{Module: domain.ModuleGreenGrid},
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Business Modules")
	assert.Contains(t, output, "modules with data: 2/4")
	assert.Contains(t, output, "Smart Inventory")
	assert.Contains(t, output, "Green Grid")
}

func TestRenderModulesEmpty(t *testing.T) {
	output, err := RenderModules(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No modules probed.")
}

func TestFormatAnswerStripsBoldMarkers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain answer", want: "plain answer"},
		{in: "You spent **$900** on **rent**.", want: "You spent $900 on rent."},
		{in: "dangling **marker", want: "dangling **marker"},
		{in: "**all bold**", want: "all bold"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAnswer(tt.in), tt.in)
	}
}

func TestTurnPrefixesSpeaker(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	assert.Contains(t, Turn(domain.Turn{Role: domain.RoleUser, Content: "Any fraud risks detected?", At: at}), "you › Any fraud risks detected?")
	assert.Contains(t, Turn(domain.Turn{Role: domain.RoleAssistant, Content: "**2** anomalies", At: at}), "assistant › 2 anomalies")
}

func TestOutcomeRendersFailuresAndMetrics(t *testing.T) {
	assert.Equal(t, domain.SessionExpiredMessage, Outcome(domain.DispatchOutcome{Failure: domain.FailureSessionExpired}))
	assert.Equal(t, domain.GenericFailureMessage, Outcome(domain.DispatchOutcome{Failure: domain.FailureGeneric}))

	rendered := Outcome(domain.DispatchOutcome{Answer: domain.Answer{Text: "Score is **72**.", MetricsUsed: []string{"health", "expense"}}})
	assert.Contains(t, rendered, "Score is 72.")
	assert.Contains(t, rendered, "based on: health, expense")
}

func TestSuggestionListIncludesStarterQuestions(t *testing.T) {
	list := SuggestionList()
	for _, suggestion := range Suggestions {
		assert.Contains(t, list, suggestion)
	}
}
