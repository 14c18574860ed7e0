package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	mu          sync.Mutex
	withData    map[domain.ModuleID]bool
	askStatus   int
	delay       time.Duration
	askBodies   []string
	bearers     []string
	summaryHits atomic.Int32
}

func newFakePlatform(t *testing.T, withData ...domain.ModuleID) (*fakePlatform, *httptest.Server) {
	t.Helper()

	fake := &fakePlatform{withData: map[domain.ModuleID]bool{}, askStatus: http.StatusOK}
	for _, id := range withData {
		fake.withData[id] = true
	}

	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)
	t.Setenv("BA_API_BASE_URL", server.URL)

	return fake, server
}

func (f *fakePlatform) serve(w http.ResponseWriter, r *http.Request) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.bearers = append(f.bearers, r.Header.Get("Authorization"))
	f.mu.Unlock()

	for _, id := range domain.Modules {
		switch r.URL.Path {
		case id.StatusPath():
			_, _ = fmt.Fprintf(w, `{"has_data":%t}`, f.withData[id])
			return
		case id.SummaryPath():
			f.summaryHits.Add(1)
			_, _ = fmt.Fprintf(w, `{"module":%q}`, id)
			return
		}
	}

	switch r.URL.Path {
	case "/health/score":
		_, _ = fmt.Fprint(w, `{"score":72,"level":"Good"}`)
	case "/carbon/estimate":
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"detail":"carbon model offline"}`)
	case "/recommendations":
		_, _ = fmt.Fprint(w, `[{"title":"Trim SaaS seats","priority":"high"}]`)
	case "/ai/ask":
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.askBodies = append(f.askBodies, string(body))
		status := f.askStatus
		f.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = fmt.Fprint(w, `{"detail":"Could not validate credentials"}`)
			return
		}
		var req struct {
			Question string `json:"question"`
		}
		_ = json.Unmarshal(body, &req)
		_, _ = fmt.Fprintf(w, `{"answer":"You asked **%s**.","metrics_used":["health"]}`, req.Question)
	case "/auth/login":
		_, _ = fmt.Fprint(w, `{"access_token":"tok-login","token_type":"bearer","user":{"email":"owner@shop.test","full_name":"Ada Owner"}}`)
	case "/auth/register":
		_, _ = fmt.Fprint(w, `{"access_token":"tok-register","token_type":"bearer","user":{"email":"new@shop.test","full_name":"New Owner"}}`)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakePlatform) asks() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.askBodies...)
}

func (f *fakePlatform) sawBearer(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, bearer := range f.bearers {
		if bearer == "Bearer "+token {
			return true
		}
	}
	return false
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestModulesJSONReportsProbeResults(t *testing.T) {
	fake, _ := newFakePlatform(t, domain.ModuleFraud)

	stdout, _, err := executeCLI(t, t.TempDir(), "modules", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"module":"expense","label":"Expense Sense","has_data":false},
		{"module":"fraud","label":"Fraud Lens","has_data":true},
		{"module":"inventory","label":"Smart Inventory","has_data":false},
		{"module":"green-grid","label":"Green Grid","has_data":false}
	]`, stdout)
	assert.Zero(t, fake.summaryHits.Load())
}

func TestContextJSONFetchesOnlyModulesWithData(t *testing.T) {
	fake, _ := newFakePlatform(t, domain.ModuleExpense, domain.ModuleGreenGrid)

	stdout, _, err := executeCLI(t, t.TempDir(), "context", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"health": {"score":72,"level":"Good"},
		"expense": {"module":"expense"},
		"fraud": null,
		"inventory": null,
		"green_grid": {"module":"green-grid"},
		"carbon": null,
		"recommendations": [{"title":"Trim SaaS seats","priority":"high"}]
	}`, stdout)
	assert.Equal(t, int32(2), fake.summaryHits.Load())
}

func TestContextShowsCollectingSpinnerMessage(t *testing.T) {
	fake, _ := newFakePlatform(t, domain.ModuleExpense)
	fake.delay = 200 * time.Millisecond

	_, stderr, err := executeCLI(t, t.TempDir(), "context", "--json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Collecting module data")
}

func TestContextRendersSummary(t *testing.T) {
	newFakePlatform(t, domain.ModuleInventory)

	stdout, _, err := executeCLI(t, t.TempDir(), "context")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Business Context")
	assert.Contains(t, stdout, "modules with data: 1/4")
	assert.Contains(t, stdout, "72/100 (Good)")
	assert.Contains(t, stdout, "carbon: n/a")
}

func TestAskSendsContextAndPrintsAnswer(t *testing.T) {
	fake, _ := newFakePlatform(t, domain.ModuleExpense)

	stdout, _, err := executeCLI(t, t.TempDir(), "ask", "What", "are", "my", "current", "expenses?")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You asked What are my current expenses?.")
	assert.Contains(t, stdout, "based on: health")

	asks := fake.asks()
	require.Len(t, asks, 1)
	assert.Contains(t, asks[0], `"question":"What are my current expenses?"`)
	assert.Contains(t, asks[0], `"expense":{"module":"expense"}`)
	assert.Contains(t, asks[0], `"green_grid":null`)
}

func TestAskRequiresQuestion(t *testing.T) {
	newFakePlatform(t)

	_, _, err := executeCLI(t, t.TempDir(), "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")

	_, _, err = executeCLI(t, t.TempDir(), "ask", "   ")
	require.ErrorContains(t, err, "question is empty")
}

func TestAskWithRejectedSessionSignsOut(t *testing.T) {
	fake, _ := newFakePlatform(t)
	fake.askStatus = http.StatusUnauthorized
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "auth", "login", "--email", "owner@shop.test", "--password", "hunter22")
	require.NoError(t, err)
	tokenPath := filepath.Join(home, ".config", "bizassist", "credentials", "access_token")
	require.FileExists(t, tokenPath)

	stdout, _, err := executeCLI(t, home, "ask", "Any fraud risks detected?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_expired")
	assert.Contains(t, stdout, domain.SessionExpiredMessage)
	assert.NotContains(t, stdout, "Could not validate credentials")
	assert.True(t, fake.sawBearer("tok-login"))
	assert.NoFileExists(t, tokenPath)

	whoami, _, err := executeCLI(t, home, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, whoami, "Not signed in")
}

func TestAskWithServerErrorShowsGenericMessage(t *testing.T) {
	fake, _ := newFakePlatform(t)
	fake.askStatus = http.StatusInternalServerError

	stdout, _, err := executeCLI(t, t.TempDir(), "ask", "How is my energy usage?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generic")
	assert.Contains(t, stdout, domain.GenericFailureMessage)
}

func TestAuthLoginWhoamiLogout(t *testing.T) {
	fake, _ := newFakePlatform(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "auth", "login", "--email", "owner@shop.test", "--password", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Ada Owner.")

	stdout, _, err = executeCLI(t, home, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ada Owner <owner@shop.test>")

	_, _, err = executeCLI(t, home, "modules")
	require.NoError(t, err)
	assert.True(t, fake.sawBearer("tok-login"))

	stdout, _, err = executeCLI(t, home, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out.")

	stdout, _, err = executeCLI(t, home, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in")
}

func TestAuthRegisterUsesPasswordFromEnv(t *testing.T) {
	newFakePlatform(t)
	home := t.TempDir()
	t.Setenv("BA_PASSWORD", "hunter22")

	stdout, _, err := executeCLI(t, home, "auth", "register", "--name", "New Owner", "--email", "new@shop.test")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as New Owner.")

	data, err := os.ReadFile(filepath.Join(home, ".config", "bizassist", "profile.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "new@shop.test")
}

func TestAuthLoginRequiresEmail(t *testing.T) {
	newFakePlatform(t)

	_, _, err := executeCLI(t, t.TempDir(), "auth", "login", "--password", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"email\" not set")
}

func TestChatAnswersQuestionsUntilQuit(t *testing.T) {
	fake, _ := newFakePlatform(t, domain.ModuleFraud)

	input := strings.Join([]string{
		"Any fraud risks detected?",
		"",
		"/refresh",
		"/history",
		"Which items are low in stock?",
		"/quit",
		"never sent",
	}, "\n")

	stdout, _, err := executeCLIWithInput(t, t.TempDir(), input, "chat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Using data from: Fraud Lens")
	assert.Contains(t, stdout, "Try asking:")
	assert.Contains(t, stdout, "You asked Any fraud risks detected?.")
	assert.Contains(t, stdout, "Module data refreshed.")
	assert.Contains(t, stdout, "you › Any fraud risks detected?")
	assert.Contains(t, stdout, "You asked Which items are low in stock?.")

	asks := fake.asks()
	require.Len(t, asks, 2)
	assert.Equal(t, int32(2), fake.summaryHits.Load())
}

func TestChatWithoutModuleDataStillAnswers(t *testing.T) {
	newFakePlatform(t)

	stdout, _, err := executeCLIWithInput(t, t.TempDir(), "What is my business health score?\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No module data uploaded yet.")
	assert.Contains(t, stdout, "You asked What is my business health score?.")
}

func TestUnknownCommandIsRejected(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "usage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"usage\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("BA_CREDENTIALS_BACKEND", "file")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
