package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var sessionNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func staticCollector(aggregate domain.AggregateContext) CollectorFunc {
	return func(context.Context) domain.AggregateContext {
		return aggregate
	}
}

func TestChatSessionSubmitRecordsQuestionAndAnswer(t *testing.T) {
	t.Parallel()

	aggregate := domain.EmptyContext()
	aggregate.Expense = expensePayload

	assistant := mocks.NewMockAssistant(t)
	assistant.EXPECT().
		Ask(mockAnyContext(), "What are my current expenses?", aggregate).
		Return(domain.Answer{Text: "You spent **900** on rent.", MetricsUsed: []string{"expense"}}, nil).
		Once()

	session := NewChatSession(staticCollector(aggregate), assistant, fixedClock{now: sessionNow}, nil)
	session.Refresh(context.Background())

	outcome, err := session.Submit(context.Background(), "  What are my current expenses?\n")
	require.NoError(t, err)
	assert.False(t, outcome.Failed())
	assert.Equal(t, []string{"expense"}, outcome.Answer.MetricsUsed)

	assert.Equal(t, []domain.Turn{
		{Role: domain.RoleUser, Content: "What are my current expenses?", At: sessionNow},
		{Role: domain.RoleAssistant, Content: "You spent **900** on rent.", At: sessionNow},
	}, session.Turns())
	assert.Equal(t, StateIdle, session.State())
}

func TestChatSessionClassifiesFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		reason  domain.FailureReason
		message string
	}{
		{
			name:    "expired session",
			err:     fmt.Errorf("ask assistant: %w", domain.ErrSessionExpired),
			reason:  domain.FailureSessionExpired,
			message: domain.SessionExpiredMessage,
		},
		{
			name:    "server error",
			err:     errors.New("ask assistant: status 500: model overloaded"),
			reason:  domain.FailureGeneric,
			message: domain.GenericFailureMessage,
		},
		{
			name:    "timeout",
			err:     context.DeadlineExceeded,
			reason:  domain.FailureGeneric,
			message: domain.GenericFailureMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assistant := mocks.NewMockAssistant(t)
			assistant.EXPECT().Ask(mockAnyContext(), "Any fraud risks detected?", mock.Anything).Return(domain.Answer{}, tt.err).Once()

			session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)
			outcome, err := session.Submit(context.Background(), "Any fraud risks detected?")

			require.NoError(t, err)
			assert.Equal(t, tt.reason, outcome.Failure)

			turns := session.Turns()
			require.Len(t, turns, 2)
			assert.Equal(t, domain.RoleAssistant, turns[1].Role)
			assert.Equal(t, tt.message, turns[1].Content)
			assert.NotContains(t, turns[1].Content, "overloaded")
		})
	}
}

func TestChatSessionRejectsBlankQuestions(t *testing.T) {
	t.Parallel()

	assistant := mocks.NewMockAssistant(t)
	session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := session.Submit(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	}

	assert.Empty(t, session.Turns())
	assistant.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatSessionAllowsOneDispatchAtATime(t *testing.T) {
	defer goleak.VerifyNone(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	assistant := mocks.NewMockAssistant(t)
	assistant.EXPECT().Ask(mockAnyContext(), "Which items are low in stock?", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.AggregateContext) (domain.Answer, error) {
			calls.Add(1)
			close(entered)
			<-release
			return domain.Answer{Text: "Routers are low."}, nil
		}).Once()

	session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := session.Submit(context.Background(), "Which items are low in stock?")
		assert.NoError(t, err)
	}()

	<-entered
	assert.Equal(t, StateDispatching, session.State())

	_, err := session.Submit(context.Background(), "What is my business health score?")
	assert.ErrorIs(t, err, ErrDispatchInFlight)

	turns := session.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "Which items are low in stock?", turns[0].Content)

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateIdle, session.State())
	require.Len(t, session.Turns(), 2)
}

func TestChatSessionTurnsAlternateAcrossSubmissions(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	assistant := mocks.NewMockAssistant(t)
	assistant.EXPECT().Ask(mockAnyContext(), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, question string, _ domain.AggregateContext) (domain.Answer, error) {
			switch n.Add(1) % 3 {
			case 0:
				return domain.Answer{}, domain.ErrSessionExpired
			case 1:
				return domain.Answer{Text: "answer to " + question}, nil
			default:
				return domain.Answer{}, errors.New("bad gateway")
			}
		}).Times(6)

	session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)
	for i := 0; i < 6; i++ {
		_, err := session.Submit(context.Background(), fmt.Sprintf("question %d", i))
		require.NoError(t, err)
	}

	turns := session.Turns()
	require.Len(t, turns, 12)
	for i, turn := range turns {
		if i%2 == 0 {
			assert.Equal(t, domain.RoleUser, turn.Role)
			assert.Equal(t, fmt.Sprintf("question %d", i/2), turn.Content)
			continue
		}
		assert.Equal(t, domain.RoleAssistant, turn.Role)
	}
	assert.Equal(t, "answer to question 0", turns[1].Content)
	assert.Equal(t, domain.GenericFailureMessage, turns[3].Content)
	assert.Equal(t, domain.SessionExpiredMessage, turns[5].Content)
}

func TestChatSessionUsesEmptyContextBeforeFirstRefresh(t *testing.T) {
	t.Parallel()

	assistant := mocks.NewMockAssistant(t)
	assistant.EXPECT().Ask(mockAnyContext(), "How is my energy usage?", domain.EmptyContext()).
		Return(domain.Answer{Text: "No energy data yet."}, nil).Once()

	session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)

	_, ready := session.ModuleData()
	assert.False(t, ready)

	outcome, err := session.Submit(context.Background(), "How is my energy usage?")
	require.NoError(t, err)
	assert.Equal(t, "No energy data yet.", outcome.Message())
}

func TestChatSessionRefreshLastWriteWins(t *testing.T) {
	t.Parallel()

	first := domain.EmptyContext()
	first.Fraud = fraudPayload
	second := domain.EmptyContext()
	second.Inventory = inventoryPayload

	var cycle atomic.Int32
	collector := CollectorFunc(func(context.Context) domain.AggregateContext {
		if cycle.Add(1) == 1 {
			return first
		}
		return second
	})

	session := NewChatSession(collector, mocks.NewMockAssistant(t), fixedClock{now: sessionNow}, nil)
	assert.Equal(t, first, session.Refresh(context.Background()))
	assert.Equal(t, second, session.Refresh(context.Background()))

	stored, ready := session.ModuleData()
	assert.True(t, ready)
	assert.Equal(t, second, stored)
}

func TestChatSessionCloseDiscardsConversation(t *testing.T) {
	t.Parallel()

	assistant := mocks.NewMockAssistant(t)
	assistant.EXPECT().Ask(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.Answer{Text: "ok"}, nil).Once()

	session := NewChatSession(staticCollector(domain.EmptyContext()), assistant, fixedClock{now: sessionNow}, nil)
	_, err := session.Submit(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, session.Turns(), 2)

	session.Close()
	assert.Empty(t, session.Turns())
	assert.NotEmpty(t, session.ID())
}
