package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
	"github.com/google/uuid"
)

var (
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrDispatchInFlight = errors.New("a question is already being answered")
)

type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateDispatching SessionState = "dispatching"
)

// ChatSession is one open assistant conversation. It owns the turn log and the
// module data used for every question asked in it.
type ChatSession struct {
	id        string
	collector ContextCollector
	assistant ports.Assistant
	clock     ports.Clock
	log       *logger.Logger

	busy         atomic.Bool
	conversation domain.Conversation

	mu         sync.RWMutex
	moduleData domain.AggregateContext
	dataReady  bool
}

func NewChatSession(collector ContextCollector, assistant ports.Assistant, clock ports.Clock, log *logger.Logger) *ChatSession {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	id := uuid.NewString()
	return &ChatSession{
		id:         id,
		collector:  collector,
		assistant:  assistant,
		clock:      clock,
		log:        log.OrNop().With("chat_session", id),
		moduleData: domain.EmptyContext(),
	}
}

func (s *ChatSession) ID() string {
	return s.id
}

// Refresh runs a new collection cycle and stores its result. Overlapping
// refreshes are not coordinated: whichever finishes last wins.
func (s *ChatSession) Refresh(ctx context.Context) domain.AggregateContext {
	aggregate := s.collector.Collect(ctx)

	s.mu.Lock()
	s.moduleData = aggregate
	s.dataReady = true
	s.mu.Unlock()

	return aggregate
}

// ModuleData returns the stored context and whether a refresh has completed.
func (s *ChatSession) ModuleData() (domain.AggregateContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.moduleData, s.dataReady
}

func (s *ChatSession) State() SessionState {
	if s.busy.Load() {
		return StateDispatching
	}
	return StateIdle
}

// Submit asks one question. Blank input returns ErrEmptyQuestion and a call
// made while another question is pending returns ErrDispatchInFlight; neither
// touches the log. Otherwise the user turn is logged before the call and
// exactly one assistant turn after it. Backend failures are folded into the
// returned outcome, never into the error.
func (s *ChatSession) Submit(ctx context.Context, text string) (domain.DispatchOutcome, error) {
	question := strings.TrimSpace(text)
	if question == "" {
		return domain.DispatchOutcome{}, ErrEmptyQuestion
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.log.Debug("dropping question while another is in flight")
		return domain.DispatchOutcome{}, ErrDispatchInFlight
	}
	defer s.busy.Store(false)

	s.conversation.Append(domain.Turn{Role: domain.RoleUser, Content: question, At: s.clock.Now()})

	moduleData, _ := s.ModuleData()
	answer, err := s.assistant.Ask(ctx, question, moduleData)
	outcome := classifyDispatch(answer, err)
	if outcome.Failed() {
		s.log.Warn("assistant request failed", "reason", outcome.Failure, "error", err)
	}

	s.conversation.Append(domain.Turn{Role: domain.RoleAssistant, Content: outcome.Message(), At: s.clock.Now()})

	return outcome, nil
}

func (s *ChatSession) Turns() []domain.Turn {
	return s.conversation.Turns()
}

// Close tears the session down and discards its conversation.
func (s *ChatSession) Close() {
	s.conversation.Discard()
}

func classifyDispatch(answer domain.Answer, err error) domain.DispatchOutcome {
	switch {
	case err == nil:
		return domain.DispatchOutcome{Answer: answer}
	case errors.Is(err, domain.ErrSessionExpired):
		return domain.DispatchOutcome{Failure: domain.FailureSessionExpired}
	default:
		return domain.DispatchOutcome{Failure: domain.FailureGeneric}
	}
}
