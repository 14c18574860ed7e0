package domain

type FailureReason string

const (
	FailureNone           FailureReason = ""
	FailureSessionExpired FailureReason = "SESSION_EXPIRED"
	FailureGeneric        FailureReason = "GENERIC"
)

const (
	SessionExpiredMessage = "Session expired. Please log in again."
	GenericFailureMessage = "Something went wrong. Please try again."
)

// Answer is the assistant backend's reply to one question.
type Answer struct {
	Text        string   `json:"answer"`
	MetricsUsed []string `json:"metrics_used,omitempty"`
}

// DispatchOutcome is the resolved result of one dispatch: an answer, or a
// classified failure.
type DispatchOutcome struct {
	Answer  Answer
	Failure FailureReason
}

func (o DispatchOutcome) Failed() bool {
	return o.Failure != FailureNone
}

// Message is the text shown to the user for this outcome. Failures never
// expose backend error text.
func (o DispatchOutcome) Message() string {
	switch o.Failure {
	case FailureSessionExpired:
		return SessionExpiredMessage
	case FailureGeneric:
		return GenericFailureMessage
	default:
		return o.Answer.Text
	}
}
