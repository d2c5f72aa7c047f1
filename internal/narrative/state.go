package narrative

import "time"

// Status is the narration lifecycle: idle -> pending -> succeeded | failed.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// FailureMessage is the only failure text shown to users.
const FailureMessage = "Failed to generate AI analysis. Please try again."

// State is a snapshot of the narration. Text and HTML are set only when
// Status is StatusSucceeded; Reason only when StatusFailed.
type State struct {
	Status      Status    `json:"status"`
	RequestID   string    `json:"request_id,omitempty"`
	Text        string    `json:"text,omitempty"`
	HTML        string    `json:"html,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	StartedAt   time.Time `json:"started_at,omitzero"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}

func idle() State { return State{Status: StatusIdle} }

func pending(id string, at time.Time) State {
	return State{Status: StatusPending, RequestID: id, StartedAt: at}
}

func succeeded(prev State, text, html string, at time.Time) State {
	return State{
		Status:      StatusSucceeded,
		RequestID:   prev.RequestID,
		Text:        text,
		HTML:        html,
		StartedAt:   prev.StartedAt,
		CompletedAt: at,
	}
}

func failed(prev State, at time.Time) State {
	return State{
		Status:      StatusFailed,
		RequestID:   prev.RequestID,
		Reason:      FailureMessage,
		StartedAt:   prev.StartedAt,
		CompletedAt: at,
	}
}

// IsPending reports whether a request is in flight.
func (s State) IsPending() bool { return s.Status == StatusPending }
