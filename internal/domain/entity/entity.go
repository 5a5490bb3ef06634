package entity

import "time"

// Form is the managed submission form and its current window state.
type Form struct {
	ID          int64
	Slug        string
	Title       string
	PublicURL   string
	IsAccepting bool
	OpenedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Submission is a single recorded form response.
type Submission struct {
	ID          int64
	FormID      int64
	Respondent  string
	Payload     string
	SubmittedAt time.Time
}

// TriggerKind distinguishes time-based from event-based triggers.
type TriggerKind string

const (
	TriggerOneShot TriggerKind = "one_shot"
	TriggerOnEvent TriggerKind = "event"
)

// Valid reports whether the kind is one of the known values.
func (k TriggerKind) Valid() bool {
	return k == TriggerOneShot || k == TriggerOnEvent
}

// Trigger is a registered callback: a one-shot firing at FireAt, or an event
// subscription firing on every dispatch of Event. Armed triggers carry only
// the action name; the host resolves it to a call at fire time.
type Trigger struct {
	ID        string
	Action    string
	Kind      TriggerKind
	FireAt    time.Time
	Event     string
	CreatedAt time.Time
}

// WindowStatus is a point-in-time view of the window for the status surface.
// NextOpen and NextClose are zero when the matching rule is not configured.
type WindowStatus struct {
	Accepting     bool
	ResponseCount int
	ResponseLimit *int
	NextOpen      time.Time
	NextClose     time.Time
}
