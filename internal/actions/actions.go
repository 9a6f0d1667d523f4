package actions

import "time"

// ActionType identifies one step of the applicant funnel. The set is closed:
// reporting tooling groups and counts events by these values, so new kinds
// must be added here, not invented at call sites.
type ActionType string

const (
	Start                       ActionType = "start"
	GotVideo                    ActionType = "got_video"
	AskedAboutWatchedVideo      ActionType = "asked_about_watched_video"
	AnsweredAboutWatchedVideo   ActionType = "answered_about_watched_video"
	AskedToShootVideo           ActionType = "asked_to_shoot_video"
	AnsweredToShootVideo        ActionType = "answered_to_shoot_video"
	GotInstructions             ActionType = "got_instructions"
	SentVideo                   ActionType = "sent_video"
	AskedToConfirmSending       ActionType = "asked_to_confirm_sending"
	AnsweredConfirmSending      ActionType = "answered_confirm_sending"
	AskedToConfirmPrivacy       ActionType = "asked_to_confirm_privacy"
	AnsweredConfirmPrivacy      ActionType = "answered_confirm_privacy"
	AskedWhyHesitantOrReject    ActionType = "asked_why_hesitant_or_reject"
	AnsweredWhyHesitantOrReject ActionType = "answered_why_hesitant_or_reject"
	StartTriggeredAgain         ActionType = "start_triggered_again"
)

// Event is a single immutable record of a user action. Events are appended in
// chronological order and never rewritten. The optional fields carry
// per-action payload (the user's answer, the declared reason, or the metadata
// of a submitted video) and are omitted when empty.
type Event struct {
	ActionType ActionType `json:"action_type"`
	UserID     int64      `json:"user_id"`
	Timestamp  time.Time  `json:"timestamp"`
	Answer     string     `json:"answer,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Kind       string     `json:"kind,omitempty"`
	Duration   int        `json:"duration,omitempty"`
	FileSize   int64      `json:"file_size,omitempty"`
}

// Summary aggregates the journal for one user. A user with no recorded
// events yields a zero summary, never an error.
type Summary struct {
	UserID       int64              `json:"user_id"`
	TotalActions int                `json:"total_actions"`
	FirstAction  string             `json:"first_action,omitempty"`
	LastAction   string             `json:"last_action,omitempty"`
	ActionCounts map[ActionType]int `json:"action_counts,omitempty"`
}

// Journal abstracts persistence of action events. Record never returns an
// error: a persistence glitch must not interrupt a conversation turn.
// Implementations must be safe for concurrent use.
type Journal interface {
	Record(ev Event)
	All() []Event
	ActionsFor(userID int64) []Event
	SummaryFor(userID int64) Summary
}
