package users

// User is one applicant as first seen by the bot. The record is immutable
// after registration: later sightings never overwrite it, even when the
// profile has changed since.
type User struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	LanguageCode string `json:"language_code"`
}

// Registry stores one record per distinct user. RegisterIfNew is idempotent
// and never returns an error; registration failures must not interrupt the
// conversation.
type Registry interface {
	RegisterIfNew(u User)
	LoadAll() ([]User, error)
}
