package models

import "time"

// Opportunity represents a volunteer event students can sign up for.
// Opportunities are immutable once created.
type Opportunity struct {
	// ID is the unique numeric identifier for the opportunity.
	ID int

	// Organization is the community partner hosting the event.
	Organization string

	Title       string
	Description string

	// StartsAt is the scheduled date and time of the event.
	StartsAt time.Time

	// Duration is the length of the event in hours (fractions allowed).
	Duration float64

	// TotalSlots is the advertised capacity. It is advisory unless the
	// caller opts into enforcing it.
	TotalSlots int

	// Points is the reward credited to every user signed up.
	Points int

	// Cause is one of AllCauses.
	Cause string

	ImageURL  string
	IsPrivate bool
}

// SignUp records that a user is attending an opportunity.
// A (UserID, OpportunityID) pair appears at most once.
type SignUp struct {
	UserID        int
	OpportunityID int
}
