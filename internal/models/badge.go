package models

// RuleKind selects which statistic a BadgeRule compares.
type RuleKind string

const (
	// RuleSignUpCount earns when the user's sign-up count >= Threshold.
	RuleSignUpCount RuleKind = "signup_count"
	// RulePoints earns when the user's points > Threshold.
	RulePoints RuleKind = "points"
	// RuleFriendCount earns when the user's friend count >= Threshold.
	RuleFriendCount RuleKind = "friend_count"
	// RuleCauseCount earns when sign-ups for Cause >= Threshold.
	RuleCauseCount RuleKind = "cause_count"
)

// BadgeRule is the eligibility predicate of a Badge expressed as data.
type BadgeRule struct {
	Kind      RuleKind
	Threshold int

	// Cause is only read by RuleCauseCount.
	Cause string
}

// Badge is a static achievement definition. Badges are never stored as
// earned; eligibility is recomputed on every read.
type Badge struct {
	ID          string
	Name        string
	Description string

	// Icon is an emoji.
	Icon string

	Rule BadgeRule
}
