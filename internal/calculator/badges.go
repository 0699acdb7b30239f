package calculator

import "github.com/Scott-Fukuda/CUCaresTesting/internal/models"

// BadgeStats is the statistics snapshot a badge rule is evaluated against.
type BadgeStats struct {
	Points       int
	SignUpCount  int
	FriendsCount int

	// SignUps and Opportunities back cause-specific rules.
	SignUps       []models.SignUp
	Opportunities []models.Opportunity
}

// BadgeStatsFor builds the statistics snapshot for one user.
// Cause counts are scoped to the user's own sign-ups.
func BadgeStatsFor(user models.User, snap *models.Snapshot) BadgeStats {
	own := SignUpsFor(user.ID, snap.SignUps)
	return BadgeStats{
		Points:        PointsFor(user.ID, own, snap.Opportunities),
		SignUpCount:   len(own),
		FriendsCount:  len(user.FriendIDs),
		SignUps:       own,
		Opportunities: snap.Opportunities,
	}
}

// Earned reports whether rule holds for stats. Unknown rule kinds never hold.
func Earned(rule models.BadgeRule, stats BadgeStats) bool {
	switch rule.Kind {
	case models.RuleSignUpCount:
		return stats.SignUpCount >= rule.Threshold
	case models.RulePoints:
		return stats.Points > rule.Threshold
	case models.RuleFriendCount:
		return stats.FriendsCount >= rule.Threshold
	case models.RuleCauseCount:
		return CountSignupsForCause(rule.Cause, stats.SignUps, stats.Opportunities) >= rule.Threshold
	default:
		return false
	}
}

// EvaluateBadges returns the badges whose rule holds, in definition order.
// Badges are independent; nothing is remembered between calls.
func EvaluateBadges(defs []models.Badge, stats BadgeStats) []models.Badge {
	var earned []models.Badge
	for _, b := range defs {
		if Earned(b.Rule, stats) {
			earned = append(earned, b)
		}
	}
	return earned
}
