package calculator

import (
	"time"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// testBadges mirrors the default badge catalog.
var testBadges = []models.Badge{
	{ID: "first-volunteer", Name: "First Step", Rule: models.BadgeRule{Kind: models.RuleSignUpCount, Threshold: 1}},
	{ID: "point-novice", Name: "Point Novice", Rule: models.BadgeRule{Kind: models.RulePoints, Threshold: 20}},
	{ID: "point-adept", Name: "Point Adept", Rule: models.BadgeRule{Kind: models.RulePoints, Threshold: 50}},
	{ID: "point-master", Name: "Point Master", Rule: models.BadgeRule{Kind: models.RulePoints, Threshold: 100}},
	{ID: "serial-volunteer", Name: "Serial Volunteer", Rule: models.BadgeRule{Kind: models.RuleSignUpCount, Threshold: 3}},
	{ID: "social-butterfly", Name: "Social Butterfly", Rule: models.BadgeRule{Kind: models.RuleFriendCount, Threshold: 3}},
	{ID: "eco-warrior", Name: "Eco Warrior", Rule: models.BadgeRule{Kind: models.RuleCauseCount, Threshold: 2, Cause: models.CauseEnvironment}},
}

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Users: []models.User{
			{ID: 1, FirstName: "Alice", FriendIDs: []int{2, 3, 4}, GroupIDs: []int{201, 101}},
			{ID: 2, FirstName: "Ben", FriendIDs: []int{1}, GroupIDs: []int{202}},
			{ID: 3, FirstName: "Chloe", FriendIDs: []int{1}, GroupIDs: []int{201}},
			{ID: 4, FirstName: "David", FriendIDs: []int{1}, GroupIDs: []int{999}},
			{ID: 5, FirstName: "Emily"},
		},
		Opportunities: []models.Opportunity{
			{ID: 1, Title: "Meal Service", Points: 180, Duration: 3, TotalSlots: 2, Cause: models.CauseFoodSecurity, StartsAt: day(2025, 9, 1, 15)},
			{ID: 2, Title: "Donation Sorting", Points: 150, Duration: 2.5, TotalSlots: 10, Cause: models.CauseEnvironment, StartsAt: day(2025, 9, 2, 11)},
			{ID: 3, Title: "Trail Day", Points: 120, Duration: 4, TotalSlots: 20, Cause: models.CauseEnvironment, StartsAt: day(2025, 8, 20, 9)},
		},
		SignUps: []models.SignUp{
			{UserID: 1, OpportunityID: 1},
			{UserID: 1, OpportunityID: 2},
			{UserID: 2, OpportunityID: 2},
			{UserID: 3, OpportunityID: 1},
			{UserID: 3, OpportunityID: 42}, // dangling
			{UserID: 1, OpportunityID: 3},
		},
		Groups: []models.StudentGroup{
			{ID: 101, Name: "Engineers for a Sustainable World", Category: models.CategoryProfessional},
			{ID: 201, Name: "Alpha Phi Omega", Category: models.CategoryFraternity},
			{ID: 202, Name: "Sigma Chi", Category: models.CategoryFraternity},
			{ID: 203, Name: "Delta Upsilon", Category: models.CategoryFraternity},
		},
	}
}
