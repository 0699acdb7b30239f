package calculator

import "github.com/Scott-Fukuda/CUCaresTesting/internal/models"

// UserPoints computes the point total of every user from their sign-ups.
//
// Algorithm:
// - Start every user in users at 0
// - For each sign-up: credit the referenced opportunity's points to the user
// - Sign-ups pointing at a missing opportunity (or an unknown user) contribute nothing
func UserPoints(users []models.User, signups []models.SignUp, opportunities []models.Opportunity) map[int]int {
	// Every known user starts at zero
	points := make(map[int]int, len(users))
	for _, u := range users {
		points[u.ID] = 0
	}

	byID := indexOpportunities(opportunities)
	for _, s := range signups {
		if _, known := points[s.UserID]; !known {
			continue
		}
		// Dangling opportunity IDs credit nothing
		if opp, ok := byID[s.OpportunityID]; ok {
			points[s.UserID] += opp.Points
		}
	}

	return points
}

// PointsFor returns the point total of a single user.
func PointsFor(userID int, signups []models.SignUp, opportunities []models.Opportunity) int {
	byID := indexOpportunities(opportunities)
	total := 0
	for _, s := range signups {
		if s.UserID != userID {
			continue
		}
		if opp, ok := byID[s.OpportunityID]; ok {
			total += opp.Points
		}
	}
	return total
}

// UserHours sums the duration of every opportunity the user signed up for.
// Dangling opportunity references contribute 0.
func UserHours(userID int, signups []models.SignUp, opportunities []models.Opportunity) float64 {
	byID := indexOpportunities(opportunities)
	var hours float64
	for _, s := range signups {
		if s.UserID != userID {
			continue
		}
		if opp, ok := byID[s.OpportunityID]; ok {
			hours += opp.Duration
		}
	}
	return hours
}

// CountSignupsForCause counts the sign-ups whose opportunity has the given
// cause. Pass one user's sign-ups for a per-user count, or all sign-ups for
// a global one.
func CountSignupsForCause(cause string, signups []models.SignUp, opportunities []models.Opportunity) int {
	byID := indexOpportunities(opportunities)
	count := 0
	for _, s := range signups {
		if opp, ok := byID[s.OpportunityID]; ok && opp.Cause == cause {
			count++
		}
	}
	return count
}

// SignUpsFor returns the sign-ups belonging to userID, in collection order.
func SignUpsFor(userID int, signups []models.SignUp) []models.SignUp {
	var out []models.SignUp
	for _, s := range signups {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}

func indexOpportunities(opportunities []models.Opportunity) map[int]*models.Opportunity {
	byID := make(map[int]*models.Opportunity, len(opportunities))
	for i := range opportunities {
		byID[opportunities[i].ID] = &opportunities[i]
	}
	return byID
}
