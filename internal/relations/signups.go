package relations

import (
	"slices"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// SignUp records userID attending opportunityID. A duplicate pair leaves
// signups unchanged. Capacity is not checked here; see CheckCapacity.
func SignUp(userID, opportunityID int, signups []models.SignUp) ([]models.SignUp, bool) {
	if slices.Contains(signups, models.SignUp{UserID: userID, OpportunityID: opportunityID}) {
		return signups, false
	}
	out := make([]models.SignUp, 0, len(signups)+1)
	out = append(out, signups...)
	return append(out, models.SignUp{UserID: userID, OpportunityID: opportunityID}), true
}

// UnSignUp removes the (userID, opportunityID) pair if present.
func UnSignUp(userID, opportunityID int, signups []models.SignUp) ([]models.SignUp, bool) {
	target := models.SignUp{UserID: userID, OpportunityID: opportunityID}
	if !slices.Contains(signups, target) {
		return signups, false
	}
	out := slices.DeleteFunc(slices.Clone(signups), func(s models.SignUp) bool { return s == target })
	return out, true
}

// CheckCapacity returns ErrOpportunityFull when opp has as many sign-ups as
// TotalSlots. Callers that treat capacity as advisory skip it.
func CheckCapacity(opp models.Opportunity, signups []models.SignUp) error {
	taken := 0
	for _, s := range signups {
		if s.OpportunityID == opp.ID {
			taken++
		}
	}
	if taken >= opp.TotalSlots {
		return ErrOpportunityFull
	}
	return nil
}
