package calculator

import (
	"cmp"
	"slices"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// UserScore is one row of the individual leaderboard.
type UserScore struct {
	User   models.User
	Points int
}

// GroupScore is one row of a group leaderboard.
type GroupScore struct {
	Group       models.StudentGroup
	TotalPoints int
	MemberCount int
}

// IndividualLeaderboard ranks all users by points, highest first.
// Users with equal points keep their collection order; there is no
// secondary key.
func IndividualLeaderboard(users []models.User, signups []models.SignUp, opportunities []models.Opportunity) []UserScore {
	points := UserPoints(users, signups, opportunities)

	board := make([]UserScore, len(users))
	for i, u := range users {
		board[i] = UserScore{User: u, Points: points[u.ID]}
	}

	// Highest first; stable so ties keep collection order
	slices.SortStableFunc(board, func(a, b UserScore) int {
		return cmp.Compare(b.Points, a.Points)
	})
	return board
}

// GroupLeaderboard ranks groups by the summed points of their members.
// An empty category includes every group. Ties keep collection order.
//
// Algorithm:
// - Compute every user's points once
// - For each group in scope: sum points over users whose GroupIDs contain it
// - Stable sort, highest total first
func GroupLeaderboard(groups []models.StudentGroup, users []models.User, signups []models.SignUp, opportunities []models.Opportunity, category models.Category) []GroupScore {
	points := UserPoints(users, signups, opportunities)

	var board []GroupScore
	for _, g := range groups {
		if category != "" && g.Category != category {
			continue
		}
		// Membership lives on the user side only
		score := GroupScore{Group: g}
		for i := range users {
			if users[i].InGroup(g.ID) {
				score.TotalPoints += points[users[i].ID]
				score.MemberCount++
			}
		}
		board = append(board, score)
	}

	slices.SortStableFunc(board, func(a, b GroupScore) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})
	return board
}

// GroupRank returns the 1-based position of group on its category's
// leaderboard. A group missing from groups, or stored there under another
// category, is ranked as if it were appended, so the result is always
// between 1 and the category size.
func GroupRank(group models.StudentGroup, groups []models.StudentGroup, users []models.User, signups []models.SignUp, opportunities []models.Opportunity) int {
	candidates := groups
	if !slices.ContainsFunc(groups, func(g models.StudentGroup) bool {
		return g.ID == group.ID && g.Category == group.Category
	}) {
		candidates = append(slices.Clone(groups), group)
	}

	board := GroupLeaderboard(candidates, users, signups, opportunities, group.Category)
	for i, row := range board {
		if row.Group.ID == group.ID {
			return i + 1
		}
	}
	// unreachable: group is always a candidate in its own category
	return len(board)
}
