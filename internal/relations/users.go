package relations

import (
	"slices"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// updateUser copies users and applies fn to the copy of userID.
// Returns ErrUserNotFound when no such user exists.
func updateUser(users []models.User, userID int, fn func(u *models.User)) ([]models.User, error) {
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	out := slices.Clone(users)
	updated := out[idx].Clone()
	fn(&updated)
	out[idx] = updated
	return out, nil
}

func findUser(users []models.User, userID int) *models.User {
	for i := range users {
		if users[i].ID == userID {
			return &users[i]
		}
	}
	return nil
}

// appendUnique returns ids with id added if it was not already present.
func appendUnique(ids []int, id int) []int {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// nextID returns max(ids)+1, or 1 when there are none.
func nextID[T any](items []T, id func(T) int) int {
	highest := 0
	for _, it := range items {
		highest = max(highest, id(it))
	}
	return highest + 1
}
