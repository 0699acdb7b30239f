package relations

import (
	"slices"
	"strings"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// JoinGroup adds groupID to the user's GroupIDs. Joining twice is a no-op.
func JoinGroup(userID, groupID int, users []models.User) ([]models.User, bool, error) {
	user := findUser(users, userID)
	if user == nil {
		return nil, false, ErrUserNotFound
	}
	if user.InGroup(groupID) {
		return users, false, nil
	}

	out, err := updateUser(users, userID, func(u *models.User) {
		u.GroupIDs = append(u.GroupIDs, groupID)
	})
	return out, err == nil, err
}

// LeaveGroup removes groupID from the user's GroupIDs if present.
func LeaveGroup(userID, groupID int, users []models.User) ([]models.User, bool, error) {
	user := findUser(users, userID)
	if user == nil {
		return nil, false, ErrUserNotFound
	}
	if !user.InGroup(groupID) {
		return users, false, nil
	}

	out, err := updateUser(users, userID, func(u *models.User) {
		u.GroupIDs = slices.DeleteFunc(u.GroupIDs, func(id int) bool { return id == groupID })
	})
	return out, err == nil, err
}

// GroupCreation is the outcome of CreateGroup.
type GroupCreation struct {
	Group  models.StudentGroup
	Groups []models.StudentGroup
	Users  []models.User
}

// CreateGroup adds a new group and joins creatorID to it.
// The new ID is max(existing IDs)+1, or 1 for the first group. Groups are
// approved immediately.
func CreateGroup(name string, category models.Category, creatorID int, groups []models.StudentGroup, users []models.User) (GroupCreation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GroupCreation{}, ErrInvalidGroupName
	}
	if !category.Valid() {
		return GroupCreation{}, ErrInvalidCategory
	}

	group := models.StudentGroup{
		ID:       nextID(groups, func(g models.StudentGroup) int { return g.ID }),
		Name:     name,
		Category: category,
	}

	// Creator becomes the first member
	joined, _, err := JoinGroup(creatorID, group.ID, users)
	if err != nil {
		return GroupCreation{}, err
	}

	return GroupCreation{
		Group:  group,
		Groups: append(slices.Clone(groups), group),
		Users:  joined,
	}, nil
}
