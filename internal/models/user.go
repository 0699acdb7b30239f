package models

import "slices"

// User represents a registered student account.
type User struct {
	// ID is the unique numeric identifier for the user.
	ID int

	FirstName string
	LastName  string

	// Email is the user's institutional e-mail address (unique, case-insensitive).
	Email string

	// PasswordHash is the bcrypt hash of the user's credential.
	// Empty for fixture accounts that never registered through the app.
	PasswordHash string

	// ProfilePictureURL is a URL or data URI for the avatar.
	ProfilePictureURL string

	// Interests is a set of cause tags drawn from AllCauses.
	Interests []string

	// FriendIDs is the set of mutual friends. Never contains the user's own ID.
	FriendIDs []int

	// GroupIDs is the set of student groups the user belongs to.
	GroupIDs []int

	IsAdmin bool
}

// FullName returns "First Last".
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsFriend reports whether id is in the user's friend set.
func (u *User) IsFriend(id int) bool {
	return slices.Contains(u.FriendIDs, id)
}

// InGroup reports whether the user is a member of groupID.
func (u *User) InGroup(groupID int) bool {
	return slices.Contains(u.GroupIDs, groupID)
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.Interests = slices.Clone(u.Interests)
	u.FriendIDs = slices.Clone(u.FriendIDs)
	u.GroupIDs = slices.Clone(u.GroupIDs)
	return u
}
