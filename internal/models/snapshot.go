package models

import "slices"

// Snapshot is the complete in-memory state of every entity collection at
// one point in time. Engines take a snapshot and return new collections;
// the owner swaps the whole snapshot after each mutation.
type Snapshot struct {
	Users          []User
	Opportunities  []Opportunity
	SignUps        []SignUp
	Groups         []StudentGroup
	FriendRequests []FriendRequest
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return &Snapshot{}
	}
	users := make([]User, len(s.Users))
	for i, u := range s.Users {
		users[i] = u.Clone()
	}
	return &Snapshot{
		Users:          users,
		Opportunities:  slices.Clone(s.Opportunities),
		SignUps:        slices.Clone(s.SignUps),
		Groups:         slices.Clone(s.Groups),
		FriendRequests: slices.Clone(s.FriendRequests),
	}
}

// FindUser returns the user with id, or nil.
func (s *Snapshot) FindUser(id int) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindOpportunity returns the opportunity with id, or nil.
func (s *Snapshot) FindOpportunity(id int) *Opportunity {
	for i := range s.Opportunities {
		if s.Opportunities[i].ID == id {
			return &s.Opportunities[i]
		}
	}
	return nil
}

// FindGroup returns the group with id, or nil.
func (s *Snapshot) FindGroup(id int) *StudentGroup {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}
