// Package relations implements the mutations of the community snapshot:
// friend requests, group membership, sign-ups, registration and profile
// edits.
//
// Every function is pure. Inputs are never modified; callers receive new
// collections and swap them into the snapshot themselves. A rejected
// mutation returns an error and no collections. A mutation that would not
// change anything (joining a group twice, a duplicate sign-up, answering a
// request that does not exist) is not an error; it reports changed == false
// and returns the input unchanged.
package relations

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrRequestExists    = errors.New("a friend request between these users already exists")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrInvalidResponse  = errors.New("response must be accepted or declined")
	ErrInvalidCategory  = errors.New("unknown group category")
	ErrInvalidGroupName = errors.New("group name is required")
	ErrOpportunityFull  = errors.New("opportunity has no slots remaining")
	ErrEmailExists      = errors.New("an account with this email already exists")
	ErrInvalidName      = errors.New("first and last name are required")
	ErrUnknownInterest  = errors.New("unknown interest")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
