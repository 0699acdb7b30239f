package relations

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// FriendUpdate is the outcome of a friend-request mutation.
type FriendUpdate struct {
	// Request is the request that was created or resolved.
	Request models.FriendRequest

	Requests []models.FriendRequest
	Users    []models.User

	// Changed is false when nothing was applied.
	Changed bool
}

// SendFriendRequest records a pending request from fromID to toID.
//
// The request is rejected when it targets the sender, when either user is
// unknown, when the two are already friends, or when a pending or accepted
// request already links them in either direction. A declined request does
// not block a new one. With autoAccept the request is stored as accepted and
// the friendship is applied immediately.
func SendFriendRequest(fromID, toID int, requests []models.FriendRequest, users []models.User, autoAccept bool, now time.Time) (FriendUpdate, error) {
	if fromID == toID {
		return FriendUpdate{}, ErrSelfRequest
	}
	from := findUser(users, fromID)
	if from == nil {
		return FriendUpdate{}, fmt.Errorf("sender %d: %w", fromID, ErrUserNotFound)
	}
	if findUser(users, toID) == nil {
		return FriendUpdate{}, fmt.Errorf("recipient %d: %w", toID, ErrUserNotFound)
	}
	if from.IsFriend(toID) {
		return FriendUpdate{}, ErrAlreadyFriends
	}
	// Declined requests do not block a retry
	for _, r := range requests {
		if r.Between(fromID, toID) && r.Status != models.RequestDeclined {
			return FriendUpdate{}, ErrRequestExists
		}
	}

	request := models.FriendRequest{
		ID:         uuid.New().String(),
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     models.RequestPending,
		CreatedAt:  now.Unix(),
	}

	update := FriendUpdate{Users: users, Changed: true}
	if autoAccept {
		request.Status = models.RequestAccepted
		update.Users = befriend(users, fromID, toID)
	}
	update.Request = request
	update.Requests = append(append(make([]models.FriendRequest, 0, len(requests)+1), requests...), request)

	return update, nil
}

// RespondToFriendRequest resolves the most recent pending request from
// fromID to toID with response (accepted or declined).
//
// Accepting adds each user to the other's FriendIDs; the union is
// idempotent. If there is no pending request for the pair nothing happens
// and Changed is false. A request addressed to its sender is rejected with
// ErrSelfRequest.
func RespondToFriendRequest(fromID, toID int, response models.FriendRequestStatus, requests []models.FriendRequest, users []models.User) (FriendUpdate, error) {
	if !response.Terminal() {
		return FriendUpdate{}, fmt.Errorf("%w: %q", ErrInvalidResponse, response)
	}
	if fromID == toID {
		return FriendUpdate{}, ErrSelfRequest
	}

	// Newest pending request for the pair wins
	idx := -1
	for i := len(requests) - 1; i >= 0; i-- {
		r := requests[i]
		if r.FromUserID == fromID && r.ToUserID == toID && r.Status == models.RequestPending {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FriendUpdate{Requests: requests, Users: users}, nil
	}

	// Copy before resolving so the caller's log is untouched
	resolved := make([]models.FriendRequest, len(requests))
	copy(resolved, requests)
	resolved[idx].Status = response

	update := FriendUpdate{
		Request:  resolved[idx],
		Requests: resolved,
		Users:    users,
		Changed:  true,
	}
	if response == models.RequestAccepted {
		update.Users = befriend(users, fromID, toID)
	}
	return update, nil
}

// befriend returns a copy of users with a and b in each other's FriendIDs.
// A missing user is skipped; the other side is still updated.
func befriend(users []models.User, a, b int) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		switch u.ID {
		case a:
			u = u.Clone()
			u.FriendIDs = appendUnique(u.FriendIDs, b)
		case b:
			u = u.Clone()
			u.FriendIDs = appendUnique(u.FriendIDs, a)
		}
		out[i] = u
	}
	return out
}
