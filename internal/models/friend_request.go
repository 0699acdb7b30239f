package models

// FriendRequestStatus is the lifecycle state of a FriendRequest.
// Transitions: pending -> accepted | declined. Both are terminal.
type FriendRequestStatus string

const (
	RequestPending  FriendRequestStatus = "pending"
	RequestAccepted FriendRequestStatus = "accepted"
	RequestDeclined FriendRequestStatus = "declined"
)

// Terminal reports whether no further transition is allowed.
func (s FriendRequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestDeclined
}

// FriendRequest represents a directed friend request.
// Resolved requests are kept with their terminal status, so the collection
// is a log: a declined pair may be followed by a newer request.
type FriendRequest struct {
	// ID is the unique identifier for the request (UUID format).
	ID string

	FromUserID int
	ToUserID   int

	Status FriendRequestStatus

	// CreatedAt is the Unix timestamp when the request was sent.
	CreatedAt int64
}

// Between reports whether the request links a and b in either direction.
func (r *FriendRequest) Between(a, b int) bool {
	return (r.FromUserID == a && r.ToUserID == b) || (r.FromUserID == b && r.ToUserID == a)
}
