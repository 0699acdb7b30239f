// Package service wires the storage layer to the aggregation and
// relationship engines. Community is the single entry point used by the
// command-line tool and by any future transport.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/metrics"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/relations"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/storage"
)

// Options tune community behavior.
type Options struct {
	// EmailDomain is the institutional domain required at registration.
	EmailDomain string

	// AutoAcceptFriendRequests makes every sent request an immediate friendship.
	AutoAcceptFriendRequests bool

	// EnforceCapacity rejects sign-ups for opportunities with no slots left.
	// When false, capacity is advisory only.
	EnforceCapacity bool

	// Now is the clock; defaults to time.Now.
	Now func() time.Time

	// Metrics receives counters and timings; defaults to a private registry.
	Metrics *metrics.Metrics
}

// Community implements the community operations on top of a Store.
type Community struct {
	store   storage.Store
	badges  []models.Badge
	opts    Options
	metrics *metrics.Metrics

	// writeMu serializes read-modify-replace cycles.
	writeMu sync.Mutex
}

// NewCommunity creates a Community over store with the given badge catalog.
func NewCommunity(store storage.Store, badges []models.Badge, opts Options) *Community {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(nil)
	}
	return &Community{
		store:   store,
		badges:  badges,
		opts:    opts,
		metrics: opts.Metrics,
	}
}

// Register creates a new account.
func (c *Community) Register(ctx context.Context, reg relations.Registration) (models.User, error) {
	var created models.User
	err := c.mutate(ctx, "Register", nil, func(snap *models.Snapshot) (bool, error) {
		user, users, err := relations.RegisterUser(reg, snap.Users, c.opts.EmailDomain)
		if err != nil {
			return false, err
		}
		created = user
		snap.Users = users
		return true, nil
	})
	if err == nil {
		slog.Info("User registered", "user_id", created.ID)
	}
	return created, err
}

// Authenticate signs a user in by e-mail and password.
func (c *Community) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	slog.Info("Authenticate request received")

	user, err := view(ctx, c, "authenticate", func(snap *models.Snapshot) (models.User, error) {
		return relations.Authenticate(email, password, snap.Users)
	})
	if err != nil {
		slog.Warn("Authenticate failed", "error", err)
		return models.User{}, err
	}

	slog.Info("Authenticate successful", "user_id", user.ID)
	return user, nil
}

// SignUp registers userID for opportunityID. It reports false when the
// user was already signed up.
func (c *Community) SignUp(ctx context.Context, userID, opportunityID int) (bool, error) {
	var changed bool
	err := c.mutate(ctx, "SignUp", []any{"user_id", userID, "opportunity_id", opportunityID}, func(snap *models.Snapshot) (bool, error) {
		if snap.FindUser(userID) == nil {
			return false, fmt.Errorf("user %d: %w", userID, relations.ErrUserNotFound)
		}
		opp := snap.FindOpportunity(opportunityID)
		if opp == nil {
			return false, fmt.Errorf("opportunity %d: %w", opportunityID, ErrOpportunityNotFound)
		}

		signups, ok := relations.SignUp(userID, opportunityID, snap.SignUps)
		if ok && c.opts.EnforceCapacity {
			if err := relations.CheckCapacity(*opp, snap.SignUps); err != nil {
				return false, fmt.Errorf("opportunity %d: %w", opportunityID, err)
			}
		}
		changed = ok
		snap.SignUps = signups
		return ok, nil
	})
	return changed, err
}

// UnSignUp removes userID from opportunityID. It reports false when there
// was nothing to remove.
func (c *Community) UnSignUp(ctx context.Context, userID, opportunityID int) (bool, error) {
	var changed bool
	err := c.mutate(ctx, "UnSignUp", []any{"user_id", userID, "opportunity_id", opportunityID}, func(snap *models.Snapshot) (bool, error) {
		snap.SignUps, changed = relations.UnSignUp(userID, opportunityID, snap.SignUps)
		return changed, nil
	})
	return changed, err
}

// SendFriendRequest sends a request from fromID to toID and returns it.
func (c *Community) SendFriendRequest(ctx context.Context, fromID, toID int) (models.FriendRequest, error) {
	var request models.FriendRequest
	err := c.mutate(ctx, "SendFriendRequest", []any{"from_user_id", fromID, "to_user_id", toID}, func(snap *models.Snapshot) (bool, error) {
		update, err := relations.SendFriendRequest(fromID, toID, snap.FriendRequests, snap.Users, c.opts.AutoAcceptFriendRequests, c.opts.Now())
		if err != nil {
			return false, err
		}
		request = update.Request
		snap.FriendRequests, snap.Users = update.Requests, update.Users
		return update.Changed, nil
	})
	return request, err
}

// RespondToFriendRequest accepts or declines the pending request from
// fromID to toID. It reports false when no pending request exists.
func (c *Community) RespondToFriendRequest(ctx context.Context, fromID, toID int, response models.FriendRequestStatus) (bool, error) {
	var changed bool
	attrs := []any{"from_user_id", fromID, "to_user_id", toID, "response", response}
	err := c.mutate(ctx, "RespondToFriendRequest", attrs, func(snap *models.Snapshot) (bool, error) {
		update, err := relations.RespondToFriendRequest(fromID, toID, response, snap.FriendRequests, snap.Users)
		if err != nil {
			return false, err
		}
		changed = update.Changed
		snap.FriendRequests, snap.Users = update.Requests, update.Users
		return changed, nil
	})
	return changed, err
}

// JoinGroup adds userID to groupID.
func (c *Community) JoinGroup(ctx context.Context, userID, groupID int) (bool, error) {
	var changed bool
	err := c.mutate(ctx, "JoinGroup", []any{"user_id", userID, "group_id", groupID}, func(snap *models.Snapshot) (bool, error) {
		if snap.FindGroup(groupID) == nil {
			return false, fmt.Errorf("group %d: %w", groupID, ErrGroupNotFound)
		}
		users, ok, err := relations.JoinGroup(userID, groupID, snap.Users)
		if err != nil {
			return false, fmt.Errorf("user %d: %w", userID, err)
		}
		changed = ok
		snap.Users = users
		return ok, nil
	})
	return changed, err
}

// LeaveGroup removes userID from groupID.
func (c *Community) LeaveGroup(ctx context.Context, userID, groupID int) (bool, error) {
	var changed bool
	err := c.mutate(ctx, "LeaveGroup", []any{"user_id", userID, "group_id", groupID}, func(snap *models.Snapshot) (bool, error) {
		users, ok, err := relations.LeaveGroup(userID, groupID, snap.Users)
		if err != nil {
			return false, fmt.Errorf("user %d: %w", userID, err)
		}
		changed = ok
		snap.Users = users
		return ok, nil
	})
	return changed, err
}

// CreateGroup creates a group and makes creatorID its first member.
func (c *Community) CreateGroup(ctx context.Context, name string, category models.Category, creatorID int) (models.StudentGroup, error) {
	var group models.StudentGroup
	attrs := []any{"name", name, "category", category, "creator_id", creatorID}
	err := c.mutate(ctx, "CreateGroup", attrs, func(snap *models.Snapshot) (bool, error) {
		created, err := relations.CreateGroup(name, category, creatorID, snap.Groups, snap.Users)
		if err != nil {
			return false, err
		}
		group = created.Group
		snap.Groups, snap.Users = created.Groups, created.Users
		return true, nil
	})
	return group, err
}

// UpdateInterests replaces the user's interest tags.
func (c *Community) UpdateInterests(ctx context.Context, userID int, interests []string) error {
	return c.mutate(ctx, "UpdateInterests", []any{"user_id", userID, "interests_count", len(interests)}, func(snap *models.Snapshot) (bool, error) {
		users, err := relations.UpdateInterests(userID, interests, snap.Users)
		if err != nil {
			return false, err
		}
		snap.Users = users
		return true, nil
	})
}

// UpdateProfilePicture replaces the user's avatar URL.
func (c *Community) UpdateProfilePicture(ctx context.Context, userID int, pictureURL string) error {
	return c.mutate(ctx, "UpdateProfilePicture", []any{"user_id", userID}, func(snap *models.Snapshot) (bool, error) {
		users, err := relations.UpdateProfilePicture(userID, pictureURL, snap.Users)
		if err != nil {
			return false, err
		}
		snap.Users = users
		return true, nil
	})
}
