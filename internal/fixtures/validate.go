package fixtures

import (
	"errors"
	"fmt"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// ErrInvalidSeed wraps every integrity violation found in a seed document.
var ErrInvalidSeed = errors.New("invalid seed")

// validate checks the integrity rules the engines rely on: unique entity
// IDs, no self-friendship, duplicate-free relation sets, friends that
// exist, unique sign-up pairs and no requests addressed to their sender.
// Group IDs on users may dangle; readers skip them.
func validate(snap *models.Snapshot) error {
	userIDs := make(map[int]bool, len(snap.Users))
	for _, u := range snap.Users {
		if userIDs[u.ID] {
			return fmt.Errorf("%w: user %d: duplicate id", ErrInvalidSeed, u.ID)
		}
		userIDs[u.ID] = true
	}

	for _, u := range snap.Users {
		friends := make(map[int]bool, len(u.FriendIDs))
		for _, id := range u.FriendIDs {
			switch {
			case id == u.ID:
				return fmt.Errorf("%w: user %d: cannot be a friend of itself", ErrInvalidSeed, u.ID)
			case friends[id]:
				return fmt.Errorf("%w: user %d: duplicate friend %d", ErrInvalidSeed, u.ID, id)
			case !userIDs[id]:
				return fmt.Errorf("%w: user %d: unknown friend %d", ErrInvalidSeed, u.ID, id)
			}
			friends[id] = true
		}

		groups := make(map[int]bool, len(u.GroupIDs))
		for _, id := range u.GroupIDs {
			if groups[id] {
				return fmt.Errorf("%w: user %d: duplicate group %d", ErrInvalidSeed, u.ID, id)
			}
			groups[id] = true
		}
	}

	oppIDs := make(map[int]bool, len(snap.Opportunities))
	for _, o := range snap.Opportunities {
		if oppIDs[o.ID] {
			return fmt.Errorf("%w: opportunity %d: duplicate id", ErrInvalidSeed, o.ID)
		}
		oppIDs[o.ID] = true
	}

	groupIDs := make(map[int]bool, len(snap.Groups))
	for _, g := range snap.Groups {
		if groupIDs[g.ID] {
			return fmt.Errorf("%w: group %d: duplicate id", ErrInvalidSeed, g.ID)
		}
		groupIDs[g.ID] = true
	}

	// Duplicate pairs would count an opportunity's points twice
	pairs := make(map[models.SignUp]bool, len(snap.SignUps))
	for _, s := range snap.SignUps {
		if pairs[s] {
			return fmt.Errorf("%w: sign-up %d->%d: duplicate", ErrInvalidSeed, s.UserID, s.OpportunityID)
		}
		pairs[s] = true
	}

	requestIDs := make(map[string]bool, len(snap.FriendRequests))
	for _, r := range snap.FriendRequests {
		if r.FromUserID == r.ToUserID {
			return fmt.Errorf("%w: friend request %d->%d: sent to self", ErrInvalidSeed, r.FromUserID, r.ToUserID)
		}
		if requestIDs[r.ID] {
			return fmt.Errorf("%w: friend request %s: duplicate id", ErrInvalidSeed, r.ID)
		}
		requestIDs[r.ID] = true
	}

	return nil
}
