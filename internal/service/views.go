package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/calculator"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/relations"
)

// UserPoints returns the points of every user keyed by ID.
func (c *Community) UserPoints(ctx context.Context) (map[int]int, error) {
	return view(ctx, c, "user_points", func(snap *models.Snapshot) (map[int]int, error) {
		return calculator.UserPoints(snap.Users, snap.SignUps, snap.Opportunities), nil
	})
}

// IndividualLeaderboard ranks all users by points.
func (c *Community) IndividualLeaderboard(ctx context.Context) ([]calculator.UserScore, error) {
	return view(ctx, c, "individual_leaderboard", func(snap *models.Snapshot) ([]calculator.UserScore, error) {
		return calculator.IndividualLeaderboard(snap.Users, snap.SignUps, snap.Opportunities), nil
	})
}

// GroupLeaderboard ranks the groups of category by total member points.
// An empty category ranks all groups.
func (c *Community) GroupLeaderboard(ctx context.Context, category models.Category) ([]calculator.GroupScore, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: %q", relations.ErrInvalidCategory, category)
	}
	return view(ctx, c, "group_leaderboard", func(snap *models.Snapshot) ([]calculator.GroupScore, error) {
		return calculator.GroupLeaderboard(snap.Groups, snap.Users, snap.SignUps, snap.Opportunities, category), nil
	})
}

// GroupRank returns the 1-based rank of groupID within its category.
func (c *Community) GroupRank(ctx context.Context, groupID int) (int, error) {
	return view(ctx, c, "group_rank", func(snap *models.Snapshot) (int, error) {
		group := snap.FindGroup(groupID)
		if group == nil {
			return 0, fmt.Errorf("group %d: %w", groupID, ErrGroupNotFound)
		}
		return calculator.GroupRank(*group, snap.Groups, snap.Users, snap.SignUps, snap.Opportunities), nil
	})
}

// Badges returns the badges userID has earned, in catalog order.
func (c *Community) Badges(ctx context.Context, userID int) ([]models.Badge, error) {
	return view(ctx, c, "badges", func(snap *models.Snapshot) ([]models.Badge, error) {
		user := snap.FindUser(userID)
		if user == nil {
			return nil, fmt.Errorf("user %d: %w", userID, relations.ErrUserNotFound)
		}
		return calculator.EvaluateBadges(c.badges, calculator.BadgeStatsFor(*user, snap)), nil
	})
}

// Catalog returns every badge definition.
func (c *Community) Catalog() []models.Badge {
	return slices.Clone(c.badges)
}

// Profile returns the profile summary of userID.
func (c *Community) Profile(ctx context.Context, userID int) (calculator.Profile, error) {
	return view(ctx, c, "profile", func(snap *models.Snapshot) (calculator.Profile, error) {
		profile, ok := calculator.ProfileSummary(userID, snap, c.badges)
		if !ok {
			return calculator.Profile{}, fmt.Errorf("user %d: %w", userID, relations.ErrUserNotFound)
		}
		return profile, nil
	})
}

// GroupDetail returns the detail view of groupID.
func (c *Community) GroupDetail(ctx context.Context, groupID int) (calculator.GroupView, error) {
	return view(ctx, c, "group_detail", func(snap *models.Snapshot) (calculator.GroupView, error) {
		group := snap.FindGroup(groupID)
		if group == nil {
			return calculator.GroupView{}, fmt.Errorf("group %d: %w", groupID, ErrGroupNotFound)
		}
		return calculator.GroupDetail(*group, snap, c.opts.Now()), nil
	})
}

// OpportunityDetail returns the detail view of opportunityID for viewerID.
func (c *Community) OpportunityDetail(ctx context.Context, opportunityID, viewerID int) (calculator.OpportunityView, error) {
	return view(ctx, c, "opportunity_detail", func(snap *models.Snapshot) (calculator.OpportunityView, error) {
		opp := snap.FindOpportunity(opportunityID)
		if opp == nil {
			return calculator.OpportunityView{}, fmt.Errorf("opportunity %d: %w", opportunityID, ErrOpportunityNotFound)
		}
		return calculator.OpportunityDetail(*opp, snap.Users, snap.SignUps, viewerID), nil
	})
}

// UpcomingOpportunities lists opportunities from today on matching filter.
func (c *Community) UpcomingOpportunities(ctx context.Context, filter calculator.OpportunityFilter) ([]models.Opportunity, error) {
	return view(ctx, c, "upcoming_opportunities", func(snap *models.Snapshot) ([]models.Opportunity, error) {
		return calculator.UpcomingOpportunities(snap.Opportunities, filter, c.opts.Now()), nil
	})
}

// PendingRequests lists pending friend requests addressed to userID.
func (c *Community) PendingRequests(ctx context.Context, userID int) ([]models.FriendRequest, error) {
	return view(ctx, c, "pending_requests", func(snap *models.Snapshot) ([]models.FriendRequest, error) {
		return calculator.PendingRequestsFor(userID, snap.FriendRequests), nil
	})
}
