package calculator

import (
	"slices"
	"strings"
	"time"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// OpportunityFilter narrows the upcoming-opportunity listing.
type OpportunityFilter struct {
	// Cause keeps only opportunities with this cause; empty means all.
	Cause string

	// Day keeps only opportunities starting on this calendar day; zero means any day.
	Day time.Time
}

// UpcomingOpportunities lists opportunities starting today or later,
// filtered and sorted by start time.
func UpcomingOpportunities(opportunities []models.Opportunity, filter OpportunityFilter, now time.Time) []models.Opportunity {
	today := startOfDay(now)

	var out []models.Opportunity
	for _, opp := range opportunities {
		if filter.Cause != "" && opp.Cause != filter.Cause {
			continue
		}
		// Compare calendar days in the viewer's zone
		day := startOfDay(opp.StartsAt.In(now.Location()))
		if !filter.Day.IsZero() && !day.Equal(startOfDay(filter.Day.In(now.Location()))) {
			continue
		}
		if day.Before(today) {
			continue
		}
		out = append(out, opp)
	}

	slices.SortStableFunc(out, func(a, b models.Opportunity) int {
		return a.StartsAt.Compare(b.StartsAt)
	})
	return out
}

// SlotsRemaining returns how many advertised slots are still open, never below 0.
func SlotsRemaining(opp models.Opportunity, signups []models.SignUp) int {
	taken := 0
	for _, s := range signups {
		if s.OpportunityID == opp.ID {
			taken++
		}
	}
	return max(opp.TotalSlots-taken, 0)
}

// OpportunityView is the detail view of one opportunity for a viewer.
type OpportunityView struct {
	Opportunity    models.Opportunity
	Attendees      []models.User
	SlotsRemaining int

	// SignedUp reports whether the viewer is attending.
	SignedUp bool

	// CanSignUp is advisory: a slot is open and the viewer is not attending.
	CanSignUp bool
}

// OpportunityDetail builds the detail view of opp as seen by viewerID.
// Attendees appear in user collection order.
func OpportunityDetail(opp models.Opportunity, users []models.User, signups []models.SignUp, viewerID int) OpportunityView {
	attending := make(map[int]bool)
	for _, s := range signups {
		if s.OpportunityID == opp.ID {
			attending[s.UserID] = true
		}
	}

	view := OpportunityView{
		Opportunity:    opp,
		SlotsRemaining: SlotsRemaining(opp, signups),
		SignedUp:       attending[viewerID],
	}
	for _, u := range users {
		if attending[u.ID] {
			view.Attendees = append(view.Attendees, u)
		}
	}
	view.CanSignUp = view.SlotsRemaining > 0 && !view.SignedUp

	return view
}

// GroupEvent is an upcoming opportunity attended by members of a group.
type GroupEvent struct {
	Opportunity      models.Opportunity
	AttendingMembers int
}

// GroupView is the detail view of one student group.
type GroupView struct {
	Group          models.StudentGroup
	Members        []models.User
	TotalPoints    int
	Rank           int
	UpcomingEvents []GroupEvent
}

// GroupDetail builds the detail view of group from snap.
//
// Algorithm:
// - Members: users whose GroupIDs contain the group, sorted by first name
// - TotalPoints: sum of member points
// - Rank: position on the group's category leaderboard
// - UpcomingEvents: opportunities from today on with at least one member
// signed up, with the number of attending members, sorted by start
func GroupDetail(group models.StudentGroup, snap *models.Snapshot, now time.Time) GroupView {
	points := UserPoints(snap.Users, snap.SignUps, snap.Opportunities)

	view := GroupView{Group: group}
	memberIDs := make(map[int]bool)
	for _, u := range snap.Users {
		if u.InGroup(group.ID) {
			view.Members = append(view.Members, u)
			view.TotalPoints += points[u.ID]
			memberIDs[u.ID] = true
		}
	}
	slices.SortStableFunc(view.Members, func(a, b models.User) int {
		return strings.Compare(a.FirstName, b.FirstName)
	})

	view.Rank = GroupRank(group, snap.Groups, snap.Users, snap.SignUps, snap.Opportunities)

	// Count attending members per opportunity
	attending := make(map[int]int)
	for _, s := range snap.SignUps {
		if memberIDs[s.UserID] {
			attending[s.OpportunityID]++
		}
	}
	today := startOfDay(now)
	for _, opp := range snap.Opportunities {
		count := attending[opp.ID]
		if count == 0 || startOfDay(opp.StartsAt.In(now.Location())).Before(today) {
			continue
		}
		view.UpcomingEvents = append(view.UpcomingEvents, GroupEvent{Opportunity: opp, AttendingMembers: count})
	}
	slices.SortStableFunc(view.UpcomingEvents, func(a, b GroupEvent) int {
		return a.Opportunity.StartsAt.Compare(b.Opportunity.StartsAt)
	})

	return view
}

// Profile is the summary shown on a user's profile page.
type Profile struct {
	User          models.User
	Points        int
	Hours         float64
	SignUpCount   int
	Badges        []models.Badge
	Groups        []models.StudentGroup
	Opportunities []models.Opportunity
}

// ProfileSummary builds the profile of userID. The second result is false
// when the user does not exist. Group and opportunity IDs that no longer
// resolve are skipped.
func ProfileSummary(userID int, snap *models.Snapshot, badges []models.Badge) (Profile, bool) {
	user := snap.FindUser(userID)
	if user == nil {
		return Profile{}, false
	}

	stats := BadgeStatsFor(*user, snap)
	profile := Profile{
		User:        *user,
		Points:      stats.Points,
		Hours:       UserHours(userID, stats.SignUps, snap.Opportunities),
		SignUpCount: stats.SignUpCount,
		Badges:      EvaluateBadges(badges, stats),
	}
	// Skip groups that no longer exist
	for _, id := range user.GroupIDs {
		if g := snap.FindGroup(id); g != nil {
			profile.Groups = append(profile.Groups, *g)
		}
	}
	for _, s := range stats.SignUps {
		if opp := snap.FindOpportunity(s.OpportunityID); opp != nil {
			profile.Opportunities = append(profile.Opportunities, *opp)
		}
	}

	return profile, true
}

// PendingRequestsFor returns the pending requests addressed to userID.
func PendingRequestsFor(userID int, requests []models.FriendRequest) []models.FriendRequest {
	var out []models.FriendRequest
	for _, r := range requests {
		if r.ToUserID == userID && r.Status == models.RequestPending {
			out = append(out, r)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
