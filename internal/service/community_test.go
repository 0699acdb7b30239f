package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/auth"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/calculator"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/fixtures"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/metrics"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/relations"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/storage"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/storage/memory"
	"github.com/Scott-Fukuda/CUCaresTesting/pkg/logging"
)

var testNow = time.Date(2025, 9, 5, 10, 30, 0, 0, time.UTC)

// setupCommunity creates a Community over the default seed.
func setupCommunity(t *testing.T, opts Options) (*Community, *memory.Store) {
	t.Helper()

	seed, err := fixtures.Default(time.UTC)
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	store := memory.New(seed.Snapshot)
	t.Cleanup(func() { store.Close() })

	opts.EmailDomain = "cornell.edu"
	opts.Now = func() time.Time { return testNow }
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(nil)
	}
	return NewCommunity(store, seed.Badges, opts), store
}

func mutationCount(c *Community, op, outcome string) float64 {
	return testutil.ToFloat64(c.metrics.Mutations().WithLabelValues(op, outcome))
}

func TestIndividualLeaderboard(t *testing.T) {
	c, _ := setupCommunity(t, Options{})

	board, err := c.IndividualLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("IndividualLeaderboard failed: %v", err)
	}
	if len(board) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(board))
	}

	want := []struct {
		name   string
		points int
	}{
		{"Alice", 600},
		{"Chloe", 420},
		{"Ezra", 420},
		{"Ben", 390},
	}
	for i, w := range want {
		if board[i].User.FirstName != w.name || board[i].Points != w.points {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, board[i].User.FirstName, board[i].Points, w.name, w.points)
		}
	}
}

func TestGroupLeaderboard(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	board, err := c.GroupLeaderboard(ctx, models.CategoryProfessional)
	if err != nil {
		t.Fatalf("GroupLeaderboard failed: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(board))
	}
	if board[0].Group.ID != 101 || board[0].TotalPoints != 1200 || board[0].MemberCount != 3 {
		t.Errorf("first = %+v, want group 101 with 1200 points and 3 members", board[0])
	}
	if board[1].Group.ID != 102 || board[1].TotalPoints != 690 {
		t.Errorf("second = %+v, want group 102 with 690 points", board[1])
	}

	all, err := c.GroupLeaderboard(ctx, "")
	if err != nil {
		t.Fatalf("GroupLeaderboard(all) failed: %v", err)
	}
	if len(all) != 12 {
		t.Errorf("expected 12 groups, got %d", len(all))
	}

	if _, err := c.GroupLeaderboard(ctx, "Chess Club"); !errors.Is(err, relations.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestGroupRank(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	tests := []struct {
		name    string
		groupID int
		want    int
		wantErr error
	}{
		{"fraternity leader", 201, 1, nil},
		{"fraternity runner-up", 202, 2, nil},
		{"sorority with no members", 302, 2, nil},
		{"unknown group", 999, 0, ErrGroupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.GroupRank(ctx, tt.groupID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("rank = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSignUp(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	changed, err := c.SignUp(ctx, 6, 1)
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if !changed {
		t.Error("first sign-up should change the snapshot")
	}

	changed, err = c.SignUp(ctx, 6, 1)
	if err != nil {
		t.Fatalf("duplicate SignUp failed: %v", err)
	}
	if changed {
		t.Error("duplicate sign-up should be a no-op")
	}

	points, err := c.UserPoints(ctx)
	if err != nil {
		t.Fatalf("UserPoints failed: %v", err)
	}
	if points[6] != 300 {
		t.Errorf("Frank points = %d, want 300", points[6])
	}

	if got := mutationCount(c, "SignUp", metrics.OutcomeApplied); got != 1 {
		t.Errorf("applied = %v, want 1", got)
	}
	if got := mutationCount(c, "SignUp", metrics.OutcomeNoop); got != 1 {
		t.Errorf("noop = %v, want 1", got)
	}

	changed, err = c.UnSignUp(ctx, 6, 1)
	if err != nil || !changed {
		t.Fatalf("UnSignUp = %v, %v; want true, nil", changed, err)
	}
	points, _ = c.UserPoints(ctx)
	if points[6] != 120 {
		t.Errorf("Frank points after UnSignUp = %d, want 120", points[6])
	}
}

func TestSignUp_Rejected(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	tests := []struct {
		name          string
		userID, oppID int
		wantErr       error
	}{
		{"unknown opportunity", 1, 99, ErrOpportunityNotFound},
		{"unknown user", 99, 1, relations.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.SignUp(ctx, tt.userID, tt.oppID); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got := mutationCount(c, "SignUp", metrics.OutcomeRejected); got != 2 {
		t.Errorf("rejected = %v, want 2", got)
	}
}

func TestSignUp_Capacity(t *testing.T) {
	// Opportunity 4 has 6 slots and one seeded sign-up.
	fill := []int{1, 3, 4, 5, 6}

	t.Run("advisory", func(t *testing.T) {
		c, _ := setupCommunity(t, Options{})
		ctx := context.Background()
		for _, id := range append(fill, 7) {
			if _, err := c.SignUp(ctx, id, 4); err != nil {
				t.Fatalf("SignUp(%d) failed: %v", id, err)
			}
		}
		detail, err := c.OpportunityDetail(ctx, 4, 7)
		if err != nil {
			t.Fatalf("OpportunityDetail failed: %v", err)
		}
		if detail.SlotsRemaining != 0 || len(detail.Attendees) != 7 {
			t.Errorf("detail = %d slots / %d attendees, want 0 / 7", detail.SlotsRemaining, len(detail.Attendees))
		}
	})

	t.Run("enforced", func(t *testing.T) {
		c, _ := setupCommunity(t, Options{EnforceCapacity: true})
		ctx := context.Background()
		for _, id := range fill {
			if _, err := c.SignUp(ctx, id, 4); err != nil {
				t.Fatalf("SignUp(%d) failed: %v", id, err)
			}
		}
		if _, err := c.SignUp(ctx, 7, 4); !errors.Is(err, relations.ErrOpportunityFull) {
			t.Errorf("expected ErrOpportunityFull, got %v", err)
		}
		// An existing attendee re-signing is still a no-op, not a rejection.
		if changed, err := c.SignUp(ctx, 2, 4); err != nil || changed {
			t.Errorf("re-sign = %v, %v; want false, nil", changed, err)
		}
	})
}

func TestFriendRequests(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	pending, err := c.PendingRequests(ctx, 1)
	if err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending requests for Alice, got %d", len(pending))
	}

	changed, err := c.RespondToFriendRequest(ctx, 6, 1, models.RequestAccepted)
	if err != nil || !changed {
		t.Fatalf("accept = %v, %v; want true, nil", changed, err)
	}
	changed, err = c.RespondToFriendRequest(ctx, 7, 1, models.RequestDeclined)
	if err != nil || !changed {
		t.Fatalf("decline = %v, %v; want true, nil", changed, err)
	}

	profile, err := c.Profile(ctx, 6)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if !profile.User.IsFriend(1) {
		t.Errorf("Frank friends = %v, want to include Alice", profile.User.FriendIDs)
	}

	pending, _ = c.PendingRequests(ctx, 1)
	if len(pending) != 0 {
		t.Errorf("expected no pending requests, got %d", len(pending))
	}

	// Answering again finds nothing pending.
	changed, err = c.RespondToFriendRequest(ctx, 6, 1, models.RequestAccepted)
	if err != nil || changed {
		t.Errorf("second accept = %v, %v; want false, nil", changed, err)
	}

	if _, err := c.SendFriendRequest(ctx, 1, 6); !errors.Is(err, relations.ErrAlreadyFriends) {
		t.Errorf("expected ErrAlreadyFriends, got %v", err)
	}
	if _, err := c.RespondToFriendRequest(ctx, 6, 1, "maybe"); !errors.Is(err, relations.ErrInvalidResponse) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}

	// A declined request does not block a new one.
	req, err := c.SendFriendRequest(ctx, 7, 1)
	if err != nil {
		t.Fatalf("SendFriendRequest after decline failed: %v", err)
	}
	if req.Status != models.RequestPending || req.ID == "" || req.CreatedAt != testNow.Unix() {
		t.Errorf("request = %+v, want pending with ID and CreatedAt", req)
	}
}

func TestSendFriendRequest_AutoAccept(t *testing.T) {
	c, _ := setupCommunity(t, Options{AutoAcceptFriendRequests: true})
	ctx := context.Background()

	req, err := c.SendFriendRequest(ctx, 5, 6)
	if err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if req.Status != models.RequestAccepted {
		t.Errorf("status = %s, want accepted", req.Status)
	}

	for _, pair := range [][2]int{{5, 6}, {6, 5}} {
		profile, err := c.Profile(ctx, pair[0])
		if err != nil {
			t.Fatalf("Profile(%d) failed: %v", pair[0], err)
		}
		if !profile.User.IsFriend(pair[1]) {
			t.Errorf("user %d friends = %v, want %d", pair[0], profile.User.FriendIDs, pair[1])
		}
	}

	pending, _ := c.PendingRequests(ctx, 6)
	if len(pending) != 0 {
		t.Errorf("auto-accepted request should not be pending")
	}
}

func TestGroups(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	group, err := c.CreateGroup(ctx, "  Cornell Outing Club ", models.CategorySportsTeam, 6)
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID != 603 || group.Name != "Cornell Outing Club" {
		t.Errorf("group = %+v, want ID 603 named Cornell Outing Club", group)
	}

	if changed, err := c.JoinGroup(ctx, 7, group.ID); err != nil || !changed {
		t.Fatalf("JoinGroup = %v, %v; want true, nil", changed, err)
	}
	if changed, err := c.JoinGroup(ctx, 7, group.ID); err != nil || changed {
		t.Errorf("second JoinGroup = %v, %v; want false, nil", changed, err)
	}

	detail, err := c.GroupDetail(ctx, group.ID)
	if err != nil {
		t.Fatalf("GroupDetail failed: %v", err)
	}
	if len(detail.Members) != 2 || detail.Members[0].FirstName != "Frank" || detail.Members[1].FirstName != "Grace" {
		t.Errorf("members = %v, want Frank and Grace", detail.Members)
	}
	// Frank 120 + Grace 150.
	if detail.TotalPoints != 270 {
		t.Errorf("TotalPoints = %d, want 270", detail.TotalPoints)
	}
	// Events 5 (Frank) and 2 (Grace): only 5 is still upcoming.
	if len(detail.UpcomingEvents) != 1 || detail.UpcomingEvents[0].Opportunity.ID != 5 {
		t.Errorf("upcoming = %+v, want opportunity 5", detail.UpcomingEvents)
	}

	if _, err := c.JoinGroup(ctx, 7, 999); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
	if _, err := c.CreateGroup(ctx, "Chess", "Board Games", 1); !errors.Is(err, relations.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}

	if changed, err := c.LeaveGroup(ctx, 7, group.ID); err != nil || !changed {
		t.Errorf("LeaveGroup = %v, %v; want true, nil", changed, err)
	}
	if changed, err := c.LeaveGroup(ctx, 7, group.ID); err != nil || changed {
		t.Errorf("second LeaveGroup = %v, %v; want false, nil", changed, err)
	}
}

func TestRegister(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	user, err := c.Register(ctx, relations.Registration{
		FirstName: "Ivy",
		LastName:  "Jones",
		Email:     "ij200@cornell.edu",
		Password:  "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID != 10 {
		t.Errorf("ID = %d, want 10", user.ID)
	}
	if !auth.CheckCredential(user.PasswordHash, "correct horse") {
		t.Error("stored hash does not match password")
	}

	tests := []struct {
		name    string
		reg     relations.Registration
		wantErr error
	}{
		{"duplicate email", relations.Registration{FirstName: "A", LastName: "J", Email: "AJ123@Cornell.edu", Password: "password123"}, relations.ErrEmailExists},
		{"other institution", relations.Registration{FirstName: "A", LastName: "B", Email: "ab@gmail.com", Password: "password123"}, auth.ErrNotInstitutional},
		{"short password", relations.Registration{FirstName: "A", LastName: "B", Email: "ab1@cornell.edu", Password: "short"}, auth.ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Register(ctx, tt.reg); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileAndBadges(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	profile, err := c.Profile(ctx, 1)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if profile.Points != 600 || profile.SignUpCount != 3 || profile.Hours != 10 {
		t.Errorf("profile = %d points / %d sign-ups / %v hours, want 600 / 3 / 10", profile.Points, profile.SignUpCount, profile.Hours)
	}
	if len(profile.Groups) != 2 {
		t.Errorf("groups = %d, want 2", len(profile.Groups))
	}

	badges, err := c.Badges(ctx, 1)
	if err != nil {
		t.Fatalf("Badges failed: %v", err)
	}
	wantIDs := []string{"first-volunteer", "point-novice", "point-adept", "point-master", "serial-volunteer", "social-butterfly"}
	if len(badges) != len(wantIDs) {
		t.Fatalf("badges = %v, want %v", badges, wantIDs)
	}
	for i, id := range wantIDs {
		if badges[i].ID != id {
			t.Errorf("badge %d = %s, want %s", i, badges[i].ID, id)
		}
	}

	if err := c.UpdateInterests(ctx, 1, []string{models.CauseEducation, models.CauseEducation}); err != nil {
		t.Fatalf("UpdateInterests failed: %v", err)
	}
	if err := c.UpdateInterests(ctx, 1, []string{"Knitting"}); !errors.Is(err, relations.ErrUnknownInterest) {
		t.Errorf("expected ErrUnknownInterest, got %v", err)
	}
	if err := c.UpdateProfilePicture(ctx, 1, "https://example.com/a.png"); err != nil {
		t.Fatalf("UpdateProfilePicture failed: %v", err)
	}

	profile, _ = c.Profile(ctx, 1)
	if len(profile.User.Interests) != 1 || profile.User.ProfilePictureURL != "https://example.com/a.png" {
		t.Errorf("user = %+v, want one interest and new picture", profile.User)
	}

	if _, err := c.Profile(ctx, 99); !errors.Is(err, relations.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := c.Badges(ctx, 99); !errors.Is(err, relations.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpcomingOpportunities(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	opps, err := c.UpcomingOpportunities(ctx, calculator.OpportunityFilter{})
	if err != nil {
		t.Fatalf("UpcomingOpportunities failed: %v", err)
	}
	var ids []int
	for _, o := range opps {
		ids = append(ids, o.ID)
	}
	want := []int{5, 6, 7, 8}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}

	opps, _ = c.UpcomingOpportunities(ctx, calculator.OpportunityFilter{Cause: models.CauseEnvironment})
	if len(opps) != 1 || opps[0].ID != 8 {
		t.Errorf("environment opportunities = %v, want only 8", opps)
	}
}

func TestConcurrentSignUps(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for id := 1; id <= 9; id++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			if _, err := c.SignUp(ctx, userID, 8); err != nil {
				t.Errorf("SignUp(%d) failed: %v", userID, err)
			}
		}(id)
	}
	wg.Wait()

	detail, err := c.OpportunityDetail(ctx, 8, 0)
	if err != nil {
		t.Fatalf("OpportunityDetail failed: %v", err)
	}
	if len(detail.Attendees) != 9 {
		t.Errorf("attendees = %d, want 9", len(detail.Attendees))
	}
}

func TestClosedStore(t *testing.T) {
	c, store := setupCommunity(t, Options{})
	store.Close()

	if _, err := c.IndividualLeaderboard(context.Background()); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := c.SignUp(context.Background(), 1, 2); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	c, _ := setupCommunity(t, Options{})
	ctx := context.Background()

	registered, err := c.Register(ctx, relations.Registration{
		FirstName: "Ivy",
		LastName:  "Jones",
		Email:     "ij200@cornell.edu",
		Password:  "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := c.Authenticate(ctx, "IJ200@Cornell.edu", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("ID = %d, want %d", user.ID, registered.ID)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ij200@cornell.edu", "battery staple"},
		{"unknown email", "nobody@cornell.edu", "correct horse"},
		{"fixture account without password", "aj123@cornell.edu", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Authenticate(ctx, tt.email, tt.password); !errors.Is(err, relations.ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	c, _ := setupCommunity(t, Options{})

	catalog := c.Catalog()
	if len(catalog) != 10 {
		t.Fatalf("catalog = %d badges, want 10", len(catalog))
	}
	if catalog[0].ID != "first-volunteer" || catalog[len(catalog)-1].ID != "community-champion" {
		t.Errorf("catalog order = %s..%s", catalog[0].ID, catalog[len(catalog)-1].ID)
	}
}

func TestRegister_LogsUserIDNotEmail(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(prev) })

	c, _ := setupCommunity(t, Options{})
	if _, err := c.Register(context.Background(), relations.Registration{
		FirstName: "Ivy",
		LastName:  "Jones",
		Email:     "ij200@cornell.edu",
		Password:  "correct horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "ij200") {
		t.Errorf("log output contains the e-mail address: %q", out)
	}
	if !strings.Contains(out, "user_id") {
		t.Errorf("log output missing user_id: %q", out)
	}
}
