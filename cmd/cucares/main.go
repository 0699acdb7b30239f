package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/calculator"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/config"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/fixtures"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/metrics"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/service"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/storage/memory"
	"github.com/Scott-Fukuda/CUCaresTesting/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	viewName := flag.String("view", "leaderboard", "leaderboard, groups, profile, badges, group, opportunities or requests")
	userID := flag.Int("user", 1, "user ID for profile, badges and requests views")
	groupID := flag.Int("group", 0, "group ID for the group view")
	category := flag.String("category", "", "group category for the groups view (empty for all)")
	cause := flag.String("cause", "", "cause filter for the opportunities view")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("Failed to resolve timezone", "error", err)
		os.Exit(1)
	}

	var seed *fixtures.Seed
	if cfg.Community.SeedFile != "" {
		seed, err = fixtures.LoadFile(cfg.Community.SeedFile, loc)
	} else {
		seed, err = fixtures.Default(loc)
	}
	if err != nil {
		slog.Error("Failed to load seed", "error", err)
		os.Exit(1)
	}

	store := memory.New(seed.Snapshot)
	defer store.Close()
	slog.Info("Store initialized",
		"users", len(seed.Snapshot.Users),
		"opportunities", len(seed.Snapshot.Opportunities),
		"groups", len(seed.Snapshot.Groups),
	)

	community := service.NewCommunity(store, seed.Badges, service.Options{
		EmailDomain:              cfg.Community.EmailDomain,
		AutoAcceptFriendRequests: cfg.Community.AutoAcceptFriendRequests,
		EnforceCapacity:          cfg.Community.EnforceCapacity,
		Now:                      func() time.Time { return time.Now().In(loc) },
		Metrics:                  metrics.New(prometheus.DefaultRegisterer),
	})

	out := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer out.Flush()

	ctx := context.Background()
	switch *viewName {
	case "leaderboard":
		err = printLeaderboard(ctx, out, community)
	case "groups":
		err = printGroups(ctx, out, community, models.Category(*category))
	case "profile":
		err = printProfile(ctx, out, community, *userID)
	case "badges":
		err = printBadges(ctx, out, community, *userID)
	case "group":
		err = printGroup(ctx, out, community, *groupID)
	case "opportunities":
		err = printOpportunities(ctx, out, community, *cause)
	case "requests":
		err = printRequests(ctx, out, community, *userID)
	default:
		err = fmt.Errorf("unknown view %q", *viewName)
	}
	if err != nil {
		out.Flush()
		slog.Error("View failed", "view", *viewName, "error", err)
		os.Exit(1)
	}
}

func printLeaderboard(ctx context.Context, w io.Writer, c *service.Community) error {
	board, err := c.IndividualLeaderboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "RANK\tNAME\tPOINTS")
	for i, entry := range board {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, entry.User.FullName(), entry.Points)
	}
	return nil
}

func printGroups(ctx context.Context, w io.Writer, c *service.Community, category models.Category) error {
	board, err := c.GroupLeaderboard(ctx, category)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "RANK\tID\tGROUP\tCATEGORY\tMEMBERS\tPOINTS")
	for i, entry := range board {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%d\n", i+1, entry.Group.ID, entry.Group.Name, entry.Group.Category, entry.MemberCount, entry.TotalPoints)
	}
	return nil
}

func printProfile(ctx context.Context, w io.Writer, c *service.Community, userID int) error {
	profile, err := c.Profile(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Name:\t%s\n", profile.User.FullName())
	fmt.Fprintf(w, "Email:\t%s\n", profile.User.Email)
	fmt.Fprintf(w, "Points:\t%d\n", profile.Points)
	fmt.Fprintf(w, "Hours:\t%g\n", profile.Hours)
	fmt.Fprintf(w, "Sign-ups:\t%d\n", profile.SignUpCount)
	fmt.Fprintf(w, "Friends:\t%d\n", len(profile.User.FriendIDs))
	fmt.Fprintf(w, "Interests:\t%s\n", strings.Join(profile.User.Interests, ", "))

	var groups []string
	for _, g := range profile.Groups {
		groups = append(groups, g.Name)
	}
	fmt.Fprintf(w, "Groups:\t%s\n", strings.Join(groups, ", "))

	fmt.Fprintln(w, "\nBADGE\tDESCRIPTION")
	for _, b := range profile.Badges {
		fmt.Fprintf(w, "%s %s\t%s\n", b.Icon, b.Name, b.Description)
	}
	return nil
}

func printBadges(ctx context.Context, w io.Writer, c *service.Community, userID int) error {
	earned, err := c.Badges(ctx, userID)
	if err != nil {
		return err
	}
	has := make(map[string]bool, len(earned))
	for _, b := range earned {
		has[b.ID] = true
	}

	fmt.Fprintln(w, "EARNED\tBADGE\tDESCRIPTION")
	for _, b := range c.Catalog() {
		mark := "-"
		if has[b.ID] {
			mark = "yes"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\n", mark, b.Icon, b.Name, b.Description)
	}
	return nil
}

func printGroup(ctx context.Context, w io.Writer, c *service.Community, groupID int) error {
	detail, err := c.GroupDetail(ctx, groupID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Group:\t%s\n", detail.Group.Name)
	fmt.Fprintf(w, "Category:\t%s\n", detail.Group.Category)
	fmt.Fprintf(w, "Rank:\t#%d\n", detail.Rank)
	fmt.Fprintf(w, "Points:\t%d\n", detail.TotalPoints)

	fmt.Fprintln(w, "\nMEMBER\tEMAIL")
	for _, m := range detail.Members {
		fmt.Fprintf(w, "%s\t%s\n", m.FullName(), m.Email)
	}

	fmt.Fprintln(w, "\nUPCOMING\tWHEN\tMEMBERS ATTENDING")
	for _, e := range detail.UpcomingEvents {
		fmt.Fprintf(w, "%s\t%s\t%d\n", e.Opportunity.Title, e.Opportunity.StartsAt.Format(time.DateTime), e.AttendingMembers)
	}
	return nil
}

func printOpportunities(ctx context.Context, w io.Writer, c *service.Community, cause string) error {
	if cause != "" && !models.ValidCause(cause) {
		return fmt.Errorf("unknown cause %q", cause)
	}
	opps, err := c.UpcomingOpportunities(ctx, calculator.OpportunityFilter{Cause: cause})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "ID\tWHEN\tTITLE\tORGANIZATION\tPOINTS\tCAUSE")
	for _, o := range opps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", o.ID, o.StartsAt.Format(time.DateTime), o.Title, o.Organization, o.Points, o.Cause)
	}
	return nil
}

func printRequests(ctx context.Context, w io.Writer, c *service.Community, userID int) error {
	requests, err := c.PendingRequests(ctx, userID)
	if err != nil {
		return err
	}
	points, err := c.UserPoints(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "REQUEST\tFROM USER\tFROM POINTS")
	for _, r := range requests {
		fmt.Fprintf(w, "%s\t%d\t%d\n", r.ID, r.FromUserID, points[r.FromUserID])
	}
	return nil
}
