// Package fixtures loads the static seed data the community starts from.
//
// The default seed is embedded in the binary; Load accepts any document
// with the same layout so deployments can ship their own.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is a decoded fixture document.
type Seed struct {
	Snapshot *models.Snapshot
	Badges   []models.Badge
}

type document struct {
	Users          []userRecord        `yaml:"users"`
	Opportunities  []opportunityRecord `yaml:"opportunities"`
	SignUps        []signUpRecord      `yaml:"signups"`
	Groups         []groupRecord       `yaml:"groups"`
	FriendRequests []requestRecord     `yaml:"friend_requests"`
	Badges         []badgeRecord       `yaml:"badges"`
}

type userRecord struct {
	ID                int      `yaml:"id"`
	FirstName         string   `yaml:"first_name"`
	LastName          string   `yaml:"last_name"`
	Email             string   `yaml:"email"`
	ProfilePictureURL string   `yaml:"profile_picture_url"`
	Interests         []string `yaml:"interests"`
	FriendIDs         []int    `yaml:"friend_ids"`
	GroupIDs          []int    `yaml:"group_ids"`
	IsAdmin           bool     `yaml:"is_admin"`
}

type opportunityRecord struct {
	ID           int     `yaml:"id"`
	Organization string  `yaml:"organization"`
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	Date         string  `yaml:"date"`
	Time         string  `yaml:"time"`
	Duration     float64 `yaml:"duration"`
	TotalSlots   int     `yaml:"total_slots"`
	Points       int     `yaml:"points"`
	Cause        string  `yaml:"cause"`
	ImageURL     string  `yaml:"image_url"`
	IsPrivate    bool    `yaml:"is_private"`
}

type signUpRecord struct {
	UserID        int `yaml:"user_id"`
	OpportunityID int `yaml:"opportunity_id"`
}

type groupRecord struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type requestRecord struct {
	ID         string `yaml:"id"`
	FromUserID int    `yaml:"from_user_id"`
	ToUserID   int    `yaml:"to_user_id"`
	Status     string `yaml:"status"`
}

type badgeRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Rule        struct {
		Kind      string `yaml:"kind"`
		Threshold int    `yaml:"threshold"`
		Cause     string `yaml:"cause"`
	} `yaml:"rule"`
}

// Default decodes the embedded seed with times in loc.
func Default(loc *time.Location) (*Seed, error) {
	return Load(bytes.NewReader(defaultSeed), loc)
}

// LoadFile decodes the seed at path with times in loc.
func LoadFile(path string, loc *time.Location) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Load(f, loc)
}

// Load decodes a seed document. Opportunity date and time fields are
// interpreted in loc (UTC when nil). Requests without an ID get a UUID.
func Load(r io.Reader, loc *time.Location) (*Seed, error) {
	if loc == nil {
		loc = time.UTC
	}

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	snap := &models.Snapshot{}
	for _, u := range doc.Users {
		snap.Users = append(snap.Users, models.User{
			ID:                u.ID,
			FirstName:         u.FirstName,
			LastName:          u.LastName,
			Email:             u.Email,
			ProfilePictureURL: u.ProfilePictureURL,
			Interests:         u.Interests,
			FriendIDs:         u.FriendIDs,
			GroupIDs:          u.GroupIDs,
			IsAdmin:           u.IsAdmin,
		})
	}

	for _, o := range doc.Opportunities {
		startsAt, err := time.ParseInLocation("2006-01-02 15:04", o.Date+" "+o.Time, loc)
		if err != nil {
			return nil, fmt.Errorf("opportunity %d: invalid date/time: %w", o.ID, err)
		}
		if o.Cause != "" && !models.ValidCause(o.Cause) {
			return nil, fmt.Errorf("opportunity %d: unknown cause %q", o.ID, o.Cause)
		}
		snap.Opportunities = append(snap.Opportunities, models.Opportunity{
			ID:           o.ID,
			Organization: o.Organization,
			Title:        o.Title,
			Description:  o.Description,
			StartsAt:     startsAt,
			Duration:     o.Duration,
			TotalSlots:   o.TotalSlots,
			Points:       o.Points,
			Cause:        o.Cause,
			ImageURL:     o.ImageURL,
			IsPrivate:    o.IsPrivate,
		})
	}

	for _, s := range doc.SignUps {
		snap.SignUps = append(snap.SignUps, models.SignUp{UserID: s.UserID, OpportunityID: s.OpportunityID})
	}

	for _, g := range doc.Groups {
		category := models.Category(g.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("group %d: unknown category %q", g.ID, g.Category)
		}
		snap.Groups = append(snap.Groups, models.StudentGroup{ID: g.ID, Name: g.Name, Category: category})
	}

	for _, r := range doc.FriendRequests {
		status := models.FriendRequestStatus(r.Status)
		switch status {
		case models.RequestPending, models.RequestAccepted, models.RequestDeclined:
		default:
			return nil, fmt.Errorf("friend request %d->%d: unknown status %q", r.FromUserID, r.ToUserID, r.Status)
		}
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		snap.FriendRequests = append(snap.FriendRequests, models.FriendRequest{
			ID:         id,
			FromUserID: r.FromUserID,
			ToUserID:   r.ToUserID,
			Status:     status,
		})
	}

	seed := &Seed{Snapshot: snap}
	for _, b := range doc.Badges {
		kind := models.RuleKind(b.Rule.Kind)
		switch kind {
		case models.RuleSignUpCount, models.RulePoints, models.RuleFriendCount, models.RuleCauseCount:
		default:
			return nil, fmt.Errorf("badge %s: unknown rule kind %q", b.ID, b.Rule.Kind)
		}
		seed.Badges = append(seed.Badges, models.Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Rule:        models.BadgeRule{Kind: kind, Threshold: b.Rule.Threshold, Cause: b.Rule.Cause},
		})
	}

	if err := validate(snap); err != nil {
		return nil, err
	}

	return seed, nil
}
