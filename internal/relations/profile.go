package relations

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/auth"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// Registration is the input of RegisterUser.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterUser validates reg and appends a new user.
//
// The e-mail must belong to domain and must not already be taken
// (case-insensitively). The new ID is max(existing IDs)+1 and the
// password is stored as a bcrypt hash.
func RegisterUser(reg Registration, users []models.User, domain string) (models.User, []models.User, error) {
	first, last := strings.TrimSpace(reg.FirstName), strings.TrimSpace(reg.LastName)
	if first == "" || last == "" {
		return models.User{}, nil, ErrInvalidName
	}
	if err := auth.ValidateEmail(reg.Email, domain); err != nil {
		return models.User{}, nil, err
	}
	email := strings.TrimSpace(reg.Email)
	for _, u := range users {
		if auth.NormalizeEmail(u.Email) == auth.NormalizeEmail(email) {
			return models.User{}, nil, ErrEmailExists
		}
	}

	// Only the hash is stored
	hash, err := auth.HashCredential(reg.Password)
	if err != nil {
		return models.User{}, nil, err
	}

	user := models.User{
		ID:           nextID(users, func(u models.User) int { return u.ID }),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
		Interests:    []string{},
		FriendIDs:    []int{},
		GroupIDs:     []int{},
	}
	return user, append(slices.Clone(users), user), nil
}

// Authenticate returns the user whose e-mail matches (case-insensitively)
// and whose stored hash matches password. Accounts without a hash cannot
// sign in. Every failure is ErrInvalidCredentials so callers cannot tell
// unknown addresses from wrong passwords.
func Authenticate(email, password string, users []models.User) (models.User, error) {
	target := auth.NormalizeEmail(email)
	for _, u := range users {
		if auth.NormalizeEmail(u.Email) != target {
			continue
		}
		// Fixture accounts have no hash
		if u.PasswordHash == "" || !auth.CheckCredential(u.PasswordHash, password) {
			return models.User{}, ErrInvalidCredentials
		}
		return u.Clone(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// UpdateInterests replaces the user's interests. Every tag must be one of
// models.AllCauses; duplicates are dropped.
func UpdateInterests(userID int, interests []string, users []models.User) ([]models.User, error) {
	var cleaned []string
	for _, tag := range interests {
		if !models.ValidCause(tag) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInterest, tag)
		}
		if !slices.Contains(cleaned, tag) {
			cleaned = append(cleaned, tag)
		}
	}

	return updateUser(users, userID, func(u *models.User) {
		u.Interests = cleaned
	})
}

// UpdateProfilePicture sets the user's avatar reference.
func UpdateProfilePicture(userID int, pictureURL string, users []models.User) ([]models.User, error) {
	return updateUser(users, userID, func(u *models.User) {
		u.ProfilePictureURL = pictureURL
	})
}
