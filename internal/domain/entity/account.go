// Package entity contains the core business objects of vitae.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUsernameLength is the longest accepted username, in bytes.
const MaxUsernameLength = 64

// Usernames appear as a single path segment of public profile URLs.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// IsValidUsername reports whether username may be registered.
func IsValidUsername(username string) bool {
	return len(username) <= MaxUsernameLength &&
		usernamePattern.MatchString(username) &&
		!strings.Contains(username, "..")
}

// User is a registered account together with its profile fields.
type User struct {
	ID           uuid.UUID // Primary key, generated as a UUIDv7.
	Username     string    // Login identifier and token subject; unique.
	PasswordHash string    // Self-describing credential string; never the plaintext.
	Phone        string
	Bio          string
	Photo        string // Storage key of the profile photo, empty when none was uploaded.
	Resume       string // Storage key of the resume, empty when none was uploaded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile is the subset of a User that anyone may read.
type PublicProfile struct {
	Username string
	Bio      string
	Photo    string
	Resume   string
}

// Public strips private fields (phone, credential) from the user.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		Username: u.Username,
		Bio:      u.Bio,
		Photo:    u.Photo,
		Resume:   u.Resume,
	}
}

// FileKey returns the storage key currently attached to the given upload slot.
func (u *User) FileKey(kind FileKind) string {
	switch kind {
	case FileKindPhoto:
		return u.Photo
	case FileKindResume:
		return u.Resume
	default:
		return ""
	}
}

// SetFileKey attaches a storage key to the given upload slot.
func (u *User) SetFileKey(kind FileKind, key string) {
	switch kind {
	case FileKindPhoto:
		u.Photo = key
	case FileKindResume:
		u.Resume = key
	}
}
