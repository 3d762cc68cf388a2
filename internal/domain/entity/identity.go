// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is one registered person. SensitiveID always holds the cipher
// envelope of the national ID number, never the digits themselves.
type Identity struct {
	ID           uuid.UUID // Assigned at creation and never changed.
	FullName     string    // Display name.
	Email        string    // Login key, unique across all identities (case-sensitive as stored).
	PasswordHash string    // bcrypt digest of the password.
	SensitiveID  string    // "<ivHex>:<ciphertextHex>" envelope of the national ID number.
	RefreshToken string    // Last issued refresh token; empty after logout.
	CreatedAt    time.Time // Set once at creation.
	UpdatedAt    time.Time
}

// HasActiveRefreshToken reports whether a refresh token is currently stored.
func (i *Identity) HasActiveRefreshToken() bool {
	return i.RefreshToken != ""
}

// SanitizedIdentity is the only identity shape that leaves the core.
// It never carries the password hash, refresh token or the envelope.
type SanitizedIdentity struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	CreatedAt         time.Time `json:"createdAt"`
	SensitiveIDMasked string    `json:"sensitiveIdMasked,omitempty"`
}

// Sanitize strips the credential fields from the identity.
func (i *Identity) Sanitize() *SanitizedIdentity {
	if i == nil {
		return nil
	}

	return &SanitizedIdentity{
		ID:        i.ID,
		FullName:  i.FullName,
		Email:     i.Email,
		CreatedAt: i.CreatedAt,
	}
}

// Clone returns a copy that can be handed out without sharing state.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	cloned := *i

	return &cloned
}
