package domain

import "time"

// Viewer identifies who is watching. UserID comes from the authenticated
// token, DeviceID scopes the view counter and falls back to UserID when the
// client does not send one.
type Viewer struct {
	UserID   string
	DeviceID string
}

// Profile is the viewer's account record owned by the profile provider.
type Profile struct {
	UserID      string
	Username    string
	DisplayName string
	Email       string
	Credits     int64
	CountryCode string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Greeting returns the name used to welcome the viewer.
func (p *Profile) Greeting() string {
	switch {
	case p.DisplayName != "":
		return p.DisplayName
	case p.Username != "":
		return p.Username
	default:
		return p.Email
	}
}

// Role is a tag checked against the profile provider.
type Role string

const RoleAdmin Role = "admin"

// RoleCheckState is the outcome of an asynchronous role check.
type RoleCheckState string

const (
	RoleCheckPending RoleCheckState = "pending"
	RoleCheckGranted RoleCheckState = "granted"
	RoleCheckDenied  RoleCheckState = "denied"
)
