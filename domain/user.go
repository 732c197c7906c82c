package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

const DefaultPoints = 6000

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"displayName,omitempty"`
	Role         Role         `json:"role"`
	Points       int          `json:"points"`
	ReupQuota    ReupQuota    `json:"reupQuota"`
	ReupSettings ReupSettings `json:"reupSettings"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ReupQuota is the fixed window counter of manual reups.
type ReupQuota struct {
	WindowStart *time.Time `json:"windowStart,omitempty"`
	Count       int        `json:"count"`
}

type ReupMode string

const (
	ReupModeNormal   ReupMode = "normal"
	ReupModeSpecific ReupMode = "specific"
	ReupModeOneUser  ReupMode = "one-user"
)

func (m ReupMode) Valid() bool {
	switch m {
	case ReupModeNormal, ReupModeSpecific, ReupModeOneUser:
		return true
	default:
		return false
	}
}

type ReupSettings struct {
	Mode            ReupMode `json:"mode"`
	SpecificPostIDs []string `json:"specificPostIds"`
}

// Effective returns the settings with defaults applied to a zero value.
func (s ReupSettings) Effective() ReupSettings {
	if s.Mode == "" {
		s.Mode = ReupModeNormal
	}
	if s.SpecificPostIDs == nil {
		s.SpecificPostIDs = []string{}
	}
	return s
}
