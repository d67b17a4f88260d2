package models

// SignupMode controls how players are assigned to a match
type SignupMode string

const (
	SignupModeAvailability SignupMode = "availability"
	SignupModePreselected  SignupMode = "preselected"
	SignupModeLocked       SignupMode = "locked"
)

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusPlanned   MatchStatus = "planned"
	MatchStatusPlayed    MatchStatus = "played"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// ResponseStatus is a player's answer to an availability request
type ResponseStatus string

const (
	ResponseReady    ResponseStatus = "ready"
	ResponseNotReady ResponseStatus = "not_ready"
)

// RoleLabel is the cached display role of an allowed user
type RoleLabel string

const (
	RoleAdmin   RoleLabel = "admin"
	RoleCaptain RoleLabel = "kaptajn"
	RolePlayer  RoleLabel = "spiller"
)

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationMatchInvite   NotificationType = "match_invite"
	NotificationMatchSelected NotificationType = "match_selected"
	NotificationTeamMessage   NotificationType = "team_message"
)

// IsValid checks if the SignupMode is valid
func (m SignupMode) IsValid() bool {
	switch m {
	case SignupModeAvailability, SignupModePreselected, SignupModeLocked:
		return true
	}
	return false
}

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPlanned, MatchStatusPlayed, MatchStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the ResponseStatus is valid
func (s ResponseStatus) IsValid() bool {
	switch s {
	case ResponseReady, ResponseNotReady:
		return true
	}
	return false
}

// IsValid checks if the RoleLabel is valid
func (r RoleLabel) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCaptain, RolePlayer:
		return true
	}
	return false
}

// Rank orders labels for listings: admin first, then kaptajn, then everything else.
func (r RoleLabel) Rank() int {
	switch r {
	case RoleAdmin:
		return 0
	case RoleCaptain:
		return 1
	}
	return 2
}
