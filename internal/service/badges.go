package service

import (
	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

// Badges are the role indicators shown next to a user
type Badges struct {
	IsAdmin   bool `json:"is_admin"`
	IsCaptain bool `json:"is_captain"`
	IsPlayer  bool `json:"is_player"`
}

// BadgeSnapshot is the captaincy and roster state badges are computed from
type BadgeSnapshot struct {
	Captains map[uuid.UUID]string
	Players  map[uuid.UUID][]string
}

// NewBadgeSnapshot builds a snapshot from teams and memberships
func NewBadgeSnapshot(teams []models.Team, players []models.TeamPlayer) BadgeSnapshot {
	snap := BadgeSnapshot{
		Captains: make(map[uuid.UUID]string, len(teams)),
		Players:  make(map[uuid.UUID][]string),
	}
	for _, t := range teams {
		if t.CaptainEmail != nil && *t.CaptainEmail != "" {
			snap.Captains[t.ID] = models.NormalizeEmail(*t.CaptainEmail)
		}
	}
	for _, p := range players {
		snap.Players[p.TeamID] = append(snap.Players[p.TeamID], models.NormalizeEmail(p.Email))
	}
	return snap
}

// ResolveBadges computes badges for email. Without a scope, captain and player mean
// "of any team". With a scope, captain means captain of that team and player is
// always true since the user is rendered inside that team's roster.
func ResolveBadges(email string, scope *uuid.UUID, snap BadgeSnapshot, isAdmin bool) Badges {
	email = models.NormalizeEmail(email)
	b := Badges{IsAdmin: isAdmin}

	if scope != nil {
		b.IsCaptain = email != "" && snap.Captains[*scope] == email
		b.IsPlayer = true
		return b
	}

	for _, captain := range snap.Captains {
		if captain == email {
			b.IsCaptain = true
			break
		}
	}
	for _, roster := range snap.Players {
		for _, p := range roster {
			if p == email {
				b.IsPlayer = true
				break
			}
		}
		if b.IsPlayer {
			break
		}
	}
	return b
}

// DeriveRoleLabel returns the display label for a user: admin is sticky,
// otherwise kaptajn when captain of any team, else spiller.
func DeriveRoleLabel(current models.RoleLabel, captainOfAny bool) models.RoleLabel {
	if current == models.RoleAdmin {
		return models.RoleAdmin
	}
	if captainOfAny {
		return models.RoleCaptain
	}
	return models.RolePlayer
}

// PrimaryRoleLabel is the label given to a newly created player
func PrimaryRoleLabel(isAdmin, isCaptain bool) models.RoleLabel {
	switch {
	case isAdmin:
		return models.RoleAdmin
	case isCaptain:
		return models.RoleCaptain
	default:
		return models.RolePlayer
	}
}
