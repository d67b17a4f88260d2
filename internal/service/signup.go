package service

import (
	"strings"

	"lido-club-backend/internal/database/models"
)

// SignupPlan is the outcome of reconciling a match's signup mode with an admin edit
type SignupPlan struct {
	NextMode models.SignupMode `json:"next_mode"`
	Roster   []string          `json:"roster"`
	// Inferred is set when the mode was promoted from the selection rather than chosen explicitly
	Inferred bool `json:"inferred"`
}

// NormalizeSelection lower-cases and trims emails, drops blanks and keeps the first of any duplicates
func NormalizeSelection(selection []string) []string {
	out := make([]string, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))
	for _, raw := range selection {
		email := models.NormalizeEmail(raw)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// PlanSignup decides the next signup mode and the roster to store for it.
// An explicit target always wins; without one, an availability match with a
// non-empty selection is promoted to preselected. Only a preselected result
// carries a roster.
func PlanSignup(current models.SignupMode, target *models.SignupMode, selection []string) SignupPlan {
	roster := NormalizeSelection(selection)
	empty := []string{}

	if target != nil {
		switch *target {
		case models.SignupModePreselected:
			return SignupPlan{NextMode: models.SignupModePreselected, Roster: roster}
		case models.SignupModeAvailability:
			return SignupPlan{NextMode: models.SignupModeAvailability, Roster: empty}
		case models.SignupModeLocked:
			return SignupPlan{NextMode: models.SignupModeLocked, Roster: empty}
		}
	}

	switch current {
	case models.SignupModeLocked:
		return SignupPlan{NextMode: models.SignupModeLocked, Roster: empty}
	case models.SignupModePreselected:
		return SignupPlan{NextMode: models.SignupModePreselected, Roster: roster}
	default:
		if len(roster) > 0 {
			return SignupPlan{NextMode: models.SignupModePreselected, Roster: roster, Inferred: true}
		}
		return SignupPlan{NextMode: models.SignupModeAvailability, Roster: empty, Inferred: true}
	}
}

// addedEmails returns the entries of next that are not in prev
func addedEmails(prev, next []string) []string {
	had := make(map[string]struct{}, len(prev))
	for _, e := range prev {
		had[strings.ToLower(e)] = struct{}{}
	}
	var added []string
	for _, e := range next {
		if _, ok := had[e]; !ok {
			added = append(added, e)
		}
	}
	return added
}
