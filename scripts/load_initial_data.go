package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lido-club-backend/internal/config"
	"lido-club-backend/internal/database"
	"lido-club-backend/internal/database/models"
	"lido-club-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PlayerData is a whitelist entry in the seed files
type PlayerData struct {
	Email   string `yaml:"email"`
	Name    string `yaml:"name"`
	IsAdmin bool   `yaml:"is_admin"`
}

// TeamData is a team with its captain and player pool
type TeamData struct {
	Name         string   `yaml:"name"`
	CaptainEmail string   `yaml:"captain_email,omitempty"`
	Players      []string `yaml:"players,omitempty"`
}

// SeedFile is the layout of every YAML file under the data directory
type SeedFile struct {
	Players []PlayerData `yaml:"players,omitempty"`
	Teams   []TeamData   `yaml:"teams,omitempty"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error { return apply(tx, seed) }); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml/.yml file under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merged.Players = append(merged.Players, file.Players...)
		merged.Teams = append(merged.Teams, file.Teams...)
		return nil
	})
	return merged, err
}

func apply(tx *gorm.DB, seed *SeedFile) error {
	captains := make(map[string]bool)
	for _, t := range seed.Teams {
		if email := models.NormalizeEmail(t.CaptainEmail); email != "" {
			captains[email] = true
		}
	}

	created := 0
	for _, p := range seed.Players {
		email := models.NormalizeEmail(p.Email)
		if email == "" {
			return fmt.Errorf("player %q has no email", p.Name)
		}
		ok, err := createAllowedUser(tx, email, p, captains[email])
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}
	log.Printf("Players: %d created, %d total", created, len(seed.Players))

	created = 0
	for _, t := range seed.Teams {
		ok, err := createTeam(tx, t)
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}
	log.Printf("Teams: %d created, %d total", created, len(seed.Teams))
	return nil
}

func createAllowedUser(tx *gorm.DB, email string, p PlayerData, isCaptain bool) (bool, error) {
	var existing models.AllowedUser
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query player %s: %w", email, err)
	}

	user := models.AllowedUser{
		Email:   email,
		Role:    service.PrimaryRoleLabel(p.IsAdmin, isCaptain),
		IsAdmin: p.IsAdmin,
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		user.Name = &name
	}
	if err := tx.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create player %s: %w", email, err)
	}
	return true, nil
}

func createTeam(tx *gorm.DB, t TeamData) (bool, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return false, fmt.Errorf("team without name")
	}

	var team models.Team
	created := false
	err := tx.Where("name = ?", name).First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		team = models.Team{Name: name}
		if email := models.NormalizeEmail(t.CaptainEmail); email != "" {
			team.CaptainEmail = &email
		}
		if err := tx.Create(&team).Error; err != nil {
			return false, fmt.Errorf("failed to create team %s: %w", name, err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to query team %s: %w", name, err)
	}

	for _, raw := range t.Players {
		email := models.NormalizeEmail(raw)
		if email == "" {
			continue
		}
		row := models.TeamPlayer{TeamID: team.ID, Email: email}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return false, fmt.Errorf("failed to add %s to team %s: %w", email, name, err)
		}
	}
	return created, nil
}
