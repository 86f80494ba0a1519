// Package auth gates the tournament director override edits (swap,
// replace, force color) behind a bcrypt-checked credential, the way the
// teacher's administrator login gated the whole desktop app. Result
// entry, including corrections, is not gated.
package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Director is a tournament director account. Unlike the teacher's
// single fixed Administrator row, a section can be run by any number
// of directors.
type Director struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	Username     string    `gorm:"unique;not null"`
	PasswordHash string    `gorm:"not null"`
}

// Service checks director credentials against a shared database
// connection (typically the same one store.GormStore opened).
type Service struct {
	db *gorm.DB
}

// New wraps db for credential checks. Migrate must be called once
// before first use (cmd/swisstd does this in "director create").
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Migrate ensures the Director table exists.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&Director{})
}

// CreateDirector registers a new director with a bcrypt-hashed
// password.
func (s *Service) CreateDirector(username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password for %q: %w", username, err)
	}
	director := Director{ID: uuid.New(), Username: username, PasswordHash: string(hashed)}
	if err := s.db.Create(&director).Error; err != nil {
		return fmt.Errorf("creating director %q: %w", username, err)
	}
	return nil
}

// CheckCredentials reports whether username/password match a
// registered director.
func (s *Service) CheckCredentials(username, password string) (bool, error) {
	log.Printf("auth: CheckCredentials called: username=%q (password length=%d)", username, len(password))

	var director Director
	result := s.db.Where("username = ?", username).First(&director)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Printf("auth: director not found: %q", username)
			return false, nil
		}
		log.Printf("auth: database query error for director=%q: %v", username, result.Error)
		return false, fmt.Errorf("database query error: %w", result.Error)
	}

	stored := director.PasswordHash
	hashed := strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
	log.Printf("auth: director=%q found; stored hash len=%d; hashed=%t", username, len(stored), hashed)

	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		log.Printf("auth: bcrypt compare failed for director=%q: %v", username, err)
		return false, nil
	}

	log.Printf("auth: bcrypt compare succeeded for director=%q", username)
	return true, nil
}
