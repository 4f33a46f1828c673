package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// tokenKey is the well-known credential name, the analog of the
// localStorage key the browser client used.
const tokenKey = "token"

type credential struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// GormStore persists the credential in a small sqlite database so the
// session survives process restarts, the way an origin-scoped
// localStorage entry survives page reloads.
type GormStore struct {
	db *gorm.DB
}

func Open(path string) (*GormStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	// gorm's default logger writes to stdout and would interleave with
	// rendered pages.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.AutoMigrate(&credential{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Login(token string) error {
	cred := credential{Name: tokenKey, Value: token}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&cred).Error
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *GormStore) Current() (string, bool) {
	var cred credential
	// An unreadable store behaves like an absent token; the backend
	// rejects the unauthenticated call.
	if err := s.db.First(&cred, "name = ?", tokenKey).Error; err != nil {
		return "", false
	}
	return cred.Value, true
}

func (s *GormStore) Logout() error {
	if err := s.db.Delete(&credential{}, "name = ?", tokenKey).Error; err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
