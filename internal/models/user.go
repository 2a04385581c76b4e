package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user. All other resources belong to exactly
// one user.
//
// The display settings (currency, language, theme) used to live in an
// ambient configuration store in early versions. They are persisted here and
// handed to callers explicitly, formatting itself is a presentation concern.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Name         string
	Currency     string `gorm:"default:$"`
	Language     string `gorm:"default:es"`
	Theme        string `gorm:"default:light"`
	EmailAlerts  bool
	AlertEmail   string
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	u.AlertEmail = strings.ToLower(strings.TrimSpace(u.AlertEmail))

	return nil
}
