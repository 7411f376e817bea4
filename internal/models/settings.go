package models

import (
	"github.com/avarenkov/stockpos/internal/common"
)

// Settings is the per-installation singleton: the app-lock PIN and
// whether the lock is enabled. It is created implicitly on first read
// and never deleted.
type Settings struct {
	Pin         string `json:"pin"`
	LockEnabled bool   `json:"lockEnabled"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() *Settings {
	return &Settings{Pin: common.DefaultPin, LockEnabled: false}
}

// ValidPin reports whether s is exactly PinLength digits.
func ValidPin(s string) bool {
	if len(s) != common.PinLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
