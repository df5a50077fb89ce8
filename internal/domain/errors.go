package domain

import (
	"errors"
	"strings"
)

// ValidateSettingKey rejects empty and whitespace-only keys.
func ValidateSettingKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidKey = errors.New("setting key must not be empty")
)
