package repository

import "github.com/proinvestix/desktop/internal/domain"

// SettingRepository stores frontend settings as key/value pairs.
type SettingRepository interface {
	// Get returns domain.ErrNotFound when the key is absent
	Get(key string) (string, error)
	// Set inserts or overwrites the value for key
	Set(key, value string) error
	GetAll() ([]*domain.Setting, error)
	Delete(key string) error
}
