package gormdb

import (
	"errors"
	"time"

	"github.com/proinvestix/desktop/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *DB
}

func NewSettingRepository(db *DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(key string) (string, error) {
	if err := domain.ValidateSettingKey(key); err != nil {
		return "", err
	}
	var model Setting
	if err := r.db.gorm.Where("setting_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return model.Value.String(), nil
}

func (r *SettingRepository) Set(key, value string) error {
	if err := domain.ValidateSettingKey(key); err != nil {
		return err
	}
	now := toTimestamp(time.Now())
	model := &Setting{
		BaseModel: BaseModel{CreatedAt: now, UpdatedAt: now},
		Key:       key,
		Value:     LongText(value),
	}
	return r.db.gorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(model).Error
}

func (r *SettingRepository) GetAll() ([]*domain.Setting, error) {
	var models []Setting
	if err := r.db.gorm.Order("setting_key").Find(&models).Error; err != nil {
		return nil, err
	}

	settings := make([]*domain.Setting, len(models))
	for i := range models {
		settings[i] = r.toDomain(&models[i])
	}
	return settings, nil
}

// Delete returns domain.ErrNotFound when no row matched.
func (r *SettingRepository) Delete(key string) error {
	if err := domain.ValidateSettingKey(key); err != nil {
		return err
	}
	result := r.db.gorm.Where("setting_key = ?", key).Delete(&Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SettingRepository) toDomain(m *Setting) *domain.Setting {
	return &domain.Setting{
		Key:       m.Key,
		Value:     m.Value.String(),
		CreatedAt: fromTimestamp(m.CreatedAt),
		UpdatedAt: fromTimestamp(m.UpdatedAt),
	}
}
