package gormdb

// BaseModel carries timestamps as Unix milliseconds
type BaseModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}

// Setting is the settings table row
type Setting struct {
	BaseModel
	Key   string   `gorm:"column:setting_key;size:191;not null;uniqueIndex"`
	Value LongText `gorm:"column:setting_value"`
}

func (Setting) TableName() string {
	return "settings"
}

// AllModels lists every model handled by auto-migration
func AllModels() []any {
	return []any{
		&Setting{},
	}
}
