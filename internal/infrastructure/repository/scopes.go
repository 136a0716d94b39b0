package repository

import (
	"strings"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"gorm.io/gorm"
)

// DateBetween filters column to the inclusive [from, to] range. Nil bounds
// are open.
func DateBetween(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// NameSearch matches items whose name contains q, ignoring case.
func NameSearch(q string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.TrimSpace(q)
		if q == "" {
			return db
		}
		return db.Where("LOWER(items.name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
}

// InGroups keeps items linked to any of groups. An empty list keeps everything.
func InGroups(groups []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(groups) == 0 {
			return db
		}
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.GroupItem{}).
			Select("item_id").
			Where("group_name IN ?", groups)
		return db.Where("items.id IN (?)", sub)
	}
}
