package repository

import (
	"fmt"
	"time"

	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"gorm.io/gorm"
)

const dialectMySQL = "mysql"

// bucketExpr renders column truncated to grain as text. The text parses with
// bucketLayout in the session time zone.
func bucketExpr(db *gorm.DB, grain domainRepo.Grain, column string) (string, error) {
	mysql := db.Dialector.Name() == dialectMySQL
	switch grain {
	case domainRepo.GrainHour:
		if mysql {
			return "DATE_FORMAT(" + column + ", '%Y-%m-%d %H:00:00')", nil
		}
		return "to_char(" + column + ", 'YYYY-MM-DD HH24:00:00')", nil
	case domainRepo.GrainDay:
		if mysql {
			return "DATE_FORMAT(" + column + ", '%Y-%m-%d')", nil
		}
		return "to_char(" + column + ", 'YYYY-MM-DD')", nil
	case domainRepo.GrainMonth:
		if mysql {
			return "DATE_FORMAT(" + column + ", '%Y-%m')", nil
		}
		return "to_char(" + column + ", 'YYYY-MM')", nil
	}
	return "", fmt.Errorf("unknown grain %q", grain)
}

func bucketLayout(grain domainRepo.Grain) string {
	switch grain {
	case domainRepo.GrainHour:
		return "2006-01-02 15:04:05"
	case domainRepo.GrainMonth:
		return "2006-01"
	default:
		return "2006-01-02"
	}
}

// parseBucket reads a bucket key in loc. Month keys become the first day of
// the month.
func parseBucket(grain domainRepo.Grain, key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(bucketLayout(grain), key, loc)
}
