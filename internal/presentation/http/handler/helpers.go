package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

// Clock supplies the current time in the business location
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

// NewClock returns a wall clock in loc
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Location: loc, Now: time.Now}
}

// Current returns now in the business location
func (c Clock) Current() time.Time {
	return c.Now().In(c.Location)
}

// ParseDay parses a YYYY-MM-DD query value in the business location
func (c Clock) ParseDay(field, value string) (time.Time, error) {
	t, err := stats.ParseDay(strings.TrimSpace(value), c.Location)
	if err != nil {
		return time.Time{}, apperror.NewInvalidRangeError("Invalid " + field + ", expected YYYY-MM-DD")
	}
	return t, nil
}

// ParseRange parses an inclusive start/end day pair
func (c Clock) ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := c.ParseDay("start_date", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := c.ParseDay("end_date", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperror.NewInvalidRangeError("start_date must not be after end_date")
	}
	return from, to, nil
}

// GetIDParam extracts a UUID path parameter
func GetIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid ID format")
	}
	return id, nil
}

// SplitList splits a comma separated query value, dropping empty entries
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
