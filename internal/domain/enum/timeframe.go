package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimeFrame selects bucket granularity and lookback window of a series.
type TimeFrame string

const (
	TimeFrameDay   TimeFrame = "day"
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
	TimeFrameAll   TimeFrame = "all"
)

// TimeFrames lists every accepted value in display order.
var TimeFrames = []TimeFrame{TimeFrameDay, TimeFrameWeek, TimeFrameMonth, TimeFrameYear, TimeFrameAll}

func (t TimeFrame) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known timeframes.
func (t TimeFrame) IsValid() bool {
	switch t {
	case TimeFrameDay, TimeFrameWeek, TimeFrameMonth, TimeFrameYear, TimeFrameAll:
		return true
	}
	return false
}

// ParseTimeFrame accepts any casing ("DAY", "day").
func ParseTimeFrame(s string) (TimeFrame, error) {
	t := TimeFrame(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
	return t, nil
}

func (t *TimeFrame) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimeFrame(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
