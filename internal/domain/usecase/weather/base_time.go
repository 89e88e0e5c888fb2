package weather

import (
	"fmt"
	"strconv"
	"time"

	"kma-forecast/pkg/util/numberutils"
)

const (
	BaseTimePolicyFixed  = "fixed"
	BaseTimePolicyLatest = "latest"

	DefaultFixedBaseTime = "0500"

	baseDateLayout = "20060102"
	publishDelay   = 10 * time.Minute
)

// Korea has no daylight saving, so a fixed offset is exact.
var kst = time.FixedZone("KST", 9*60*60)

// issuanceHours are the hours the village forecast is issued at.
var issuanceHours = []int{2, 5, 8, 11, 14, 17, 20, 23}

// BaseTimePolicy picks the base_date and base_time of a forecast request.
type BaseTimePolicy interface {
	BaseDateTime(now time.Time) (baseDate string, baseTime string)
}

type fixedBaseTime struct {
	baseTime string
}

// BaseDateTime returns today's date in KST with the configured time.
func (p fixedBaseTime) BaseDateTime(now time.Time) (string, string) {
	return now.In(kst).Format(baseDateLayout), p.baseTime
}

type latestBaseTime struct{}

// BaseDateTime returns the latest issuance that has been published for at least ten
// minutes. Before 02:10 that is the previous day's 2300 run.
func (latestBaseTime) BaseDateTime(now time.Time) (string, string) {
	published := now.In(kst).Add(-publishDelay)

	for i := len(issuanceHours) - 1; i >= 0; i-- {
		if published.Hour() >= issuanceHours[i] {
			return published.Format(baseDateLayout), fmt.Sprintf("%02d00", issuanceHours[i])
		}
	}

	previousDay := published.AddDate(0, 0, -1)
	return previousDay.Format(baseDateLayout), fmt.Sprintf("%02d00", issuanceHours[len(issuanceHours)-1])
}

// NewBaseTimePolicy builds the policy named by name. fixedTime is only used by the
// fixed policy and defaults to DefaultFixedBaseTime.
func NewBaseTimePolicy(name, fixedTime string) (BaseTimePolicy, error) {
	switch name {
	case "", BaseTimePolicyFixed:
		if fixedTime == "" {
			fixedTime = DefaultFixedBaseTime
		}
		if !isBaseTime(fixedTime) {
			return nil, fmt.Errorf("invalid fixed base time %q, expected HHmm", fixedTime)
		}
		return fixedBaseTime{baseTime: fixedTime}, nil
	case BaseTimePolicyLatest:
		return latestBaseTime{}, nil
	default:
		return nil, fmt.Errorf("unknown base time policy %q", name)
	}
}

func isBaseTime(s string) bool {
	if len(s) != 4 || !numberutils.IsDigits(s) {
		return false
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[2:])
	return numberutils.IsIntInRange(hour, 0, 23) && numberutils.IsIntInRange(minute, 0, 59)
}
