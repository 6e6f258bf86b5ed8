package ranker

// TimeBucket is a coarse part of the day used for the time-of-day bonus.
type TimeBucket string

// Time buckets by local wall-clock hour.
const (
	Morning   TimeBucket = "morning"   // 05:00-11:59
	Afternoon TimeBucket = "afternoon" // 12:00-16:59
	Evening   TimeBucket = "evening"   // 17:00-20:59
	Night     TimeBucket = "night"     // everything else
)

// BucketOf maps an hour of day to its bucket. Out-of-range hours, including
// the -1 "no timestamp" sentinel, map to Night; callers that must not count
// untimestamped entries check for a timestamp first.
func BucketOf(hour int) TimeBucket {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}
