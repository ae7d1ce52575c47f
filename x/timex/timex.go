package timex

import "time"

// YearOf returns the UTC calendar year of an epoch-seconds value.
func YearOf(epochSeconds int64) int {
	return time.Unix(epochSeconds, 0).UTC().Year()
}

// Stamp renders epoch seconds as "DD/MM/YYYY HH:MM" (UTC). Collaborators
// apply any zone offset to the epoch value itself, so formatting stays
// zone-free and identical across builds.
func Stamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format("02/01/2006 15:04")
}

// DateStamp renders epoch seconds as "DD_MM_YYYY" (UTC), the remote
// filename prefix.
func DateStamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format("02_01_2006")
}
