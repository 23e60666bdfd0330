package progress

import "math"

// hoursPerLevel is the study time that advances one level.
const hoursPerLevel = 10

// LevelForHours maps cumulative study hours to a level. Every 10 hours
// advances one level; level is always at least 1.
func LevelForHours(totalHours float64) int {
	if totalHours < 0 {
		return 1
	}
	return int(totalHours/hoursPerLevel) + 1
}

// ExperienceForHours returns progress toward the next level as a
// percentage in [0, 100).
func ExperienceForHours(totalHours float64) int {
	if totalHours < 0 {
		return 0
	}
	inLevel := math.Mod(totalHours, hoursPerLevel)
	return int(math.Round(inLevel / hoursPerLevel * 100))
}
