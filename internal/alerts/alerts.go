// Package alerts decides when spending or saving progress deserves a
// notification. Everything here is a pure function of a percentage; callers
// own message construction and the notification history.
package alerts

import "pocketledger/internal/models"

// Budget spend thresholds, in percent of the allocated amount.
const (
	InfoThreshold     = 75.0
	AlertThreshold    = 90.0
	ExceededThreshold = 100.0
)

// Classify maps a budget spend percentage to a notification severity.
//
//	p >= 100       exceeded
//	90 <= p < 100  alert
//	75 <= p < 90   info
//	p < 75         none
func Classify(percentage float64) models.Severity {
	switch {
	case percentage >= ExceededThreshold:
		return models.SeverityExceeded
	case percentage >= AlertThreshold:
		return models.SeverityAlert
	case percentage >= InfoThreshold:
		return models.SeverityInfo
	}
	return models.SeverityNone
}

// Milestones are the goal-progress percentages worth celebrating.
var Milestones = []int{25, 50, 75, 90, 100}

// MilestoneBand is how far either side of a milestone still counts as reaching it.
const MilestoneBand = 5.0

// ClassifyMilestone returns the highest milestone whose band contains
// percentage. Anything at or past 100 is the 100 milestone.
func ClassifyMilestone(percentage float64) (int, bool) {
	if percentage >= 100 {
		return 100, true
	}
	for i := len(Milestones) - 1; i >= 0; i-- {
		m := float64(Milestones[i])
		if percentage >= m-MilestoneBand && percentage <= m+MilestoneBand {
			return Milestones[i], true
		}
	}
	return 0, false
}
