package analyzer

import "bigocheck/internal/models"

// Candidate confidences per signal source. Advisory only; dominance ranks
// classes, never confidences.
const (
	confLoops     = 0.8
	confRecursion = 0.75
	confSort      = 0.7
	confSortLoop  = 0.7
	confNoSignal  = 0.25
)

// Resolve picks the dominant complexity from an ordered candidate pool: the
// highest class rank wins, ties keep the earliest-contributed candidate. An
// empty pool degrades to a constant-leaning guess at the lowest confidence
// rather than an absence.
func Resolve(pool []models.Complexity) models.Complexity {
	if len(pool) == 0 {
		return models.Complexity{Class: models.ClassConstant, Confidence: confNoSignal}
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if c.Class > best.Class {
			best = c
		}
	}
	return best
}
