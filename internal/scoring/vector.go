package scoring

import (
	"fmt"
	"strings"

	"scentsurvey/internal/catalog"
)

// Entry is one category's accumulated score.
type Entry struct {
	Category catalog.Category `json:"category"`
	Score    int              `json:"score"`
}

// Vector holds exactly one entry per category, in canonical order.
type Vector []Entry

// NewVector returns a zeroed vector over the category set.
func NewVector(categories catalog.Categories) Vector {
	vector := make(Vector, len(categories))
	for i, category := range categories {
		vector[i] = Entry{Category: category}
	}
	return vector
}

// Get returns a category's score; categories outside the set score 0.
func (v Vector) Get(category catalog.Category) int {
	for _, entry := range v {
		if entry.Category == category {
			return entry.Score
		}
	}
	return 0
}

// add credits a category and reports whether it belongs to the vector.
func (v Vector) add(category catalog.Category, delta int) bool {
	for i := range v {
		if v[i].Category == category {
			v[i].Score += delta
			return true
		}
	}
	return false
}

// Top returns the first entry holding the strictly greatest score.
func (v Vector) Top() (Entry, bool) {
	if len(v) == 0 {
		return Entry{}, false
	}
	best := v[0]
	for _, entry := range v[1:] {
		if entry.Score > best.Score {
			best = entry
		}
	}
	return best, true
}

// String renders the vector as "시트러스 3점, 그린 0점, ...".
func (v Vector) String() string {
	parts := make([]string, 0, len(v))
	for _, entry := range v {
		parts = append(parts, fmt.Sprintf("%s %d점", entry.Category, entry.Score))
	}
	return strings.Join(parts, ", ")
}
