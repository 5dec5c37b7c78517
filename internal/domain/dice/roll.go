// Package dice provides stateless dice-formula evaluation plus the
// bounded roll history and per-user macros.
package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

const (
	// HistoryLimit caps the retained roll history, newest first.
	HistoryLimit = 50
	// MaxCount bounds how many dice one roll may throw.
	MaxCount = 20
	// d20Label is the die whose extremes flag criticals.
	d20Label = "d20"
)

var (
	// ErrInvalidDie indicates a die label that is not dN with N > 0.
	ErrInvalidDie = apperrors.New(apperrors.CodeDiceInvalidDie, "die label must be dN with N > 0")
	// ErrCountOutOfRange indicates a dice count outside [1, MaxCount].
	ErrCountOutOfRange = apperrors.New(apperrors.CodeDiceCountOutOfRange, "dice count must be between 1 and 20")
)

// Roll is one evaluated dice formula, with the full per-die vector kept for
// critical display.
type Roll struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Formula     string    `json:"formula"`
	Die         string    `json:"dice"`
	Count       int       `json:"count"`
	Modifier    int       `json:"modifier"`
	Description string    `json:"description,omitempty"`
	Results     []int     `json:"rolls"`
	Sum         int       `json:"sum"`
	Total       int       `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
}

// Macro is a named formula a user saved for one-click re-rolls.
type Macro struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	Formula  string `json:"formula"`
	Die      string `json:"dice"`
	Count    int    `json:"count"`
	Modifier int    `json:"modifier"`
}

// ParseDie extracts the side count from a die label such as "d20".
func ParseDie(label string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if !strings.HasPrefix(trimmed, "d") {
		return 0, ErrInvalidDie
	}
	sides, err := strconv.Atoi(trimmed[1:])
	if err != nil || sides <= 0 {
		return 0, ErrInvalidDie
	}
	return sides, nil
}

// Formula renders the canonical NdS±M representation of a roll.
func Formula(count int, die string, modifier int) string {
	if modifier == 0 {
		return fmt.Sprintf("%d%s", count, die)
	}
	return fmt.Sprintf("%d%s%+d", count, die, modifier)
}

// RollWithRng evaluates a formula using the provided random source. Each
// die is an independent uniform integer in [1, sides]; Sum is the raw dice
// total and Total adds the signed modifier. Identity fields (ID, User,
// Timestamp) are left for the caller to stamp.
func RollWithRng(rng *rand.Rand, die string, count, modifier int) (Roll, error) {
	sides, err := ParseDie(die)
	if err != nil {
		return Roll{}, err
	}
	if count < 1 || count > MaxCount {
		return Roll{}, ErrCountOutOfRange
	}

	results := make([]int, count)
	sum := 0
	for i := 0; i < count; i++ {
		value := rng.Intn(sides) + 1
		results[i] = value
		sum += value
	}

	return Roll{
		Formula:  Formula(count, strings.ToLower(strings.TrimSpace(die)), modifier),
		Die:      strings.ToLower(strings.TrimSpace(die)),
		Count:    count,
		Modifier: modifier,
		Results:  results,
		Sum:      sum,
		Total:    sum + modifier,
	}, nil
}

// CriticalSuccess reports whether a d20 roll produced a natural 20.
func (r Roll) CriticalSuccess() bool {
	return r.hasFace(20)
}

// CriticalFailure reports whether a d20 roll produced a natural 1.
func (r Roll) CriticalFailure() bool {
	return r.hasFace(1)
}

func (r Roll) hasFace(face int) bool {
	if r.Die != d20Label {
		return false
	}
	for _, v := range r.Results {
		if v == face {
			return true
		}
	}
	return false
}

// Prepend inserts a roll at the head of the history and evicts the oldest
// entries beyond HistoryLimit.
func Prepend(history []Roll, r Roll) []Roll {
	history = append([]Roll{r}, history...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	return history
}
