package quiz

import (
	"errors"
	"math/rand"

	"github.com/samber/lo"
)

var ErrQuestionNotFound = errors.New("question not found")

// Select picks count questions from all without replacement. When startID
// is non-zero the question with that ID is placed first and the remaining
// slots are filled from the rest of the pool; a missing startID is
// ErrQuestionNotFound. count is clamped to the pool size. The caller
// supplies the random source so selection can be made deterministic.
func Select(all []Question, count int, startID int, rng *rand.Rand) ([]Question, error) {
	if count > len(all) {
		count = len(all)
	}
	if count < 0 {
		count = 0
	}

	selected := make([]Question, 0, count)
	pool := all

	if startID != 0 {
		start, found := lo.Find(all, func(q Question) bool { return q.ID == startID })
		if !found {
			return nil, ErrQuestionNotFound
		}
		selected = append(selected, start)
		pool = lo.Filter(all, func(q Question, _ int) bool { return q.ID != startID })
	}

	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	remaining := count - len(selected)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > len(shuffled) {
		remaining = len(shuffled)
	}
	return append(selected, shuffled[:remaining]...), nil
}
