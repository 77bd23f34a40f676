package quiz

import (
	"errors"
	"math/rand"
	"testing"
)

func poolOf(n int) []Question {
	pool := make([]Question, 0, n)
	for id := 1; id <= n; id++ {
		pool = append(pool, Question{
			ID:          id,
			Prompt:      "question",
			Options:     []Option{{Letter: "A", Text: "x"}, {Letter: "B", Text: "y"}},
			PacketIndex: -1,
		})
	}
	return pool
}

func assertDistinct(t *testing.T, questions []Question) {
	t.Helper()
	seen := make(map[int]bool, len(questions))
	for _, question := range questions {
		if seen[question.ID] {
			t.Fatalf("question %d selected twice", question.ID)
		}
		seen[question.ID] = true
	}
}

func TestSelectReturnsExactCount(t *testing.T) {
	pool := poolOf(10)
	for count := 1; count <= 10; count++ {
		selected, err := Select(pool, count, 0, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("Select(count=%d) failed: %v", count, err)
		}
		if len(selected) != count {
			t.Fatalf("Select(count=%d) returned %d questions", count, len(selected))
		}
		assertDistinct(t, selected)
	}
}

func TestSelectClampsToPoolSize(t *testing.T) {
	selected, err := Select(poolOf(4), 100, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(selected) != 4 {
		t.Fatalf("expected clamp to 4, got %d", len(selected))
	}
	assertDistinct(t, selected)
}

func TestSelectStartIDFirst(t *testing.T) {
	selected, err := Select(poolOf(10), 5, 7, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(selected) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(selected))
	}
	if selected[0].ID != 7 {
		t.Fatalf("expected question 7 first, got %d", selected[0].ID)
	}
	assertDistinct(t, selected)
}

func TestSelectStartIDMissing(t *testing.T) {
	_, err := Select(poolOf(10), 5, 99, rand.New(rand.NewSource(3)))
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestSelectDeterministicWithSeed(t *testing.T) {
	first, err := Select(poolOf(20), 10, 0, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	second, err := Select(poolOf(20), 10, 0, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	for idx := range first {
		if first[idx].ID != second[idx].ID {
			t.Fatalf("same seed produced different orders at %d: %d vs %d",
				idx, first[idx].ID, second[idx].ID)
		}
	}
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	pool := poolOf(10)
	if _, err := Select(pool, 10, 0, rand.New(rand.NewSource(5))); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	for idx, question := range pool {
		if question.ID != idx+1 {
			t.Fatalf("pool order changed at %d: got id %d", idx, question.ID)
		}
	}
}
