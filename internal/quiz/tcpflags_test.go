package quiz

import "testing"

func TestTCPFlagsBankIntegrity(t *testing.T) {
	questions := TCPFlagsQuestions()
	if len(questions) != 50 {
		t.Fatalf("expected 50 questions, got %d", len(questions))
	}

	seen := make(map[int]bool, len(questions))
	for _, question := range questions {
		if seen[question.ID] {
			t.Fatalf("duplicate question id %d", question.ID)
		}
		seen[question.ID] = true

		if question.Prompt == "" {
			t.Fatalf("question %d has an empty prompt", question.ID)
		}
		if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Options) {
			t.Fatalf("question %d answer index %d out of range", question.ID, question.AnswerIndex)
		}
		if question.PacketIndex != -1 {
			t.Fatalf("question %d should not reference a packet", question.ID)
		}
		for idx, option := range question.Options {
			if want := string(rune('A' + idx)); option.Letter != want {
				t.Fatalf("question %d option %d letter = %q, want %q",
					question.ID, idx, option.Letter, want)
			}
		}
	}
}

func TestTCPFlagsBankSpotChecks(t *testing.T) {
	questions := TCPFlagsQuestions()

	byID := make(map[int]Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	if got := byID[1].CorrectOption().Text; got != "FIN" {
		t.Fatalf("question 1 answer = %q, want FIN", got)
	}
	if got := byID[10].CorrectOption().Text; got != "0x12" {
		t.Fatalf("question 10 answer = %q, want 0x12", got)
	}
	if got := byID[25].CorrectOption().Text; got != "tcp[13] = 0x10" {
		t.Fatalf("question 25 answer = %q", got)
	}
}
