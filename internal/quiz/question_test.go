package quiz

import "testing"

func TestAnswersEqual(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{name: "exact", user: "FIN", correct: "FIN", want: true},
		{name: "case insensitive", user: "fin", correct: "FIN", want: true},
		{name: "whitespace tolerant", user: "  paris ", correct: "Paris", want: true},
		{name: "wrong text", user: "SYN", correct: "FIN", want: false},
		{name: "true shortcut", user: "t", correct: "True", want: true},
		{name: "false shortcut", user: "F", correct: "False", want: true},
		{name: "true vs false", user: "true", correct: "False", want: false},
		{name: "hex equal values", user: "0x012", correct: "0x12", want: true},
		{name: "hex different values", user: "0x10", correct: "0x12", want: false},
		{name: "hex garbage", user: "0xzz", correct: "0x12", want: false},
		{name: "flag order", user: "ack+syn", correct: "SYN+ACK", want: true},
		{name: "tcpdump spelling", user: "tcp-syn|tcp-ack", correct: "SYN+ACK", want: true},
		{name: "hex for flag combo", user: "0x12", correct: "SYN+ACK", want: true},
		{name: "single flag synonym", user: "tcp-fin", correct: "FIN", want: true},
		{name: "wrong flag synonym", user: "tcp-syn", correct: "FIN", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnswersEqual(tc.user, tc.correct); got != tc.want {
				t.Fatalf("AnswersEqual(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
			}
		})
	}
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim and uppercase", input: " a ", want: "A"},
		{name: "already uppercase", input: "B", want: "B"},
		{name: "empty", input: "", want: ""},
		{name: "multiple chars", input: "AB", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLetter(tc.input); got != tc.want {
				t.Fatalf("NormalizeLetter(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCorrectOption(t *testing.T) {
	question := Question{
		Options: []Option{
			{Letter: "A", Text: "One"},
			{Letter: "B", Text: "Two"},
		},
		AnswerIndex: 1,
	}
	if got := question.CorrectOption().Text; got != "Two" {
		t.Fatalf("CorrectOption().Text = %q, want %q", got, "Two")
	}

	question.AnswerIndex = 5
	if got := question.CorrectOption(); got != (Option{}) {
		t.Fatalf("out-of-range answer index should yield zero option, got %+v", got)
	}
}
