package quiz

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Question is a single quiz record. Records are immutable once loaded;
// PacketIndex is -1 for banks without packet samples.
type Question struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Prompt      string   `json:"prompt"`
	Options     []Option `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
	PacketIndex int      `json:"packet_index"`
	HexLocation string   `json:"hex_location,omitempty"`
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

func (q Question) CorrectOption() Option {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return Option{}
	}
	return q.Options[q.AnswerIndex]
}

// Synonym groups for TCP flag answers. An answer in a group matches any
// other spelling in the same group, so "ACK+SYN", "0x12" and
// "tcp-syn|tcp-ack" all grade as SYN+ACK.
var flagSynonyms = [][]string{
	{"fin", "0x01", "tcp-fin"},
	{"syn", "0x02", "tcp-syn"},
	{"rst", "0x04", "tcp-rst"},
	{"psh", "0x08", "tcp-psh"},
	{"ack", "0x10", "tcp-ack"},
	{"urg", "0x20", "tcp-urg"},
	{"fin+ack", "ack+fin", "0x11", "tcp-fin|tcp-ack"},
	{"syn+ack", "ack+syn", "0x12", "tcp-syn|tcp-ack"},
	{"rst+ack", "ack+rst", "0x14", "tcp-rst|tcp-ack"},
	{"psh+ack", "ack+psh", "0x18", "tcp-psh|tcp-ack"},
}

// AnswersEqual reports whether a user answer matches the correct answer
// text. Comparison is case-insensitive and whitespace-tolerant and accepts
// t/f shortcuts for true/false, numerically equal hex values, and TCP flag
// synonyms.
func AnswersEqual(user, correct string) bool {
	user = strings.ToLower(strings.TrimSpace(user))
	correct = strings.ToLower(strings.TrimSpace(correct))

	if user == correct {
		return true
	}

	if correct == "true" || correct == "false" {
		switch user {
		case "t":
			user = "true"
		case "f":
			user = "false"
		}
		return user == correct
	}

	if strings.HasPrefix(correct, "0x") && strings.HasPrefix(user, "0x") {
		correctValue, err := strconv.ParseUint(correct[2:], 16, 64)
		if err != nil {
			return false
		}
		userValue, err := strconv.ParseUint(user[2:], 16, 64)
		if err != nil {
			return false
		}
		return correctValue == userValue
	}

	for _, group := range flagSynonyms {
		if lo.Contains(group, correct) && lo.Contains(group, user) {
			return true
		}
	}

	return false
}

// NormalizeLetter trims and uppercases a single-letter answer, returning ""
// when the input is not exactly one character.
func NormalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 {
		return ""
	}
	return letter
}
