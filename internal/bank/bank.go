// Package bank loads the packet quiz question bank from a local file. Two
// backends are supported, picked by file extension: a JSON document (the
// default packet_samples.json layout) and a SQLite database produced by
// bankctl.
package bank

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"netquiz/internal/quiz"
)

var (
	ErrBankNotFound = errors.New("question bank not found")
	ErrBankCorrupt  = errors.New("question bank is corrupt")
)

// Packet is one illustrative sample referenced by questions through
// Question.PacketIndex.
type Packet struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HexDump     string `json:"hex_dump"`
}

type Bank struct {
	Packets   []Packet
	Questions []quiz.Question
}

// Load reads the bank at path, choosing the backend by extension.
func Load(ctx context.Context, path string) (*Bank, error) {
	var (
		b   *Bank
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		b, err = loadSQLite(ctx, path)
	default:
		b, err = loadJSON(path)
	}
	if err != nil {
		return nil, err
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bank) validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrBankCorrupt)
	}

	seen := make(map[int]bool, len(b.Questions))
	for _, question := range b.Questions {
		if seen[question.ID] {
			return fmt.Errorf("%w: duplicate question id %d", ErrBankCorrupt, question.ID)
		}
		seen[question.ID] = true

		if len(question.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrBankCorrupt, question.ID)
		}
		if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Options) {
			return fmt.Errorf("%w: question %d answer index out of range", ErrBankCorrupt, question.ID)
		}
		if question.PacketIndex < 0 || question.PacketIndex >= len(b.Packets) {
			return fmt.Errorf("%w: question %d references unknown packet %d",
				ErrBankCorrupt, question.ID, question.PacketIndex)
		}
	}
	return nil
}
