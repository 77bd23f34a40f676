package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/samber/lo"

	"netquiz/internal/quiz"
)

type jsonBank struct {
	Packets   []Packet     `json:"packets"`
	Questions []jsonRecord `json:"questions"`
}

// jsonRecord is the on-disk question shape: options are bare strings and
// the correct answer is given by its text.
type jsonRecord struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	PacketIndex int      `json:"packet_index"`
	HexLocation string   `json:"hex_location,omitempty"`
}

func loadJSON(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBankNotFound, path)
		}
		return nil, err
	}

	var doc jsonBank
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBankCorrupt, path, err)
	}

	questions := make([]quiz.Question, 0, len(doc.Questions))
	for _, record := range doc.Questions {
		question, err := record.build()
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return &Bank{Packets: doc.Packets, Questions: questions}, nil
}

func (r jsonRecord) build() (quiz.Question, error) {
	answerIndex := lo.IndexOf(r.Options, r.Answer)
	if answerIndex < 0 {
		return quiz.Question{}, fmt.Errorf("%w: question %d answer %q is not an option",
			ErrBankCorrupt, r.ID, r.Answer)
	}

	options := lo.Map(r.Options, func(text string, idx int) quiz.Option {
		return quiz.Option{Letter: string(rune('A' + idx)), Text: text}
	})

	return quiz.Question{
		ID:          r.ID,
		Category:    r.Category,
		Prompt:      r.Prompt,
		Options:     options,
		AnswerIndex: answerIndex,
		Explanation: r.Explanation,
		PacketIndex: r.PacketIndex,
		HexLocation: r.HexLocation,
	}, nil
}
