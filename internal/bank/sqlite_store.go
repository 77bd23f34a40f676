package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"netquiz/internal/quiz"
)

// SQLiteBank reads and writes a question bank stored in a SQLite file.
// The binaries only ever read; bankctl uses Import to build the file from
// a JSON bank.
type SQLiteBank struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteBank, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("bank path is required")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteBank{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteBank) Close() error {
	return s.db.Close()
}

func (s *SQLiteBank) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS packets (
			packet_index INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			hex_dump TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			question_id INTEGER PRIMARY KEY,
			category TEXT NOT NULL,
			prompt TEXT NOT NULL,
			options_json TEXT NOT NULL,
			answer_index INTEGER NOT NULL,
			explanation TEXT NOT NULL,
			packet_index INTEGER NOT NULL,
			hex_location TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Import writes the whole bank in one transaction, replacing any previous
// contents so re-imports stay idempotent.
func (s *SQLiteBank) Import(ctx context.Context, b *Bank) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM packets`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}

	for idx, packet := range b.Packets {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO packets (packet_index, name, description, hex_dump) VALUES (?, ?, ?, ?)`,
			idx,
			packet.Name,
			packet.Description,
			packet.HexDump,
		); err != nil {
			return err
		}
	}

	for _, question := range b.Questions {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO questions (question_id, category, prompt, options_json, answer_index, explanation, packet_index, hex_location)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			question.ID,
			question.Category,
			question.Prompt,
			string(optionsJSON),
			question.AnswerIndex,
			question.Explanation,
			question.PacketIndex,
			question.HexLocation,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteBank) ReadBank(ctx context.Context) (*Bank, error) {
	packets, err := s.readPackets(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := s.readQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &Bank{Packets: packets, Questions: questions}, nil
}

func (s *SQLiteBank) readPackets(ctx context.Context) ([]Packet, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT name, description, hex_dump FROM packets ORDER BY packet_index ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packets := make([]Packet, 0)
	for rows.Next() {
		var packet Packet
		if err := rows.Scan(&packet.Name, &packet.Description, &packet.HexDump); err != nil {
			return nil, err
		}
		packets = append(packets, packet)
	}

	return packets, rows.Err()
}

func (s *SQLiteBank) readQuestions(ctx context.Context) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, category, prompt, options_json, answer_index, explanation, packet_index, hex_location
		 FROM questions
		 ORDER BY question_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			question    quiz.Question
			optionsJSON string
		)
		if err := rows.Scan(
			&question.ID,
			&question.Category,
			&question.Prompt,
			&optionsJSON,
			&question.AnswerIndex,
			&question.Explanation,
			&question.PacketIndex,
			&question.HexLocation,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
			return nil, fmt.Errorf("%w: question %d options: %v", ErrBankCorrupt, question.ID, err)
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func loadSQLite(ctx context.Context, path string) (*Bank, error) {
	// sql.Open would create an empty database for a missing path, so check
	// first to keep the not-found error distinct from corruption.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBankNotFound, path)
		}
		return nil, err
	}

	store, err := OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBankCorrupt, path, err)
	}
	defer store.Close()

	return store.ReadBank(ctx)
}
