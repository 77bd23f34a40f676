package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"netquiz/internal/quiz"
)

// TCPFlagsOptions configures a TCP flags quiz run.
type TCPFlagsOptions struct {
	Count int
	Rand  *rand.Rand
	Log   logrus.FieldLogger
}

// RunTCPFlags drives the TCP flags quiz over the built-in question bank.
func RunTCPFlags(ctx context.Context, in io.Reader, out io.Writer, opts TCPFlagsOptions) error {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	selected, err := quiz.Select(quiz.TCPFlagsQuestions(), opts.Count, 0, opts.Rand)
	if err != nil {
		return err
	}

	session := quiz.NewSession(selected)
	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"questions":  len(selected),
	}).Debug("tcp flags quiz session started")

	fmt.Fprintln(out, "\n===== TCP Flags Quiz =====")
	fmt.Fprintf(out, "Number of questions: %d\n", len(selected))
	fmt.Fprintln(out, "===========================")

	reader := bufio.NewReader(in)
	for idx, question := range selected {
		fmt.Fprintf(out, "\nQuestion %d/%d [ID: %d]:\n", idx+1, len(selected), question.ID)
		fmt.Fprintln(out, question.Prompt)
		printOptions(out, question.Options)

		answerText, ok := readAnswer(reader, out, question.Options)
		if !ok {
			break
		}

		correct := session.Grade(question, answerText)
		printVerdict(out, correct, question.CorrectOption().Text)
		fmt.Fprintf(out, "Explanation: %s\n", question.Explanation)

		waitForEnter(reader, out)
	}

	printReport(out, session)
	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"score":      session.Correct,
		"total":      session.Total,
	}).Debug("tcp flags quiz session finished")
	return nil
}
