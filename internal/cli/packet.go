package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"netquiz/internal/bank"
	"netquiz/internal/hexdump"
	"netquiz/internal/quiz"
)

// PacketOptions configures a packet analysis quiz run.
type PacketOptions struct {
	Count    int
	StartID  int
	BankPath string
	Rand     *rand.Rand
	Log      logrus.FieldLogger
}

// RunPacket drives the packet analysis quiz: load the bank, select the
// questions, then present/grade each one with its hex dump.
func RunPacket(ctx context.Context, in io.Reader, out io.Writer, opts PacketOptions) error {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	b, err := bank.Load(ctx, opts.BankPath)
	if err != nil {
		return err
	}

	selected, err := quiz.Select(b.Questions, opts.Count, opts.StartID, opts.Rand)
	if err != nil {
		return fmt.Errorf("start question %d: %w", opts.StartID, err)
	}

	session := quiz.NewSession(selected)
	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"bank":       opts.BankPath,
		"packets":    len(b.Packets),
		"questions":  len(selected),
	}).Debug("packet quiz session started")

	fmt.Fprintln(out, "\n===== Packet Analysis Quiz =====")
	fmt.Fprintf(out, "Number of questions: %d\n", len(selected))
	fmt.Fprintln(out, "================================")
	if opts.StartID != 0 {
		fmt.Fprintf(out, "Starting with question ID: %d\n", opts.StartID)
	}

	reader := bufio.NewReader(in)
	for idx, question := range selected {
		packet := b.Packets[question.PacketIndex]

		fmt.Fprintf(out, "\nQuestion %d/%d [ID: %d]:\n", idx+1, len(selected), question.ID)
		fmt.Fprintln(out, question.Prompt)
		printPacket(out, packet, question.HexLocation, false)
		fmt.Fprintln(out)
		printOptions(out, question.Options)

		answerText, ok := readAnswer(reader, out, question.Options)
		if !ok {
			break
		}

		correct := session.Grade(question, answerText)
		printVerdict(out, correct, question.CorrectOption().Text)

		// Re-render the dump with the relevant bytes highlighted.
		printPacket(out, packet, question.HexLocation, true)
		fmt.Fprintf(out, "Explanation: %s\n", question.Explanation)
		if question.HexLocation != "" {
			fmt.Fprintf(out, "Relevant hex bytes: %s\n", question.HexLocation)
		}

		waitForEnter(reader, out)
	}

	printReport(out, session)
	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"score":      session.Correct,
		"total":      session.Total,
	}).Debug("packet quiz session finished")
	return nil
}

func printPacket(out io.Writer, packet bank.Packet, hexLocation string, highlight bool) {
	fmt.Fprintf(out, "\nPacket: %s\n", packet.Name)
	fmt.Fprintln(out, "Hex Dump:")

	if highlight {
		if offset, numBytes, ok := hexdump.ParseLocation(hexLocation); ok {
			fmt.Fprintln(out, hexdump.FormatHighlighted(packet.HexDump, offset, numBytes))
			return
		}
	}
	fmt.Fprintln(out, hexdump.Format(packet.HexDump))
}
