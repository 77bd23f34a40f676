package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"netquiz/internal/quiz"
)

// readAnswer reads one answer for a question. A single letter A-D selects
// the matching option; letters past the last option re-prompt. Anything
// longer (or single letters outside A-D, such as t/f shortcuts) is returned
// verbatim for free-text grading. Returns ok=false on EOF.
func readAnswer(reader *bufio.Reader, out io.Writer, options []quiz.Option) (string, bool) {
	maxLetter := byte('A' + len(options) - 1)

	for {
		fmt.Fprint(out, "\nYour answer: ")

		line, err := reader.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" {
			if err != nil {
				return "", false
			}
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
			continue
		}

		if letter := quiz.NormalizeLetter(answer); letter != "" && letter[0] >= 'A' && letter[0] <= 'D' {
			if letter[0] > maxLetter {
				if err != nil {
					return "", false
				}
				fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
				continue
			}
			return options[letter[0]-'A'].Text, true
		}

		return answer, true
	}
}

func waitForEnter(reader *bufio.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to continue...")
	_, _ = reader.ReadString('\n')
	fmt.Fprintln(out)
}

func printOptions(out io.Writer, options []quiz.Option) {
	for _, option := range options {
		fmt.Fprintf(out, "  %s) %s\n", option.Letter, option.Text)
	}
}

func printVerdict(out io.Writer, correct bool, correctText string) {
	if correct {
		fmt.Fprintln(out, "\n✓ Correct!")
	} else {
		fmt.Fprintf(out, "\n✗ Incorrect. The correct answer is: %s\n", correctText)
	}
}

func printReport(out io.Writer, session *quiz.Session) {
	fmt.Fprintln(out, "\n===== Quiz Complete =====")
	fmt.Fprintf(out, "Your score: %s\n", session.Summary())
	fmt.Fprintln(out, "========================")
}
