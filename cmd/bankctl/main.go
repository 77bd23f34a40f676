// bankctl maintains packet quiz question banks: it prints bank statistics
// and converts the JSON bank into the SQLite form the quiz can also load.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"netquiz/internal/bank"
	"netquiz/internal/quiz"
)

func main() {
	bankPath := flag.String("f", "packet_samples.json", "question bank file (.json or .db)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch args[0] {
	case "stats":
		err = runStats(ctx, *bankPath)
	case "import":
		err = runImport(ctx, log, *bankPath, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bankctl [-f BANK] [-v] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  stats               print bank statistics")
	fmt.Fprintln(os.Stderr, "  import -o OUT.db    write the bank into a new SQLite file")
	flag.PrintDefaults()
}

func runStats(ctx context.Context, path string) error {
	b, err := bank.Load(ctx, path)
	if err != nil {
		return err
	}

	fmt.Printf("bank: %s\n", path)
	fmt.Printf("packets: %d\n", len(b.Packets))
	fmt.Printf("questions: %d\n", len(b.Questions))

	byCategory := lo.CountValuesBy(b.Questions, func(q quiz.Question) string { return q.Category })
	categories := lo.Keys(byCategory)
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Printf("  %s: %d\n", category, byCategory[category])
	}
	return nil
}

func runImport(ctx context.Context, log logrus.FieldLogger, path string, args []string) error {
	importFlags := flag.NewFlagSet("import", flag.ExitOnError)
	outPath := importFlags.String("o", "", "output SQLite file")
	if err := importFlags.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return errors.New("import requires -o OUT.db")
	}

	if _, err := os.Stat(*outPath); !errors.Is(err, fs.ErrNotExist) {
		if err != nil {
			return err
		}
		return fmt.Errorf("%s already exists", *outPath)
	}

	b, err := bank.Load(ctx, path)
	if err != nil {
		return err
	}

	store, err := bank.OpenSQLite(*outPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ctx, b); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"source":    path,
		"out":       *outPath,
		"packets":   len(b.Packets),
		"questions": len(b.Questions),
	}).Info("bank imported")
	return nil
}
