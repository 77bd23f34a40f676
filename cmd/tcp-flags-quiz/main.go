package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"netquiz/internal/cli"
)

func main() {
	count := flag.Int("n", 20, "number of questions to ask")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "error: -n must be at least 1")
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := cli.TCPFlagsOptions{
		Count: *count,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:   log,
	}

	if err := cli.RunTCPFlags(context.Background(), os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
