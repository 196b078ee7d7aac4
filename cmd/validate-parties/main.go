package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/Gunvolt24/party_registry/pkg/validate"
)

// CLI-приложение для офлайн-проверки записей партий.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run — разбор флагов и проверка; возвращает код выхода.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-parties", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := fs.String("format", "auto", "input format: auto|json|jsonl")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	format, err := validate.ParseFormat(*formatStr)
	if err != nil {
		fmt.Fprintf(stderr, "validation: %v\n", err)
		return 2
	}

	v := validate.NewPartyValidator()

	var summary validate.Summary
	if *inputPath == "" {
		// stdin без явного формата читаем как JSONL
		summary, err = validate.ValidateReader(ctx, v, stdin, format, stdout)
	} else {
		summary, err = validate.ValidateFile(ctx, v, *inputPath, format, stdout)
	}

	printErrors(stderr, summary)
	if err != nil {
		fmt.Fprintf(stderr, "validation: %v (%s)\n", err, summary)
		return 1
	}
	if summary.Invalid > 0 {
		fmt.Fprintf(stderr, "validation failed (%s)\n", summary)
		return 1
	}
	fmt.Fprintf(stderr, "validation ok (%s)\n", summary)
	return 0
}

// printErrors — причины по строкам в порядке возрастания номера.
func printErrors(w io.Writer, s validate.Summary) {
	lines := make([]int, 0, len(s.Errors))
	for n := range s.Errors {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	for _, n := range lines {
		fmt.Fprintf(w, "line %d: %s\n", n, s.Errors[n])
	}
}
