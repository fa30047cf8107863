package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/pkg/validate"
)

// CLI-приложение для проверки форм оформления заказа.
// Валидные записи → stdout (канонический JSON), отклонённые → stderr с причиной.
func main() {
	inputPath := flag.String("in", validate.StdinPath, `path to input (.json or .jsonl); "-" reads JSONL from stdin`)
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	strict := flag.Bool("strict", false, "exit with status 2 if any record is invalid")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := validate.ValidateFile(ctx, validate.NewCheckoutValidator(), *inputPath, validate.InputFormat(*formatStr), os.Stdout)
	for _, r := range summary.Rejected {
		printRejection(r)
	}
	if err != nil && len(summary.Rejected) == 0 {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "validation done (%s)\n", summary)
	if summary.Invalid > 0 && (*strict || err != nil) {
		os.Exit(2)
	}
}

// printRejection — по строке на каждое поле, в стабильном порядке.
func printRejection(r validate.Rejection) {
	fields := domain.FieldErrors(r.Err)
	if len(fields) == 0 {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", r.Line, r.Err)
		return
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "line %d: %s: %s\n", r.Line, name, fields[name])
	}
}
