package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/resumelab/resumelab/internal/bootstrap"
	"github.com/resumelab/resumelab/internal/core"
	"github.com/resumelab/resumelab/internal/data"
	"github.com/resumelab/resumelab/internal/domain/model"
)

type statsOptions struct {
	Timeout time.Duration
}

type dlqPeekOptions struct {
	Limit   int
	Timeout time.Duration
}

func runStats(cmdCtx *commandContext, args []string) error {
	opts, err := parseStatsFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		stats, statsErr := data.NewImprovementRepo(db).Stats(ctx)
		if statsErr != nil {
			return fmt.Errorf("load improvement stats: %w", statsErr)
		}
		return printImprovementStats(os.Stdout, stats)
	})
}

func printImprovementStats(w io.Writer, stats *model.ImprovementStats) error {
	if stats == nil {
		return errors.New("stats are required")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		count int
	}{
		{"queued", stats.Queued},
		{"processing", stats.Processing},
		{"done", stats.Done},
		{"failed", stats.Failed},
	}

	if err := writef(tw, "STATUS\tCOUNT\n"); err != nil {
		return fmt.Errorf("print stats header: %w", err)
	}
	total := 0
	for _, row := range rows {
		total += row.count
		if err := writef(tw, "%s\t%d\n", row.label, row.count); err != nil {
			return fmt.Errorf("print stats row: %w", err)
		}
	}
	if err := writef(tw, "total\t%d\n", total); err != nil {
		return fmt.Errorf("print stats total: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush stats table: %w", err)
	}
	return nil
}

func runDLQPeek(cmdCtx *commandContext, args []string) error {
	opts, err := parseDLQPeekFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, opts.Timeout)
	defer cancel()

	broker, err := bootstrap.ConnectBroker(cmdCtx.Config.Broker, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("connect broker: %w", err)
	}
	defer func() {
		if closeErr := broker.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("broker close failed", "error", closeErr)
		}
	}()

	inspector, err := broker.NewInspector()
	if err != nil {
		return err
	}

	letters, err := inspector.Peek(ctx, opts.Limit)
	if err != nil {
		return fmt.Errorf("peek dead letters: %w", err)
	}

	return printDeadLetters(os.Stdout, letters)
}

func printDeadLetters(w io.Writer, letters []core.DeadLetter) error {
	if len(letters) == 0 {
		if err := writeln(w, "(dead-letter queue is empty)"); err != nil {
			return fmt.Errorf("print empty dlq notice: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "IMPROVEMENT\tMESSAGE\tREASON\tTIMESTAMP\n"); err != nil {
		return fmt.Errorf("print dlq header: %w", err)
	}
	for _, letter := range letters {
		ts := ""
		if !letter.Timestamp.IsZero() {
			ts = letter.Timestamp.UTC().Format(time.RFC3339)
		}
		if err := writef(tw, "%s\t%s\t%s\t%s\n",
			letter.ImprovementID, letter.MessageID, letter.Reason, ts); err != nil {
			return fmt.Errorf("print dlq row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush dlq table: %w", err)
	}

	if err := writef(w, "\nTotal messages shown: %d\n", len(letters)); err != nil {
		return fmt.Errorf("print dlq total: %w", err)
	}
	return nil
}

func parseStatsFlags(args []string) (statsOptions, error) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := statsOptions{Timeout: time.Minute}

	fs.DurationVar(&opts.Timeout, "timeout", time.Minute, "Maximum duration to wait for the stats query")

	if err := fs.Parse(args); err != nil {
		return statsOptions{}, err
	}

	if opts.Timeout <= 0 {
		return statsOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseDLQPeekFlags(args []string) (dlqPeekOptions, error) {
	fs := flag.NewFlagSet("dlq-peek", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dlqPeekOptions{Limit: 10, Timeout: time.Minute}

	fs.IntVar(&opts.Limit, "limit", 10, "Maximum number of dead-lettered messages to show")
	fs.DurationVar(&opts.Timeout, "timeout", time.Minute, "Maximum duration to wait for the broker")

	if err := fs.Parse(args); err != nil {
		return dlqPeekOptions{}, err
	}

	if opts.Limit <= 0 {
		return dlqPeekOptions{}, errors.New("--limit must be greater than zero")
	}
	if opts.Timeout <= 0 {
		return dlqPeekOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}
