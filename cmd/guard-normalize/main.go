package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/guard"
	"github.com/xaionaro-go/guard/logger"
	"github.com/xaionaro-go/guard/normalize"
)

type config struct {
	AsMessage  bool
	PrintRules bool
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] [expression ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "expressions are read from stdin (one per line) if none are given\n")
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	asMessage := pflag.Bool("message", false, "print the full assertion message instead of the bare condition")
	printRules := pflag.Bool("rules", false, "print the rewrite rules in the order they are applied and exit")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	err := run(ctx, config{
		AsMessage:  *asMessage,
		PrintRules: *printRules,
	}, pflag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
	}
}

func run(
	ctx context.Context,
	cfg config,
	args []string,
	in io.Reader,
	out io.Writer,
) error {
	normalizer := normalize.Default
	if cfg.PrintRules {
		_, err := fmt.Fprintln(out, normalizer.Rules)
		return err
	}

	format := func(raw string) string {
		result := normalizer.Normalize(raw)
		if cfg.AsMessage {
			result = guard.FormatMessage(result)
		}
		return result
	}

	if len(args) > 0 {
		logger.Debugf(ctx, "normalizing %d expressions from the arguments", len(args))
		for _, arg := range args {
			if _, err := fmt.Fprintln(out, format(arg)); err != nil {
				return fmt.Errorf("unable to write the result: %w", err)
			}
		}
		return nil
	}

	logger.Debugf(ctx, "normalizing expressions from stdin")
	scanner := bufio.NewScanner(in)
	lines := 0
	for scanner.Scan() {
		lines++
		if _, err := fmt.Fprintln(out, format(scanner.Text())); err != nil {
			return fmt.Errorf("unable to write the result: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read line %d: %w", lines+1, err)
	}
	logger.Debugf(ctx, "normalized %d lines", lines)
	return nil
}
