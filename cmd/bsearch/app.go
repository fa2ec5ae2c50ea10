// bsearch demonstrates binary search over sorted integers and strings.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"

	"github.com/kortgrabb/binary-search/bsearch"
)

const (
	integerKind = "Integer"
	stringKind  = "String"
)

var (
	demoIntegers = []int64{0, 4, 7, 9, 23, 57, 79, 89}
	demoStrings  = []string{"apple", "apple", "banana", "cherry", "raspberry"}
)

func newApp(out, errOut io.Writer) *cli.App {
	logger := zap.NewNop()

	return &cli.App{
		Name:      "bsearch",
		Usage:     "binary search over sorted integers and strings",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level written to stderr (debug, info, warn, error)",
				EnvVars: []string{"BSEARCH_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			l, err := newLogger(errOut, c.String("log-level"))
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		After: func(c *cli.Context) error {
			_ = logger.Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			return runDemo(c.App.Writer, logger.Named("demo"))
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "search a sorted list given as arguments",
				ArgsUsage: "ELEM...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "target",
						Usage:    "value to look for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "text",
						Usage: "treat the target and elements as strings instead of integers",
					},
				},
				Action: func(c *cli.Context) error {
					return runSearch(c, logger.Named("search"))
				},
			},
		},
	}
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

func runDemo(w io.Writer, logger *zap.Logger) error {
	if err := report(w, logger, integerKind, 23, demoIntegers); err != nil {
		return err
	}
	return report(w, logger, stringKind, "raspberry", demoStrings)
}

func runSearch(c *cli.Context, logger *zap.Logger) error {
	target := c.String("target")
	elems := c.Args().Slice()

	if c.Bool("text") {
		return report(c.App.Writer, logger, stringKind, target, elems)
	}

	t, err := parseInt(target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	seq := make([]int64, 0, len(elems))
	for _, e := range elems {
		v, err := parseInt(e)
		if err != nil {
			return fmt.Errorf("element %d: %w", len(seq), err)
		}
		seq = append(seq, v)
	}
	return report(c.App.Writer, logger, integerKind, t, seq)
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}

func report[T constraints.Ordered](w io.Writer, logger *zap.Logger, kind string, target T, seq []T) error {
	index, found := bsearch.Search(target, seq)

	shown := fmt.Sprint(target)
	if kind == stringKind {
		shown = "'" + shown + "'"
	}
	logger.Debug("search finished",
		zap.String("kind", kind),
		zap.String("target", shown),
		zap.Int("length", len(seq)),
		zap.Int("index", index),
		zap.Bool("found", found),
	)

	var err error
	if found {
		_, err = fmt.Fprintf(w, "%s %s found at index %d.\n", kind, shown, index)
	} else {
		_, err = fmt.Fprintf(w, "%s %s not found.\n", kind, shown)
	}
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
