package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mind-engage/mindengage-grades/internal/config"
	"github.com/mind-engage/mindengage-grades/internal/exam"
	"github.com/mind-engage/mindengage-grades/internal/grading"
	"github.com/mind-engage/mindengage-grades/internal/logger"
	"github.com/mind-engage/mindengage-grades/internal/render"
)

type app struct {
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	log     *slog.Logger
	printer *render.Printer
}

func newRootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "gradecalc",
		Usage: "Compute grade percentages and color bands.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text or json.",
				Value: string(a.cfg.Output),
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colorize bands in text output.",
				Value: a.cfg.Color,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "DEBUG, INFO, WARN or ERROR.",
				Value: a.cfg.LogLevel.String(),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			out := config.Output(c.String("output"))
			if out != config.OutputText && out != config.OutputJSON {
				return ctx, fmt.Errorf("unknown output format %q", out)
			}
			asJSON := out == config.OutputJSON
			a.log = logger.New(a.errOut, config.ParseLevel(c.String("log-level")), asJSON)
			slog.SetDefault(a.log)
			a.printer = render.New(a.out, asJSON, c.Bool("color"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			newPercentCommand(a),
			newColorCommand(a),
			newOverallCommand(a),
			newAttemptCommand(a),
		},
	}
}

func newPercentCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "percent",
		Usage: "Convert points out of a maximum into a percentage",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "points", Usage: "Points earned.", Required: true},
			&cli.FloatFlag{Name: "max", Usage: "Maximum points; zero or unset yields 0%."},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			pct := grading.CalculatePercentage(c.Float("points"), c.Float("max"))
			return a.printer.Percentage("percentage", pct)
		},
	}
}

func newColorCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "color",
		Usage: "Show the color band for a percentage",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "percentage", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return a.printer.Band(grading.GradeColor(c.Float("percentage")))
		},
	}
}

func newOverallCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "overall",
		Usage: "Compute the overall grade from a YAML or JSON list of submissions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "Submissions file; reads stdin when unset or \"-\"."},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			r, closeFn, err := a.open(c.String("file"))
			if err != nil {
				return err
			}
			defer closeFn()

			subs, err := exam.LoadSubmissions(r)
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "loaded submissions", "count", len(subs))
			return a.printer.Percentage("overall", grading.OverallGrade(subs))
		},
	}
}

func newAttemptCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "attempt",
		Usage: "Auto-grade an exam attempt and report the overall grade",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "exam", Usage: "Exam file with answer keys.", Required: true},
			&cli.StringFlag{Name: "attempt", Usage: "Attempt file with responses; reads stdin when \"-\".", Required: true},
			&cli.BoolFlag{Name: "partial-multi", Usage: "Partial credit for mcq_multi.", Value: a.cfg.PartialMulti},
			&cli.IntFlag{Name: "max-edit-distance", Usage: "Fuzzy tolerance for short_word.", Value: a.cfg.MaxEditDistance},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ex, err := loadWith(a, c.String("exam"), exam.LoadExam)
			if err != nil {
				return err
			}
			at, err := loadWith(a, c.String("attempt"), exam.LoadAttempt)
			if err != nil {
				return err
			}

			engine := grading.NewEngine(
				grading.WithPartialMulti(c.Bool("partial-multi")),
				grading.WithMaxEditDistance(int(c.Int("max-edit-distance"))),
			)
			rep, err := exam.GradeAttempt(ctx, engine, ex, at)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "graded attempt", "attempt", rep.AttemptID, "percentage", rep.Percentage, "pending", rep.Pending)
			return a.printer.Report(rep)
		},
	}
}

func loadWith[T any](a *app, path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	r, closeFn, err := a.open(path)
	if err != nil {
		return zero, err
	}
	defer closeFn()
	v, err := load(r)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func (a *app) open(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return a.in, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
