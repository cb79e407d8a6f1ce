// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"

	"simplekit.org/internal/logging"
	"simplekit.org/io/input"
	"simplekit.org/scene"
	"simplekit.org/widget"
)

var (
	scenePath = flag.String("scene", "", "scene file to replay; may also be given as the first argument.")
	logLevel  = flag.String("log-level", "", "minimum log level: debug, info, warn or error.")
	logFormat = flag.String("log-format", "", "log record format: text or json.")
	watch     = flag.Bool("watch", false, "replay again whenever the scene file changes.")
)

type usageError string

func (e usageError) Error() string { return string(e) }

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "sktrace: %v\n", err)
		var u usageError
		if errors.As(err, &u) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func mainErr() error {
	path := *scenePath
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		return usageError("please specify a scene file")
	}
	cfg := logging.Config{}.WithEnv()
	if *logLevel != "" {
		cfg.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Format = *logFormat
	}
	log, err := logging.New(os.Stderr, cfg)
	if err != nil {
		return err
	}
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	replay(os.Stdout, log, s)
	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	w, err := scene.NewWatcher(path)
	if err != nil {
		return err
	}
	log.Info("watching", "path", path)
	return w.Run(ctx, func(s *scene.Scene, err error) {
		if err != nil {
			log.Error("reload failed", "err", err)
			return
		}
		log.Info("scene reloaded", "path", path)
		replay(os.Stdout, log, s)
	})
}

// replay dispatches the events of s through a new router and reports
// the final state to out.
func replay(out io.Writer, log *slog.Logger, s *scene.Scene) {
	s.OnAction = func(a widget.Action) {
		log.Info("action",
			slog.String("source", fmt.Sprint(a.Source)),
			slog.Duration("at", a.Time),
			slog.Bool("capture", a.Capture),
		)
	}
	r := &input.Router{Logger: log}
	s.Replay(r)
	report(out, s, r)
}

func report(out io.Writer, s *scene.Scene, r *input.Router) {
	fmt.Fprintf(out, "replayed %d events\n", len(s.Events))
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWIDGET\tSTATE")
	for _, id := range slices.Sorted(maps.Keys(s.Widgets)) {
		w := s.Widgets[id]
		state := "-"
		if b, ok := w.(*widget.Button); ok {
			state = b.State.String()
			if b.Disabled {
				state += " (disabled)"
			}
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\n", id, w, state)
	}
	tw.Flush()
	fmt.Fprintf(out, "focus: %s\n", describe(r.Focus()))
	fmt.Fprintf(out, "entered: %s\n", describe(r.Entered()))
}

func describe(w input.Widget) string {
	if w == nil {
		return "none"
	}
	return fmt.Sprint(w)
}
