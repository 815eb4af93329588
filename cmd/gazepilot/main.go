// gazepilot - attention-driven media control
//
// Reads per-frame facial geometry from a signal source, runs the
// temporal decision pipeline, and forwards debounced play/pause
// commands to a player sink. The landmark extractor and the player are
// external; this binary is the decision layer between them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gazepilot/go-gazepilot/internal/config"
	"github.com/gazepilot/go-gazepilot/internal/log"
	"github.com/gazepilot/go-gazepilot/pkg/attention"
	"github.com/gazepilot/go-gazepilot/pkg/player"
	sig "github.com/gazepilot/go-gazepilot/pkg/signal"
	"github.com/gazepilot/go-gazepilot/pkg/web"
)

func main() {
	var (
		profileFlag   = flag.String("profile", "", "decision profile: default, strict, relaxed")
		traceFlag     = flag.String("trace", "", "JSONL frame trace to replay instead of the synthetic source")
		playerFlag    = flag.String("player", "", "player remote websocket URL (empty: log commands)")
		dashboardFlag = flag.String("dashboard", "", "dashboard listen address (empty: settings value)")
		noDashboard   = flag.Bool("no-dashboard", false, "disable the telemetry dashboard")
	)
	flag.Parse()

	settings, err := config.LoadSettings("gazepilot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load settings: %v\n", err)
		os.Exit(1)
	}

	// Flags and env override the settings file.
	settings.Profile = config.Env("GAZEPILOT_PROFILE", settings.Profile)
	if *profileFlag != "" {
		settings.Profile = *profileFlag
	}
	if *traceFlag != "" {
		settings.TracePath = *traceFlag
	}
	if *playerFlag != "" {
		settings.PlayerURL = *playerFlag
	}
	if *dashboardFlag != "" {
		settings.DashboardAddr = *dashboardFlag
	}

	log.Init(settings.LogLevel)
	logger := log.With("component", "gazepilot")

	pipeline, err := attention.NewPipeline(settings.AttentionConfig(), log.L())
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	vocab := player.VideoVocabulary()
	if settings.Vocabulary == "document" {
		vocab = player.DocumentVocabulary()
	}

	sink, err := buildSink(settings, vocab)
	if err != nil {
		logger.Error("player sink unavailable", "error", err)
		os.Exit(1)
	}
	defer sink.Close()

	source, paced, err := buildSource(settings)
	if err != nil {
		logger.Error("signal source unavailable", "error", err)
		os.Exit(1)
	}

	if !*noDashboard {
		server := web.NewServer(settings.DashboardAddr, pipeline, log.L())
		pipeline.SetStateSink(server)
		server.StartAsync()
		defer server.Shutdown()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("frame loop started",
		"profile", settings.Profile,
		"vocabulary", settings.Vocabulary,
		"trace", settings.TracePath,
	)

	if err := run(ctx, pipeline, source, sink, paced); err != nil {
		logger.Error("frame loop stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("frame loop finished")
}

// run drives frames from the source through the pipeline into the sink
// until the source is exhausted or the context is cancelled.
func run(ctx context.Context, pipeline *attention.Pipeline, source sig.Source, sink player.Sink, paced bool) error {
	for {
		frame, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, sig.ErrSourceClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if cmd, ok := pipeline.Process(frame); ok {
			if err := sink.Send(ctx, cmd); err != nil {
				return fmt.Errorf("forward %s: %w", cmd, err)
			}
		}

		// Synthetic frames arrive instantly; pace them to webcam rate
		// so the dashboard is watchable.
		if paced {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(33 * time.Millisecond):
			}
		}
	}
}

// buildSink selects the command transport: a websocket player remote
// when configured, otherwise the log sink.
func buildSink(settings config.Settings, vocab player.Vocabulary) (player.Sink, error) {
	if settings.PlayerURL == "" {
		return player.NewLogSink(log.L(), vocab), nil
	}
	return player.DialRemote(settings.PlayerURL, vocab)
}

// buildSource selects the frame source: a recorded trace when
// configured, otherwise a synthetic demo stream with jitter, blinks,
// and occasional detector misses.
func buildSource(settings config.Settings) (sig.Source, bool, error) {
	if settings.TracePath != "" {
		source, err := sig.OpenReplay(settings.TracePath)
		return source, false, err
	}

	source := sig.NewMockSource(
		sig.WithJitter(1.2),
		sig.WithBlinks(120, 3),
		sig.WithDropouts(450, 2),
	)
	return source, true, nil
}
