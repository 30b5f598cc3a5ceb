// Package main provides the bowling scorer binary. It replays scripted games
// from a scenario file and then scores rolls typed on stdin, one per line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/bowling/internal/config"
	"github.com/cory-johannsen/bowling/internal/frontend/console"
	"github.com/cory-johannsen/bowling/internal/game/bowling"
	"github.com/cory-johannsen/bowling/internal/game/scenario"
	"github.com/cory-johannsen/bowling/internal/game/scoring"
	"github.com/cory-johannsen/bowling/internal/observability"
	"github.com/cory-johannsen/bowling/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	scenariosPath := flag.String("scenarios", "content/scenarios/demo.yaml", "path to scenario YAML file; empty = no replay")
	interactive := flag.Bool("interactive", true, "read rolls from stdin after replaying scenarios")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	calc := scoring.NewLoggedCalculator(scoring.NewStandardCalculator(cfg.Game.TotalFrames), logger)
	games := bowling.NewManager(calc, logger)
	renderer := console.NewRenderer(os.Stdout, cfg.Game.TotalFrames)
	reporter := console.NewReporter(os.Stdout, cfg.Scoreboard.Color)

	logger.Info("starting bowling scorer",
		zap.Int("total_frames", cfg.Game.TotalFrames),
		zap.String("scenarios", *scenariosPath),
		zap.Bool("interactive", *interactive),
	)

	if *scenariosPath != "" {
		scenarios, err := scenario.LoadFromFile(*scenariosPath)
		if err != nil {
			logger.Fatal("loading scenarios", zap.Error(err))
		}
		for _, s := range scenarios {
			replay(games, s, renderer, reporter, logger)
		}
	}

	if !*interactive {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := games.Start(renderer, reporter)
	reporter.ReportInfo("enter pins knocked down, one roll per line")
	g.Repaint()

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("console", &server.FuncService{
		StartFn: func() error {
			return console.Play(ctx, os.Stdin, g, reporter)
		},
		StopFn: cancel,
	})
	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("console session failed", zap.Error(err))
	}
	if err := games.End(g.ID()); err != nil {
		logger.Warn("ending game", zap.Error(err))
	}
}

// replay throws every roll of s into a fresh game and checks the expected score.
func replay(games *bowling.Manager, s scenario.Scenario, renderer bowling.Renderer, reporter *console.Reporter, logger *zap.Logger) {
	reporter.ReportInfo(fmt.Sprintf("== %s ==", s.Name))
	g := games.Start(renderer, reporter)
	defer func() {
		if err := games.End(g.ID()); err != nil {
			logger.Warn("ending game", zap.Error(err))
		}
	}()

	for _, pins := range s.Rolls {
		g.KnockDownPins(pins)
	}

	if s.ExpectScore == nil {
		return
	}
	got, _ := g.Score()
	if got != *s.ExpectScore {
		logger.Warn("scenario score mismatch",
			zap.String("scenario", s.Name),
			zap.Int("expected", *s.ExpectScore),
			zap.Int("actual", got),
		)
		return
	}
	logger.Info("scenario scored as expected",
		zap.String("scenario", s.Name),
		zap.Int("score", got),
	)
}
