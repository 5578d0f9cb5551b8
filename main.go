// Command go-life runs Conway's Game of Life in the terminal.
//
// The board is seeded randomly (or from a pattern file) and stepped on a
// timer until it reaches a fixed point, hits the generation ceiling or the
// process is interrupted. With --steps it runs headless and prints only the
// final board.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	AppName = "go-life"
	Version = "1.0.0"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "Conway's Game of Life on a resizable board",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Value:   "config.json",
				Usage:   "JSON configuration file; defaults are used if it does not exist",
				Sources: cli.EnvVars("LIFE_CONFIG"),
			},
			&cli.IntFlag{Name: flagWidth, Usage: "board width", Sources: cli.EnvVars("LIFE_WIDTH")},
			&cli.IntFlag{Name: flagHeight, Usage: "board height", Sources: cli.EnvVars("LIFE_HEIGHT")},
			&cli.IntFlag{Name: flagLive, Usage: "live cells on a random board", Sources: cli.EnvVars("LIFE_LIVE_CELLS")},
			&cli.DurationFlag{Name: flagDelay, Usage: "delay between generations", Sources: cli.EnvVars("LIFE_TICK_DELAY")},
			&cli.IntFlag{Name: flagMaxGenerations, Usage: "stop after this many generations (0 = no limit)", Sources: cli.EnvVars("LIFE_MAX_GENERATIONS")},
			&cli.Int64Flag{Name: flagSeed, Usage: "random seed (0 = clock)", Sources: cli.EnvVars("LIFE_SEED")},
			&cli.StringFlag{Name: flagPattern, Usage: "start from a pattern file ('#' alive, '.' dead)", Sources: cli.EnvVars("LIFE_PATTERN")},
			&cli.IntFlag{Name: flagSteps, Usage: "run this many steps without animation and print the result"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd.String(flagConfig))
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &config)

	sess, err := newSession(cmd, config)
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(os.Stdout)

	if cmd.IsSet(flagSteps) {
		return runHeadless(sess, renderer, cmd.Int(flagSteps))
	}
	return runAnimated(ctx, sess, renderer)
}

// runAnimated plays the session on its tick delay until it stops or a
// shutdown signal arrives.
func runAnimated(ctx context.Context, sess *session.Session, renderer *render.TerminalRenderer) error {
	stats := utils.NewStats()
	displayGameInfo(sess)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return watchSignals(gctx, cancel)
	})

	g.Go(func() error {
		defer cancel()

		sess.Play()
		lastFrame := time.Now()
		err := sess.Run(gctx, func(st session.State, status session.StepStatus) {
			stats.Update(st.Generation, st.Board.LiveCount(), time.Since(lastFrame))
			lastFrame = time.Now()
			if err := drawFrame(renderer, st, stats); err != nil {
				log.Printf("render failed: %v", err)
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	displayFinalStats(sess.Snapshot(), stats)
	return nil
}

// watchSignals cancels the run on SIGINT/SIGTERM
func watchSignals(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		log.Printf("Received %s, shutting down", sig)
		cancel()
	case <-ctx.Done():
	}
	return nil
}

// runHeadless steps the session up to steps times and prints the last board
func runHeadless(sess *session.Session, renderer *render.TerminalRenderer, steps int) error {
	for range steps {
		if sess.Step() != session.StepAdvanced {
			break
		}
	}

	st := sess.Snapshot()
	if err := renderer.Display(st.Board); err != nil {
		return err
	}
	log.Println(render.Status(st))
	return nil
}
