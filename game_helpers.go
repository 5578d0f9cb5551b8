package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	flagConfig         = "config"
	flagWidth          = "width"
	flagHeight         = "height"
	flagLive           = "live"
	flagDelay          = "delay"
	flagMaxGenerations = "max-generations"
	flagSeed           = "seed"
	flagPattern        = "pattern"
	flagSteps          = "steps"
)

// loadConfig reads the config file, falling back to defaults when it is missing
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Printf("Using default configuration (%s not found)", filename)
			return utils.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}

// applyFlagOverrides copies explicitly set flags over the file configuration
func applyFlagOverrides(cmd *cli.Command, config *utils.Config) {
	if cmd.IsSet(flagWidth) {
		config.Width = cmd.Int(flagWidth)
	}
	if cmd.IsSet(flagHeight) {
		config.Height = cmd.Int(flagHeight)
	}
	if cmd.IsSet(flagLive) {
		config.InitialLiveCells = cmd.Int(flagLive)
	}
	if cmd.IsSet(flagDelay) {
		config.TickDelay = cmd.Duration(flagDelay)
	}
	if cmd.IsSet(flagMaxGenerations) {
		config.MaxGenerations = cmd.Int(flagMaxGenerations)
	}
	if cmd.IsSet(flagSeed) {
		config.Seed = cmd.Int64(flagSeed)
	}
}

// newSession builds the session, starting from --pattern when given
func newSession(cmd *cli.Command, config utils.Config) (*session.Session, error) {
	if !cmd.IsSet(flagPattern) {
		return session.New(config)
	}

	board, err := loadPattern(cmd.String(flagPattern), config)
	if err != nil {
		return nil, err
	}
	config.Width, config.Height = board.Width(), board.Height()
	return session.New(config, session.WithBoard(board))
}

// loadPattern parses a pattern file and pads it up to the configured minimum size
func loadPattern(filename string, config utils.Config) (*model.Board, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] failed to read file: %+v", filename)
	}

	board, err := model.ParseBoard(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] file: %+v", filename)
	}

	padded, resized, err := model.Resize(board,
		max(board.Width(), config.MinWidth), max(board.Height(), config.MinHeight))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] file: %+v", filename)
	}
	if resized {
		board = padded
	}
	return board, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(sess *session.Session) {
	st := sess.Snapshot()
	config := sess.Config()
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Tick: %s | Max generations: %d\n",
		st.Board.Width(), st.Board.Height(), st.Board.LiveCount(), config.TickDelay, config.MaxGenerations)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// drawFrame clears the terminal and prints the status lines and board
func drawFrame(renderer *render.TerminalRenderer, st session.State, stats *utils.Stats) error {
	if err := renderer.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(renderer.Out, render.Status(st))
	fmt.Fprintf(renderer.Out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	return renderer.Display(st.Board)
}

// displayFinalStats reports why the run ended
func displayFinalStats(st session.State, stats *utils.Stats) {
	switch {
	case st.Concluded:
		fmt.Printf("\n🏁 Board stabilized after %d generations\n", st.Generation)
	case !st.Playing:
		fmt.Printf("\n🏁 Stopped at generation %d\n", st.Generation)
	default:
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		st.Generation, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
