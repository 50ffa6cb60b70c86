// Command kiri is a thin demonstration driver over the kiri rule engine:
// it can render a text-encoded position, play a sequence of algebraic
// moves against it, score a terminal position, or run a random rollout.
// It intentionally does not speak GTP or implement search — those are
// out of scope for this module; a controller that needs GTP can be
// built directly on top of the kiri package's exported API.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/y-ich/kiri"
	"github.com/y-ich/kiri/playout"
)

var (
	boardSize int
	komi      float64
	verbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kiri",
		Short: "A Go (Igo/Weiqi) rule-engine demo CLI",
	}
	root.PersistentFlags().IntVar(&boardSize, "size", 19, "board side")
	root.PersistentFlags().Float64Var(&komi, "komi", 6.5, "komi")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable structured logging")

	root.AddCommand(newShowCmd(), newPlayCmd(), newScoreCmd(), newRolloutCmd())
	return root
}

func setupLogger() {
	if !verbose {
		return
	}
	l, err := zap.NewDevelopment()
	if err == nil {
		kiri.SetLogger(l)
	}
}

func readPosition(in io.Reader) (*kiri.Position, error) {
	buf, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return kiri.ParsePosition(boardSize, string(buf))
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render a text-encoded board read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			p, err := readPosition(os.Stdin)
			if err != nil {
				p = kiri.NewPosition(boardSize)
			}
			p.SetKomi(komi)
			fmt.Print(p.String())
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [vertex...]",
		Short: "Play a sequence of algebraic moves starting from an empty board and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			p := kiri.NewPosition(boardSize)
			p.SetKomi(komi)
			for _, v := range args {
				mov, err := p.AlgebraicToMove(v)
				if err != nil {
					return fmt.Errorf("parsing vertex %q: %w", v, err)
				}
				if _, err := p.Play(mov); err != nil {
					return fmt.Errorf("playing %q: %w", v, err)
				}
			}
			fmt.Print(p.String())
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Read a terminal text-encoded board from stdin and print its area score",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			p, err := readPosition(os.Stdin)
			if err != nil {
				return err
			}
			p.SetKomi(komi)
			fmt.Println(strconv.FormatFloat(p.Score(), 'f', 1, 64))
			return nil
		},
	}
}

func newRolloutCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Play uniform-random games from an empty board and report the average score",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			var total float64
			for i := 0; i < samples; i++ {
				p := kiri.NewPosition(boardSize)
				p.SetKomi(komi)
				result := playout.Run(p, playout.Config{})
				total += result.Score
				kiri.Logger().Debug("sample rollout", zap.Int("index", i), zap.Int("moves", result.Moves), zap.Float64("score", result.Score))
			}
			fmt.Printf("average score over %d samples: %.2f\n", samples, total/float64(samples))
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 100, "number of rollouts to average")
	return cmd
}
