package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pbaille/flashcards/internal/config"
	"github.com/pbaille/flashcards/internal/domain"
	"github.com/pbaille/flashcards/internal/flashcards"
	"github.com/pbaille/flashcards/internal/logger"
	"github.com/pbaille/flashcards/internal/session"
	"github.com/pbaille/flashcards/internal/transcript"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flashcards [-import FILE] [-export FILE]",
		Short: "Interactive flashcard study tool",
		Long: `Runs an interactive study session on stdin/stdout.

-import FILE loads cards before the session starts.
-export FILE saves cards when the session ends.`,
		Args: cobra.ArbitraryArgs,
		// -import and -export are single-dash long flags, which pflag cannot
		// parse, so the raw arguments go straight to the session.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, a := range args {
				switch {
				case a == "-h" || a == "--help":
					return cmd.Help()
				case a == "--config" && i+1 < len(args):
					configPath = args[i+1]
				}
			}

			m, l, err := setup(cmd)
			if err != nil {
				return err
			}

			s := session.New(m, transcript.New(cmd.OutOrStdout()), l)
			return s.Run(cmd.Context(), flashcards.NewInput(cmd.InOrStdin()), args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("FLASHCARDS_CONFIG"), "config file (YAML)")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(hardestCmd())

	return rootCmd
}

func setup(cmd *cobra.Command) (*flashcards.Manager, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	l := logger.Setup(cfg.Log, cmd.ErrOrStderr()).With("session", uuid.NewString())

	opts := []flashcards.Option{flashcards.WithLogger(l)}
	if cfg.Quiz.Seed != 0 {
		opts = append(opts, flashcards.WithRand(rand.New(rand.NewPCG(cfg.Quiz.Seed, cfg.Quiz.Seed))))
	}

	return flashcards.New(opts...), l, nil
}

// loadFile builds a manager holding the cards in path
func loadFile(cmd *cobra.Command, path string) (*flashcards.Manager, *transcript.Log, error) {
	m, _, err := setup(cmd)
	if err != nil {
		return nil, nil, err
	}

	log := transcript.New(cmd.OutOrStdout())
	if err := m.ImportFile(path, log); err != nil {
		return nil, nil, err
	}
	return m, log, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List the cards in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadFile(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if m.Len() == 0 {
				fmt.Fprintln(out, "No cards yet. Use 'flashcards -export FILE' to save some.")
				return nil
			}

			m.Each(func(term string, card *domain.Flashcard) {
				fmt.Fprintf(out, "%s: %s (%d errors)\n", term, card.Definition, card.Mistakes)
			})
			return nil
		},
	}
}

func hardestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hardest [file]",
		Short: "Show the cards with the most mistakes in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, log, err := loadFile(cmd, args[0])
			if err != nil {
				return err
			}

			m.PrintHardestCard(log)
			return nil
		},
	}
}
