package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ib-77/craftingtools/internal/config"
	"github.com/ib-77/craftingtools/internal/logging"
	"github.com/ib-77/craftingtools/internal/profession"
	"github.com/ib-77/craftingtools/pkg/repository"
)

var errNotFound = errors.New("profession not found")

type app struct {
	configFile string
	repo       profession.Repository
	log        *logging.Logger
}

func newApp() *app {
	return &app{}
}

// execute runs the command line and turns any failure into a message on
// stderr and a non-zero exit code.
func (a *app) execute(args []string, stdout, stderr io.Writer) int {
	defer a.sync()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// get has already told the user
		if !errors.Is(err, errNotFound) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) sync() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "professions",
		Short:         "Inspect the known crafting professions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file")
	root.PersistentFlags().String("seed", "", "seed file with professions (yaml or json)")
	root.PersistentFlags().String("log-level", "info", "log level")
	root.PersistentFlags().Duration("cache-ttl", 0, "cache lookups for this long (0 disables)")

	root.AddCommand(a.listCmd(), a.getCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd, a.configFile)
	if err != nil {
		return err
	}

	a.log, err = logging.Build(cfg.LogLevel)
	if err != nil {
		return err
	}

	ps := profession.Defaults()
	if cfg.SeedFile != "" {
		data, err := os.ReadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		if ps, err = profession.LoadSeed(data); err != nil {
			return fmt.Errorf("load seed %s: %w", cfg.SeedFile, err)
		}
	}

	store, err := profession.NewMemoryRepository(ps...)
	if err != nil {
		return err
	}

	var repo profession.Repository = store
	if cfg.CacheTTL > 0 {
		repo = profession.NewStore(repository.NewCached(store.Repository(), cfg.CacheTTL))
	}
	a.repo = profession.NewLoggedRepository(repo, a.log)

	a.log.Debug("repository ready",
		logging.Int("professions", len(ps)),
		logging.Duration("cache_ttl", cfg.CacheTTL))
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all professions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range a.repo.GetProfessions() {
				fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Name)
			}
			return w.Flush()
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the profession with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			p, err := a.repo.GetProfessionByID(id).Get()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "not found")
				return errNotFound
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			return nil
		},
	}
}
