package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mattmezza/noticeack/internal/config"
	"github.com/mattmezza/noticeack/internal/logging"
	"github.com/mattmezza/noticeack/internal/notice"
	"github.com/mattmezza/noticeack/internal/state"
)

type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger

	// newLogger defaults to logging.New.
	newLogger func(level string) (*zap.Logger, error)
}

// execute runs the CLI and flushes the logger whether or not the command
// succeeded.
func execute(a *app, out io.Writer, args []string) error {
	defer a.syncLogger()
	root := a.rootCmd(out)
	root.SetArgs(args)
	return root.Execute()
}

func (a *app) syncLogger() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) rootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "noticeack",
		Short:         "Track which one-off notifications the user has seen",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configFile, "config", "config.yaml", "Path to the configuration file.")

	root.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current notification state as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.load()
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			},
		},
		&cobra.Command{
			Use:   "ack <notification>",
			Short: "Mark a notification as seen",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runAck,
		},
		&cobra.Command{
			Use:   "should-show <notification>",
			Short: "Print whether a notification still needs to be shown",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := notice.ParseNotification(args[0])
				if err != nil {
					return err
				}
				st, err := a.load()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), notice.ShouldShow(st, n))
				return nil
			},
		},
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configFile)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		cfg, err = config.Default()
	}
	if err != nil {
		return err
	}
	a.cfg = cfg

	build := a.newLogger
	if build == nil {
		build = logging.New
	}
	logger, err := build(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configFile),
		zap.String("state_file", cfg.StateFile))
	return nil
}

func (a *app) load() (state.Notifications, error) {
	return state.LoadFile(a.cfg.StateFile, a.cfg.InitialState)
}

func (a *app) runAck(cmd *cobra.Command, args []string) error {
	n, err := notice.ParseNotification(args[0])
	if err != nil {
		return err
	}
	st, err := a.load()
	if err != nil {
		return err
	}
	store := notice.NewStore(st, a.logger)
	next := store.Dispatch(notice.Seen(n))
	if next == st {
		return nil
	}
	if err := state.SaveFile(a.cfg.StateFile, next); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s acknowledged\n", n)
	return nil
}

func main() {
	if err := execute(&app{}, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
