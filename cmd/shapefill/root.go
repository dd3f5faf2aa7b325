package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/shapefill/internal/logging"
	"github.com/go-drift/shapefill/pkg/errors"
)

// app holds state shared by the subcommands.
type app struct {
	logLevel  string
	logJSON   bool
	log       zerolog.Logger
	imageErrs chan struct{}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop(), imageErrs: make(chan struct{}, 1)}

	cmd := &cobra.Command{
		Use:           "shapefill",
		Short:         "Render shape decorations described in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(logging.Options{
				Level:         a.logLevel,
				HumanReadable: !a.logJSON,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = log
			errors.SetHandler(&reportHandler{LogHandler: errors.NewLogHandler(log), imageErrs: a.imageErrs})
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			errors.SetHandler(nil)
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Write log records as JSON")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newLerpCmd(a))
	cmd.AddCommand(newDescribeCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// reportHandler logs reported errors and signals image load failures so a
// render waiting for an image can stop early.
type reportHandler struct {
	*errors.LogHandler
	imageErrs chan struct{}
}

func (h *reportHandler) HandleError(err *errors.Error) {
	h.LogHandler.HandleError(err)
	if err != nil && err.Kind == errors.KindImage {
		select {
		case h.imageErrs <- struct{}{}:
		default:
		}
	}
}
