package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	progressrender "github.com/norman-ai/norman-cli/internal/adapters/render/progress"
	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runWithProgress draws a live progress board on terminals and logs each
// event everywhere else.
func (a *app) runWithProgress(cmd *cobra.Command, label string, quiet bool, work progressrender.Work) error {
	ctx := cmd.Context()
	if !quiet && isInteractive(cmd) {
		_, err := progressrender.Run(ctx, cmd.ErrOrStderr(), label, work)
		return err
	}

	return work(ctx, application.ProgressFunc(func(event domain.ProgressEvent) {
		entry := a.log.WithFields(logrus.Fields{
			"operation": event.Operation,
			"stage":     event.Stage,
			"status":    event.Status,
			"entities":  event.EntityIDs,
		})
		if event.IsFlagEvent() {
			entry.WithField("flags", len(event.Flags)).Debug("status flags polled")
			return
		}
		entry.Info("stage changed")
	}))
}

func isInteractive(cmd *cobra.Command) bool {
	file, ok := cmd.ErrOrStderr().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd())
}
