package cmd

import (
	"context"
	"fmt"

	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newModelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage models",
	}

	cmd.AddCommand(newModelUploadCmd(app))

	return cmd
}

func newModelUploadCmd(app *app) *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Create a model from a YAML config and upload its assets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := application.LoadModelConfig(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, _, err := app.newClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			var model domain.Model
			err = app.runWithProgress(cmd, fmt.Sprintf("Uploading model %s...", config.Name), jsonOutput,
				func(ctx context.Context, bus *application.ProgressBus) error {
					var err error
					model, err = client.UploadModel(ctx, config, bus)
					return err
				})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, model)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded model %s (%s) with %d asset(s)\n", model.Name, model.ID, len(model.Assets))
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Model config YAML file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the created model as JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
