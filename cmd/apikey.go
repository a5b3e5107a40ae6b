package cmd

import (
	"fmt"

	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAPIKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage account API keys",
	}

	cmd.AddCommand(newAPIKeyGenerateCmd(app))

	return cmd
}

func newAPIKeyGenerateCmd(app *app) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new API key for the logged-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, _, err := app.newClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			if _, err := client.Sessions().EnsureValid(ctx); err != nil {
				return err
			}
			key, err := client.GenerateAPIKey(ctx)
			if err != nil {
				return err
			}

			if !noSave {
				err := app.profiles.Save(ctx, application.SaveProfileCommand{
					Name: app.profileName(),
					Credentials: domain.CredentialsUpdate{
						AccountID: domain.Some(client.Session().Account.ID),
						APIKey:    domain.Some(key),
					},
				})
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.Reveal())
			return err
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Print the key without storing it in the profile")

	return cmd
}
