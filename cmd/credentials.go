package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCredentialsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credentials",
		Aliases: []string{"creds"},
		Short:   "Manage stored credential profiles",
	}

	cmd.AddCommand(newCredentialsSetCmd(app), newCredentialsShowCmd(app), newCredentialsListCmd(app))

	return cmd
}

func newCredentialsSetCmd(app *app) *cobra.Command {
	var (
		accountID     string
		username      string
		email         string
		apiURL        string
		passwordStdin bool
		apiKeyStdin   bool
		clearPassword bool
		clearAPIKey   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of the active profile; unset flags keep their stored value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin && apiKeyStdin {
				return errors.New("use only one of --password-stdin and --api-key-stdin")
			}
			if passwordStdin && clearPassword || apiKeyStdin && clearAPIKey {
				return errors.New("cannot read and clear the same secret")
			}

			save := application.SaveProfileCommand{Name: app.profileName()}
			flags := cmd.Flags()
			if flags.Changed("account-id") {
				save.Credentials.AccountID = domain.Some(domain.AccountID(accountID))
			}
			if flags.Changed("username") {
				save.Credentials.Username = domain.Some(username)
			}
			if flags.Changed("email") {
				save.Credentials.Email = domain.Some(email)
			}
			if flags.Changed("base-url") {
				save.APIBaseURL = domain.Some(apiURL)
			}
			if passwordStdin || apiKeyStdin {
				secret, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if passwordStdin {
					save.Credentials.Password = domain.Some(secret)
				} else {
					save.Credentials.APIKey = domain.Some(secret)
				}
			}
			if clearPassword {
				save.Credentials.Password = domain.Some(domain.Secret{})
			}
			if clearAPIKey {
				save.Credentials.APIKey = domain.Some(domain.Secret{})
			}

			if save.Credentials.Empty() && !save.APIBaseURL.Set {
				return errors.New("nothing to update; pass at least one field flag")
			}
			if err := app.profiles.Save(cmd.Context(), save); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %s\n", save.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "Account ID")
	cmd.Flags().StringVar(&username, "username", "", "Account name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&apiURL, "base-url", "", "Platform API base URL for this profile")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().BoolVar(&apiKeyStdin, "api-key-stdin", false, "Read the API key from stdin")
	cmd.Flags().BoolVar(&clearPassword, "clear-password", false, "Remove the stored password")
	cmd.Flags().BoolVar(&clearAPIKey, "clear-api-key", false, "Remove the stored API key")

	return cmd
}

type profileView struct {
	Name        string `json:"name"`
	AccountID   string `json:"account_id,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	APIBaseURL  string `json:"api_base_url,omitempty"`
	HasPassword bool   `json:"has_password"`
	HasAPIKey   bool   `json:"has_api_key"`
}

func newProfileView(status application.ProfileStatus) profileView {
	return profileView{
		Name:        status.Profile.Name,
		AccountID:   string(status.Profile.AccountID),
		Username:    status.Profile.Username,
		Email:       status.Profile.Email,
		APIBaseURL:  status.Profile.APIBaseURL,
		HasPassword: status.HasPassword,
		HasAPIKey:   status.HasAPIKey,
	}
}

func newCredentialsShowCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active profile without revealing secrets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.profiles.Status(cmd.Context(), app.profileName())
			if err != nil {
				return err
			}
			view := newProfileView(status)

			if jsonOutput {
				return writeJSON(cmd, view)
			}

			lines := []string{
				"profile: " + view.Name,
				"account id: " + orNone(view.AccountID),
				"username: " + orNone(view.Username),
				"email: " + orNone(view.Email),
				"api url: " + orNone(view.APIBaseURL),
				"password: " + storedOrNone(view.HasPassword),
				"api key: " + storedOrNone(view.HasAPIKey),
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON output")

	return cmd
}

func newCredentialsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No profiles stored.")
				return err
			}

			for _, profile := range profiles {
				marker := " "
				if profile.Name == app.profileName() {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, profile.Name, orNone(string(profile.AccountID))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}

func storedOrNone(stored bool) string {
	if stored {
		return "stored"
	}
	return "none"
}

func writeJSON(cmd *cobra.Command, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}
