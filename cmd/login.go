package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errEmptySecret = errors.New("no secret on stdin")

func newLoginCmd(app *app) *cobra.Command {
	var (
		accountID     string
		username      string
		email         string
		passwordStdin bool
		apiKeyStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the working credentials in the active profile",
		Long: "login authenticates with the given identity and secret. Without flags it logs in " +
			"with the credentials already stored in the profile.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin && apiKeyStdin {
				return errors.New("use only one of --password-stdin and --api-key-stdin")
			}

			var secret domain.Secret
			if passwordStdin || apiKeyStdin {
				var err error
				if secret, err = readSecret(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			return app.withClient(ctx, func(client *application.Client) error {
				sessions := client.Sessions()

				var (
					session domain.Session
					err     error
				)
				switch {
				case accountID != "" && passwordStdin:
					session, err = sessions.LoginWithPassword(ctx, domain.AccountID(accountID), secret)
				case accountID != "" && apiKeyStdin:
					session, err = sessions.LoginWithAPIKey(ctx, domain.AccountID(accountID), secret)
				case username != "" && passwordStdin:
					session, err = sessions.LoginWithUsernamePassword(ctx, username, secret)
				case email != "" && passwordStdin:
					session, err = sessions.LoginWithEmailPassword(ctx, email, secret)
				case apiKeyStdin:
					return errors.New("--api-key-stdin needs --account-id")
				case passwordStdin:
					return errors.New("--password-stdin needs --account-id, --username or --email")
				case accountID != "":
					session, err = sessions.LoginDefault(ctx, domain.AccountID(accountID))
				default:
					session, err = sessions.Login(ctx)
				}
				if err != nil {
					return err
				}

				if err := app.remember(ctx, sessions.Credentials()); err != nil {
					return err
				}

				return printSession(cmd.OutOrStdout(), session)
			})
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "Account ID")
	cmd.Flags().StringVar(&username, "username", "", "Account name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().BoolVar(&apiKeyStdin, "api-key-stdin", false, "Read the API key from stdin")

	cmd.AddCommand(newLoginOTPCmd(app), newLoginVerifyCmd(app))

	return cmd
}

func newLoginOTPCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Email a one-time login code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return app.withClient(ctx, func(client *application.Client) error {
				if err := client.Sessions().RequestEmailOTP(ctx, email); err != nil {
					return err
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Sent a login code to %s. Run: norman login verify --email %s --code <code>\n", email, email)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginVerifyCmd(app *app) *cobra.Command {
	var email, code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Log in with an emailed one-time code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return app.withClient(ctx, func(client *application.Client) error {
				session, err := client.Sessions().VerifyEmailOTP(ctx, email, code)
				if err != nil {
					return err
				}
				if err := app.remember(ctx, client.Sessions().Credentials()); err != nil {
					return err
				}

				return printSession(cmd.OutOrStdout(), session)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&code, "code", "", "One-time code from the email")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newSignupCmd(app *app) *cobra.Command {
	var (
		username      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and store it in the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username != "" && !passwordStdin {
				return errors.New("--username needs --password-stdin")
			}

			var password domain.Secret
			if passwordStdin {
				var err error
				if password, err = readSecret(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			return app.withClient(ctx, func(client *application.Client) error {
				sessions := client.Sessions()

				var (
					session domain.Session
					err     error
				)
				if passwordStdin {
					session, err = sessions.SignupWithPassword(ctx, username, password)
				} else {
					session, err = sessions.SignupDefault(ctx)
				}
				if err != nil {
					return err
				}

				if err := app.remember(ctx, sessions.Credentials()); err != nil {
					return err
				}

				return printSession(cmd.OutOrStdout(), session)
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account name")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

// readSecret reads the first line of r.
func readSecret(r io.Reader) (domain.Secret, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.Secret{}, fmt.Errorf("read secret: %w", err)
	}

	value := strings.TrimRight(line, "\r\n")
	if value == "" {
		return domain.Secret{}, errEmptySecret
	}

	return domain.NewSecret(value), nil
}

func printSession(w io.Writer, session domain.Session) error {
	line := fmt.Sprintf("Logged in to account %s", session.Account.ID)
	if !session.Expiry.IsZero() {
		line += fmt.Sprintf(" (token valid until %s)", session.Expiry.Local().Format(time.RFC3339))
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
