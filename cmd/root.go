package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmdWithApp()
	return rootCmd
}

func newRootCmdWithApp() (*cobra.Command, *app) {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "norman",
		Short:         "Norman CLI: upload models and invoke them on the Norman platform",
		Long:          "norman keeps your platform credentials in named profiles, uploads models with their assets, and runs invocations while reporting progress from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWiringAnnotation] == "true" {
				return nil
			}
			return app.wire(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.shutdown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config-file", "", "Settings file (default ~/.norman/config.toml)")
	flags.StringP("profile", "p", "default", "Credential profile to use")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.String("api-url", "", "Platform API base URL")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address while the command runs")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newCredentialsCmd(app),
		newAPIKeyCmd(app),
		newModelCmd(app),
		newInvokeCmd(app),
	)

	return rootCmd, app
}
