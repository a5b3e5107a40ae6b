package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newInvokeCmd(app *app) *cobra.Command {
	var (
		configPath string
		modelName  string
		inputs     []string
		outputDir  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Invoke a model and collect its outputs",
		Example: "  norman invoke --config invocation.yaml\n" +
			"  norman invoke --model classifier --input image=Path:./cat.png --output-dir out/",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, closeInputs, err := invocationConfig(configPath, modelName, inputs)
			if err != nil {
				return err
			}
			defer closeInputs()

			ctx := cmd.Context()
			client, _, err := app.newClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			var results map[string][]byte
			err = app.runWithProgress(cmd, fmt.Sprintf("Invoking %s...", config.ModelName), jsonOutput,
				func(ctx context.Context, bus *application.ProgressBus) error {
					var err error
					results, err = client.Invoke(ctx, config, bus)
					return err
				})
			if err != nil {
				return err
			}

			if outputDir != "" {
				return writeOutputs(cmd, outputDir, results)
			}
			if jsonOutput {
				text := make(map[string]string, len(results))
				for title, data := range results {
					text[title] = string(data)
				}
				return writeJSON(cmd, text)
			}

			for _, title := range sortedTitles(results) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", title, results[title]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Invocation config YAML file")
	cmd.Flags().StringVar(&modelName, "model", "", "Model name")
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Input as title=Transport:data (Transport is Primitive, Path, Link or Stream)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write each output to a file named after its title")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print outputs as a JSON object of text values")
	cmd.MarkFlagsMutuallyExclusive("config", "model")
	cmd.MarkFlagsMutuallyExclusive("config", "input")

	return cmd
}

// invocationConfig builds the invocation from a config file or from flags.
// Stream inputs given as flags are opened files; the returned func closes them.
func invocationConfig(configPath, modelName string, inputs []string) (application.InvocationConfig, func(), error) {
	if configPath != "" {
		config, err := application.LoadInvocationConfig(configPath)
		return config, func() {}, err
	}
	if modelName == "" {
		return application.InvocationConfig{}, func() {}, errors.New("pass --config or --model")
	}

	var opened []*os.File
	closeAll := func() {
		for _, file := range opened {
			_ = file.Close()
		}
	}

	builder := application.NewInvocationBuilder(modelName)
	for _, raw := range inputs {
		title, transport, data, err := parseInputFlag(raw)
		if err != nil {
			closeAll()
			return application.InvocationConfig{}, func() {}, err
		}
		if transport != domain.TransportStream {
			builder.AddInput(title, transport, data)
			continue
		}

		file, err := os.Open(data)
		if err != nil {
			closeAll()
			return application.InvocationConfig{}, func() {}, fmt.Errorf("open stream input %q: %w", title, err)
		}
		opened = append(opened, file)
		builder.AddInput(title, transport, file)
	}

	config, err := builder.Build()
	if err != nil {
		closeAll()
		return application.InvocationConfig{}, func() {}, err
	}

	return config, closeAll, nil
}

// parseInputFlag splits "title=Transport:data".
func parseInputFlag(raw string) (string, domain.Transport, string, error) {
	title, rest, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(title) == "" {
		return "", "", "", fmt.Errorf("input %q: expected title=Transport:data", raw)
	}

	name, data, ok := strings.Cut(rest, ":")
	if !ok {
		return "", "", "", fmt.Errorf("input %q: expected title=Transport:data", raw)
	}
	transport, err := domain.ParseTransport(name)
	if err != nil {
		return "", "", "", fmt.Errorf("input %q: %w", raw, err)
	}

	return strings.TrimSpace(title), transport, data, nil
}

func writeOutputs(cmd *cobra.Command, dir string, results map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, title := range sortedTitles(results) {
		path := filepath.Join(dir, outputFileName(title))
		if err := os.WriteFile(path, results[title], 0o644); err != nil {
			return fmt.Errorf("write output %q: %w", title, err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", title, path); err != nil {
			return err
		}
	}

	return nil
}

func outputFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, title)
	if name == "" || name == "." || name == ".." {
		name = "_" + name
	}
	return name
}

func sortedTitles(results map[string][]byte) []string {
	titles := make([]string, 0, len(results))
	for title := range results {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}
