package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/norman-ai/norman-cli/internal/adapters/logging"
	metricsadapter "github.com/norman-ai/norman-cli/internal/adapters/metrics"
	tomlrepo "github.com/norman-ai/norman-cli/internal/adapters/repo/toml"
	"github.com/norman-ai/norman-cli/internal/adapters/rest"
	chainstore "github.com/norman-ai/norman-cli/internal/adapters/secrets/chain"
	filestore "github.com/norman-ai/norman-cli/internal/adapters/secrets/file"
	passstore "github.com/norman-ai/norman-cli/internal/adapters/secrets/pass"
	"github.com/norman-ai/norman-cli/internal/adapters/socket"
	"github.com/norman-ai/norman-cli/internal/adapters/token"
	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/norman-ai/norman-cli/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix            = "NORMAN"
	skipWiringAnnotation = "norman.skip-wiring"

	keyProfile            = "profile"
	keyAPIBaseURL         = "api.base_url"
	keyHTTPTimeout        = "http.timeout"
	keyDialTimeout        = "transfer.dial_timeout"
	keySecretsDir         = "secrets.dir"
	keySecretsBackend     = "secrets.backend"
	keySecretsPassDir     = "secrets.pass_dir"
	keyPollModel          = "poll.model_interval"
	keyPollInvocation     = "poll.invocation_interval"
	keyPollTimeout        = "poll.timeout"
	keyLogLevel           = "log.level"
	keyLogFormat          = "log.format"
	keyMetricsAddr        = "metrics.addr"
	secretsBackendAuto    = "auto"
	secretsBackendFile    = "file"
	secretsBackendPass    = "pass"
	metricsShutdownPeriod = 5 * time.Second
)

type app struct {
	configFile string
	cfg        *viper.Viper
	log        *logrus.Logger
	profiles   *application.ProfileService
	metrics    *metricsadapter.Metrics
	metricsSrv *http.Server
}

func newApp() *app {
	return &app{cfg: viper.New()}
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(keyProfile, domain.DefaultProfileName)
	cfg.SetDefault(keyHTTPTimeout, rest.DefaultTimeout)
	cfg.SetDefault(keyDialTimeout, socket.DefaultDialTimeout)
	cfg.SetDefault(keySecretsBackend, secretsBackendAuto)
	cfg.SetDefault(keyPollModel, application.ModelPollInterval)
	cfg.SetDefault(keyPollInvocation, application.InvocationPollInterval)
	cfg.SetDefault(keyPollTimeout, application.DefaultPollTimeout)
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyLogFormat, logging.FormatAuto)
}

func (a *app) wire(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:  a.cfg.GetString(keyLogLevel),
		Format: a.cfg.GetString(keyLogFormat),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log

	repo, err := tomlrepo.NewRepository(a.cfg)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	secrets, err := a.secretStore()
	if err != nil {
		return fmt.Errorf("wire secret store: %w", err)
	}
	a.profiles = application.NewProfileService(repo, secrets)

	a.metrics = metricsadapter.NewMetrics()
	if addr := a.cfg.GetString(keyMetricsAddr); addr != "" {
		if err := a.serveMetrics(addr); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	setDefaults(a.cfg)
	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.cfg.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		keyProfile:     "profile",
		keyLogLevel:    "log-level",
		keyAPIBaseURL:  "api-url",
		keyMetricsAddr: "metrics-addr",
	} {
		if err := a.cfg.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if a.configFile != "" {
		a.cfg.SetConfigFile(a.configFile)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		a.cfg.SetConfigName("config")
		a.cfg.SetConfigType("toml")
		a.cfg.AddConfigPath(filepath.Join(homeDir, tomlrepo.ConfigDir))
	}

	if err := a.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.configFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func (a *app) secretStore() (ports.SecretStore, error) {
	dir := a.cfg.GetString(keySecretsDir)
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, tomlrepo.ConfigDir, "secrets")
	}

	switch backend := a.cfg.GetString(keySecretsBackend); backend {
	case secretsBackendAuto:
		return chainstore.NewPassFirstWithFileFallback(a.cfg.GetString(keySecretsPassDir), dir, a.log)
	case secretsBackendFile:
		return filestore.NewStore(dir), nil
	case secretsBackendPass:
		return passstore.NewStore(a.cfg.GetString(keySecretsPassDir)), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q", backend)
	}
}

func (a *app) serveMetrics(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen for metrics on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.metricsSrv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.metricsSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Warn("metrics server stopped")
		}
	}()
	a.log.WithField("addr", listener.Addr().String()).Info("serving metrics")

	return nil
}

func (a *app) shutdown() error {
	if a.metricsSrv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownPeriod)
	defer cancel()

	return a.metricsSrv.Shutdown(ctx)
}

func (a *app) profileName() string {
	return a.cfg.GetString(keyProfile)
}

// loadProfile returns the active profile. A profile that was never saved is
// returned empty.
func (a *app) loadProfile(ctx context.Context) (domain.Profile, domain.Credentials, error) {
	name := a.profileName()
	profile, creds, err := a.profiles.Load(ctx, name)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{Name: name}, domain.Credentials{}, nil
	}
	return profile, creds, err
}

func (a *app) newClient(ctx context.Context) (*application.Client, domain.Profile, error) {
	profile, creds, err := a.loadProfile(ctx)
	if err != nil {
		return nil, domain.Profile{}, err
	}

	baseURL := a.cfg.GetString(keyAPIBaseURL)
	if baseURL == "" {
		baseURL = profile.APIBaseURL
	}

	restClient := rest.NewClient(rest.Config{
		BaseURL:   baseURL,
		Timeout:   a.cfg.GetDuration(keyHTTPTimeout),
		UserAgent: "norman-cli/" + version.Version,
	}, a.log)

	client := application.NewClient(creds, application.Dependencies{
		Authenticator: rest.NewAuthenticator(restClient),
		TokenDecoder:  token.NewDecoder(),
		Entities:      rest.NewEntityStore(restClient),
		Channel:       rest.NewTransferChannel(restClient, socket.NewWriter(a.cfg.GetDuration(keyDialTimeout), a.log)),
		Outputs:       rest.NewOutputFetcher(restClient),
	},
		application.WithLogger(a.log),
		application.WithMetrics(a.metrics),
		application.WithPollIntervals(a.cfg.GetDuration(keyPollModel), a.cfg.GetDuration(keyPollInvocation)),
		application.WithPollTimeout(a.cfg.GetDuration(keyPollTimeout)),
	)

	return client, profile, nil
}

// withClient runs fn with a fresh client and wipes its session and secrets
// afterwards.
func (a *app) withClient(ctx context.Context, fn func(client *application.Client) error) error {
	client, _, err := a.newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(client)
}

// remember stores the credentials a session manager ended up with in the
// active profile.
func (a *app) remember(ctx context.Context, creds domain.Credentials) error {
	return a.profiles.Save(ctx, application.SaveProfileCommand{
		Name:        a.profileName(),
		Credentials: credentialsUpdate(creds),
	})
}

func credentialsUpdate(creds domain.Credentials) domain.CredentialsUpdate {
	var update domain.CredentialsUpdate
	if creds.AccountID != "" {
		update.AccountID = domain.Some(creds.AccountID)
	}
	if creds.Username != "" {
		update.Username = domain.Some(creds.Username)
	}
	if creds.Email != "" {
		update.Email = domain.Some(creds.Email)
	}
	if !creds.Password.IsZero() {
		update.Password = domain.Some(creds.Password)
	}
	if !creds.APIKey.IsZero() {
		update.APIKey = domain.Some(creds.APIKey)
	}
	return update
}
