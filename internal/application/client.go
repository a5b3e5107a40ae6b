package application

import (
	"context"
	"time"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// Dependencies are the remote collaborators a Client talks to.
type Dependencies struct {
	Authenticator ports.Authenticator
	TokenDecoder  ports.TokenDecoder
	Entities      ports.EntityStore
	Channel       ports.TransferChannel
	Outputs       ports.OutputFetcher
}

type clientOptions struct {
	clock              ports.Clock
	log                logrus.FieldLogger
	metrics            ports.TransferMetrics
	modelInterval      time.Duration
	invocationInterval time.Duration
	pollTimeout        time.Duration
}

type Option func(*clientOptions)

func WithClock(clock ports.Clock) Option {
	return func(o *clientOptions) { o.clock = clock }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *clientOptions) { o.log = log }
}

func WithMetrics(metrics ports.TransferMetrics) Option {
	return func(o *clientOptions) { o.metrics = metrics }
}

func WithPollIntervals(model, invocation time.Duration) Option {
	return func(o *clientOptions) {
		if model > 0 {
			o.modelInterval = model
		}
		if invocation > 0 {
			o.invocationInterval = invocation
		}
	}
}

func WithPollTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.pollTimeout = timeout
		}
	}
}

// Client uploads models and invokes them on behalf of one set of credentials.
type Client struct {
	sessions  *SessionManager
	entities  ports.EntityStore
	outputs   ports.OutputFetcher
	transfers *TransferOrchestrator
	poller    *ConvergencePoller
	log       logrus.FieldLogger

	modelInterval      time.Duration
	invocationInterval time.Duration
	pollTimeout        time.Duration
}

func NewClient(credentials domain.Credentials, deps Dependencies, opts ...Option) *Client {
	options := clientOptions{
		clock:              ports.SystemClock{},
		log:                logrus.StandardLogger(),
		metrics:            ports.NopMetrics{},
		modelInterval:      ModelPollInterval,
		invocationInterval: InvocationPollInterval,
		pollTimeout:        DefaultPollTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	sessions := NewSessionManager(deps.Authenticator, deps.TokenDecoder, NewCredentialStore(credentials), options.clock, options.log)

	return &Client{
		sessions:           sessions,
		entities:           deps.Entities,
		outputs:            deps.Outputs,
		transfers:          NewTransferOrchestrator(sessions, deps.Channel, options.metrics, options.log),
		poller:             NewConvergencePoller(sessions, deps.Entities, options.clock, options.metrics, options.log),
		log:                options.log,
		modelInterval:      options.modelInterval,
		invocationInterval: options.invocationInterval,
		pollTimeout:        options.pollTimeout,
	}
}

func (c *Client) Sessions() *SessionManager {
	return c.sessions
}

func (c *Client) Session() domain.Session {
	return c.sessions.Session()
}

func (c *Client) UpdateCredentials(update domain.CredentialsUpdate) {
	c.sessions.UpdateCredentials(update)
}

func (c *Client) GenerateAPIKey(ctx context.Context) (domain.Secret, error) {
	return c.sessions.GenerateAPIKey(ctx)
}

func (c *Client) Close() {
	c.sessions.Close()
}

// authorized returns a session whose token is valid for the next call.
func (c *Client) authorized(ctx context.Context) (domain.Session, error) {
	return c.sessions.EnsureValid(ctx)
}
