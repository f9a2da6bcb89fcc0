package notionhub

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/linminwei/notion-hub-go/api"
	"github.com/linminwei/notion-hub-go/credential"
	"github.com/linminwei/notion-hub-go/session"
)

// Console is the assembled client core: the typed API client, the session,
// and the route guard, all sharing one credential store.
type Console struct {
	API         *api.Client
	Session     *session.Session
	Guard       *Guard
	Credentials credential.Store
}

// Builder assembles a [Console]. Configure it with the With* methods and
// call Build once.
type Builder struct {
	config     Config
	redis      redis.UniversalClient
	httpClient *http.Client
	creds      credential.Store
	notifier   Notifier
	logger     *slog.Logger
	built      bool
}

// New creates a Builder carrying the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis supplies the Redis client backing the credential store.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient replaces the HTTP client used for backend calls.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithCredentialStore replaces the credential store; Redis configuration is
// then ignored.
func (b *Builder) WithCredentialStore(store credential.Store) *Builder {
	b.creds = store
	return b
}

// WithNotifier supplies the hosting application's message surface.
func (b *Builder) WithNotifier(n Notifier) *Builder {
	b.notifier = n
	return b
}

// WithLogger supplies the structured logger shared by every component.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration, wires the components, and returns the
// assembled [Console].
func (b *Builder) Build() (*Console, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := b.notifier
	if notifier == nil {
		notifier = NoopNotifier{}
	}

	creds := b.creds
	if creds == nil {
		switch {
		case b.redis != nil:
			creds = credential.NewRedisStore(b.redis, b.config.Redis.KeyPrefix, logger)
		case b.config.Redis.Addr != "":
			client := redis.NewClient(&redis.Options{
				Addr:     b.config.Redis.Addr,
				Password: b.config.Redis.Password,
				DB:       b.config.Redis.DB,
			})
			creds = credential.NewRedisStore(client, b.config.Redis.KeyPrefix, logger)
		default:
			return nil, ErrMissingCredentialStore
		}
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.API.Timeout}
	}

	client, err := api.NewClient(api.Options{
		BaseURL:     b.config.API.BaseURL,
		HTTPClient:  httpClient,
		Credentials: creds,
		Logger:      logger,
		OnUnauthorized: func(ctx context.Context) {
			notifier.Notify(LevelError, sessionExpiredNotice)
		},
	})
	if err != nil {
		return nil, err
	}

	sess, err := session.New(session.Options{
		Auth:           client,
		Menu:           client,
		Credentials:    creds,
		Logger:         logger,
		AdminBypass:    b.config.Security.AdminBypass,
		PublicPaths:    b.config.Guard.PublicPaths,
		UniversalPaths: b.config.Guard.UniversalPaths,
	})
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Console{
		API:         client,
		Session:     sess,
		Guard: &Guard{
			session:   sess,
			creds:     creds,
			notifier:  notifier,
			log:       logger,
			homePath:  b.config.Guard.HomePath,
			loginPath: b.config.Guard.LoginPath,
		},
		Credentials: creds,
	}, nil
}
