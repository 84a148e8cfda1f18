package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cmddoc/internal/logging"
	"cmddoc/internal/registry"
	"cmddoc/internal/services"
)

// DefaultBaseURL is the versioned REST root used when none is configured.
const DefaultBaseURL = "https://discord.com/api/v9"

const defaultUserAgent = "DiscordBot (cmddoc, 1.0)"

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 64 * 1024

// Lister lists registered commands for an application.
type Lister interface {
	GlobalCommands(ctx context.Context) ([]registry.ApplicationCommand, error)
	GuildCommands(ctx context.Context, guildID string) ([]registry.ApplicationCommand, error)
}

// Client talks to the Discord REST API with a bot token.
type Client struct {
	token         string
	applicationID string
	baseURL       string
	userAgent     string
	httpClient    *http.Client
	logger        *slog.Logger
}

var _ Lister = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent = strings.TrimSpace(agent); agent != "" {
			c.userAgent = agent
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Discord client. An empty baseURL selects DefaultBaseURL.
func New(token, applicationID, baseURL string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("discord bot token required")
	}
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return nil, errors.New("discord application id required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		token:         token,
		applicationID: applicationID,
		baseURL:       strings.TrimRight(baseURL, "/"),
		userAgent:     defaultUserAgent,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "discord")
	return client, nil
}

// GlobalCommands lists the application's global commands.
func (c *Client) GlobalCommands(ctx context.Context) ([]registry.ApplicationCommand, error) {
	path := "/applications/" + url.PathEscape(c.applicationID) + "/commands"
	return c.listCommands(ctx, "list global commands", path)
}

// GuildCommands lists the commands registered for a single guild.
func (c *Client) GuildCommands(ctx context.Context, guildID string) ([]registry.ApplicationCommand, error) {
	guildID = strings.TrimSpace(guildID)
	if guildID == "" {
		return nil, errors.New("guild id must not be empty")
	}
	path := "/applications/" + url.PathEscape(c.applicationID) + "/guilds/" + url.PathEscape(guildID) + "/commands"
	return c.listCommands(services.WithGuildID(ctx, guildID), "list guild commands", path)
}

func (c *Client) listCommands(ctx context.Context, operation, path string) ([]registry.ApplicationCommand, error) {
	ctx = services.WithApplicationID(ctx, c.applicationID)
	logger := logging.WithContext(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "discord", operation, fmt.Sprintf("latency=%v", latency), err)
	}
	defer resp.Body.Close()

	logger.Debug("discord response",
		logging.Args(
			logging.Int("status", resp.StatusCode),
			logging.Duration("latency", latency),
			logging.String("path", path),
		)...,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, classify(operation, newAPIError(resp.StatusCode, body))
	}

	cmds, err := registry.Decode(resp.Body, registry.FormatJSON)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "discord", operation, "decode response", err)
	}
	if cmds == nil {
		cmds = []registry.ApplicationCommand{}
	}
	logger.Info("fetched commands", logging.Args(logging.Int(logging.FieldCommandCount, len(cmds)))...)
	return cmds, nil
}
