// Command postmarkctl manages the server and webhook configurations of a
// Postmark server from the command line. Results are written to stdout
// as JSON; logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	postmark "github.com/postmark-go/client-go"
	"github.com/postmark-go/client-go/internal/config"
)

const progName = "postmarkctl"

const commandTimeout = 60 * time.Second

const usage = `usage: postmarkctl [flags] <command> [args]

commands:
  server get
  server edit [--name NAME] [--color COLOR] [--spam-threshold N] [--track-opens] [--track-links MODE]
  webhooks list [--stream STREAM]
  webhooks create --url URL [--stream STREAM] [--secret-header NAME] [trigger flags]
  webhooks get ID
  webhooks edit ID [--url URL] [trigger flags]
  webhooks delete ID
  webhooks purge [--stream STREAM]`

// Config holds the I/O streams of a run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ClientInterface is the part of *postmark.Client the commands use.
type ClientInterface interface {
	GetServer(ctx context.Context) (*postmark.Server, error)
	EditServer(ctx context.Context, opts ...postmark.ServerEditOption) (*postmark.Server, error)
	CreateWebhookConfiguration(ctx context.Context, url string, opts ...postmark.WebhookCreateOption) (*postmark.WebhookConfiguration, error)
	GetWebhookConfiguration(ctx context.Context, id int64) (*postmark.WebhookConfiguration, error)
	GetWebhookConfigurations(ctx context.Context, opts ...postmark.WebhookListOption) (*postmark.WebhookConfigurationList, error)
	EditWebhookConfiguration(ctx context.Context, id int64, opts ...postmark.WebhookUpdateOption) (*postmark.WebhookConfiguration, error)
	DeleteWebhookConfiguration(ctx context.Context, id int64) (*postmark.Response, error)
	DeleteAllWebhookConfigurations(ctx context.Context, opts ...postmark.WebhookListOption) (int, error)
}

var clientFactory = func(settings *config.Config, logger zerolog.Logger) (ClientInterface, error) {
	return postmark.New(settings.ServerToken,
		postmark.WithBaseURL(settings.BaseURL),
		postmark.WithTimeout(settings.Timeout),
		postmark.WithLogger(logger),
		postmark.WithBulkConcurrency(settings.Concurrency),
	)
}

var exitFunc = os.Exit

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("%s", usage)
	}

	fs := config.NewFlagSet(progName)
	fs.SetOutput(cfg.Stderr)
	settings, rest, err := config.Load(fs, args[1:])
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%s", usage)
	}

	logger := config.NewLogger(settings, cfg.Stderr)
	client, err := clientFactory(settings, logger)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch rest[0] {
	case "server":
		return runServer(ctx, client, cfg, rest[1:])
	case "webhooks":
		return runWebhooks(ctx, client, cfg, settings, rest[1:])
	default:
		return fmt.Errorf("unknown command: %s", rest[0])
	}
}

func newCommandFlagSet(name string, cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(progName+" "+name, pflag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	return fs
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
