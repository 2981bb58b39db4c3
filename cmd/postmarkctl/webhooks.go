package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	postmark "github.com/postmark-go/client-go"
	"github.com/postmark-go/client-go/internal/config"
)

func runWebhooks(ctx context.Context, client ClientInterface, cfg *Config, settings *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s webhooks <list|create|get|edit|delete|purge>", progName)
	}

	switch args[0] {
	case "list":
		return runWebhooksList(ctx, client, cfg, args[1:])
	case "create":
		return runWebhooksCreate(ctx, client, cfg, args[1:])
	case "get":
		return runWebhooksGet(ctx, client, cfg, args[1:])
	case "edit":
		return runWebhooksEdit(ctx, client, cfg, args[1:])
	case "delete":
		return runWebhooksDelete(ctx, client, cfg, args[1:])
	case "purge":
		return runWebhooksPurge(ctx, client, cfg, settings.Rate, args[1:])
	default:
		return fmt.Errorf("unknown webhooks command: %s", args[0])
	}
}

// triggerFlags are the per-kind switches shared by create and edit.
type triggerFlags struct {
	fs            *pflag.FlagSet
	open          *bool
	openFirstOnly *bool
	click         *bool
	delivery      *bool
	bounce        *bool
	bounceContent *bool
	spam          *bool
	spamContent   *bool
	subscription  *bool
}

func addTriggerFlags(fs *pflag.FlagSet) *triggerFlags {
	return &triggerFlags{
		fs:            fs,
		open:          fs.Bool("open", false, "fire on opens"),
		openFirstOnly: fs.Bool("open-first-only", false, "fire on the first open only"),
		click:         fs.Bool("click", false, "fire on link clicks"),
		delivery:      fs.Bool("delivery", false, "fire on deliveries"),
		bounce:        fs.Bool("bounce", false, "fire on bounces"),
		bounceContent: fs.Bool("bounce-content", false, "include the bounced message"),
		spam:          fs.Bool("spam", false, "fire on spam complaints"),
		spamContent:   fs.Bool("spam-content", false, "include the complained-about message"),
		subscription:  fs.Bool("subscription", false, "fire on subscription changes"),
	}
}

func (f *triggerFlags) changed(names ...string) bool {
	for _, n := range names {
		if f.fs.Changed(n) {
			return true
		}
	}
	return false
}

// triggers returns the kinds named on the command line, or nil when
// none were. Kinds without a flag stay nil so an edit leaves them alone.
func (f *triggerFlags) triggers() *postmark.WebhookTriggers {
	t := &postmark.WebhookTriggers{}
	set := false

	if f.changed("open", "open-first-only") {
		t.Open = &postmark.OpenTrigger{Enabled: *f.open, PostFirstOpenOnly: *f.openFirstOnly}
		set = true
	}
	if f.changed("click") {
		t.Click = &postmark.ClickTrigger{Enabled: *f.click}
		set = true
	}
	if f.changed("delivery") {
		t.Delivery = &postmark.DeliveryTrigger{Enabled: *f.delivery}
		set = true
	}
	if f.changed("bounce", "bounce-content") {
		t.Bounce = &postmark.BounceTrigger{Enabled: *f.bounce, IncludeContent: *f.bounceContent}
		set = true
	}
	if f.changed("spam", "spam-content") {
		t.SpamComplaint = &postmark.SpamComplaintTrigger{Enabled: *f.spam, IncludeContent: *f.spamContent}
		set = true
	}
	if f.changed("subscription") {
		t.SubscriptionChange = &postmark.SubscriptionChangeTrigger{Enabled: *f.subscription}
		set = true
	}

	if !set {
		return nil
	}
	return t
}

func parseID(args []string, command string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s webhooks %s ID", progName, command)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid webhook id %q", args[0])
	}
	return id, nil
}

func runWebhooksList(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	fs := newCommandFlagSet("webhooks list", cfg)
	stream := fs.String("stream", "", "only list this message stream")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []postmark.WebhookListOption
	if *stream != "" {
		opts = append(opts, postmark.WithListMessageStream(*stream))
	}

	list, err := client.GetWebhookConfigurations(ctx, opts...)
	if err != nil {
		return fmt.Errorf("list webhooks: %w", err)
	}
	return writeJSON(cfg.Stdout, list)
}

type createOutput struct {
	Webhook *postmark.WebhookConfiguration
	// Secret is the generated value of the secret header, if one was requested.
	Secret string `json:",omitempty"`
}

func runWebhooksCreate(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	fs := newCommandFlagSet("webhooks create", cfg)
	url := fs.String("url", "", "endpoint Postmark will call")
	stream := fs.String("stream", "", "message stream (default outbound)")
	secretHeader := fs.String("secret-header", "", "add this header with a generated secret value")
	user := fs.String("user", "", "basic auth username")
	password := fs.String("password", "", "basic auth password")
	triggers := addTriggerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return fmt.Errorf("webhooks create: --url is required")
	}

	var opts []postmark.WebhookCreateOption
	if *stream != "" {
		opts = append(opts, postmark.WithMessageStream(*stream))
	}
	if *user != "" || *password != "" {
		opts = append(opts, postmark.WithHTTPAuth(*user, *password))
	}
	var out createOutput
	if *secretHeader != "" {
		out.Secret = uuid.NewString()
		opts = append(opts, postmark.WithHTTPHeaders(postmark.HTTPHeader{Name: *secretHeader, Value: out.Secret}))
	}
	if t := triggers.triggers(); t != nil {
		opts = append(opts, postmark.WithTriggers(t))
	}

	wh, err := client.CreateWebhookConfiguration(ctx, *url, opts...)
	if err != nil {
		return fmt.Errorf("create webhook: %w", err)
	}
	out.Webhook = wh
	return writeJSON(cfg.Stdout, out)
}

func runWebhooksGet(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	id, err := parseID(args, "get")
	if err != nil {
		return err
	}

	wh, err := client.GetWebhookConfiguration(ctx, id)
	if err != nil {
		return fmt.Errorf("get webhook %d: %w", id, err)
	}
	return writeJSON(cfg.Stdout, wh)
}

func runWebhooksEdit(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	fs := newCommandFlagSet("webhooks edit", cfg)
	url := fs.String("url", "", "new endpoint")
	clearHeaders := fs.Bool("clear-headers", false, "remove all custom headers")
	triggers := addTriggerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "edit")
	if err != nil {
		return err
	}

	var opts []postmark.WebhookUpdateOption
	if fs.Changed("url") {
		opts = append(opts, postmark.WithUpdateURL(*url))
	}
	if *clearHeaders {
		opts = append(opts, postmark.WithUpdateHTTPHeaders())
	}
	if t := triggers.triggers(); t != nil {
		opts = append(opts, postmark.WithUpdateTriggers(t))
	}
	if len(opts) == 0 {
		return fmt.Errorf("webhooks edit: no fields to change")
	}

	wh, err := client.EditWebhookConfiguration(ctx, id, opts...)
	if err != nil {
		return fmt.Errorf("edit webhook %d: %w", id, err)
	}
	return writeJSON(cfg.Stdout, wh)
}

func runWebhooksDelete(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	id, err := parseID(args, "delete")
	if err != nil {
		return err
	}

	resp, err := client.DeleteWebhookConfiguration(ctx, id)
	if err != nil {
		return fmt.Errorf("delete webhook %d: %w", id, err)
	}
	return writeJSON(cfg.Stdout, resp)
}

type purgeOutput struct {
	Deleted int
}

// runWebhooksPurge deletes every configuration. With a positive limit the
// deletes run one at a time at no more than limit per second.
func runWebhooksPurge(ctx context.Context, client ClientInterface, cfg *Config, limit float64, args []string) error {
	fs := newCommandFlagSet("webhooks purge", cfg)
	stream := fs.String("stream", "", "only purge this message stream")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []postmark.WebhookListOption
	if *stream != "" {
		opts = append(opts, postmark.WithListMessageStream(*stream))
	}

	if limit <= 0 {
		n, err := client.DeleteAllWebhookConfigurations(ctx, opts...)
		if werr := writeJSON(cfg.Stdout, purgeOutput{Deleted: n}); werr != nil {
			return werr
		}
		if err != nil {
			return fmt.Errorf("purge webhooks: %w", err)
		}
		return nil
	}

	list, err := client.GetWebhookConfigurations(ctx, opts...)
	if err != nil {
		return fmt.Errorf("list webhooks: %w", err)
	}

	limiter := rate.NewLimiter(rate.Limit(limit), 1)
	var (
		deleted int
		errs    []error
	)
	for _, wh := range list.Webhooks {
		if err := limiter.Wait(ctx); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := client.DeleteWebhookConfiguration(ctx, wh.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete webhook configuration %d: %w", wh.ID, err))
			continue
		}
		deleted++
	}

	if err := writeJSON(cfg.Stdout, purgeOutput{Deleted: deleted}); err != nil {
		return err
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("purge webhooks: %w", err)
	}
	return nil
}
