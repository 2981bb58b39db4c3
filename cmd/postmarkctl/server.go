package main

import (
	"context"
	"fmt"

	postmark "github.com/postmark-go/client-go"
)

func runServer(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s server <get|edit>", progName)
	}

	switch args[0] {
	case "get":
		return runServerGet(ctx, client, cfg)
	case "edit":
		return runServerEdit(ctx, client, cfg, args[1:])
	default:
		return fmt.Errorf("unknown server command: %s", args[0])
	}
}

func runServerGet(ctx context.Context, client ClientInterface, cfg *Config) error {
	srv, err := client.GetServer(ctx)
	if err != nil {
		return fmt.Errorf("get server: %w", err)
	}
	return writeJSON(cfg.Stdout, srv)
}

func runServerEdit(ctx context.Context, client ClientInterface, cfg *Config, args []string) error {
	fs := newCommandFlagSet("server edit", cfg)
	name := fs.String("name", "", "server name")
	color := fs.String("color", "", "server color")
	spamThreshold := fs.Int("spam-threshold", 0, "inbound spam threshold")
	trackOpens := fs.Bool("track-opens", false, "track opens by default")
	trackLinks := fs.String("track-links", "", "None, HtmlAndText, HtmlOnly or TextOnly")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags given on the command line are sent.
	var opts []postmark.ServerEditOption
	if fs.Changed("name") {
		opts = append(opts, postmark.WithServerName(*name))
	}
	if fs.Changed("color") {
		opts = append(opts, postmark.WithServerColor(postmark.ServerColor(*color)))
	}
	if fs.Changed("spam-threshold") {
		opts = append(opts, postmark.WithInboundSpamThreshold(*spamThreshold))
	}
	if fs.Changed("track-opens") {
		opts = append(opts, postmark.WithTrackOpens(*trackOpens))
	}
	if fs.Changed("track-links") {
		opts = append(opts, postmark.WithTrackLinks(postmark.LinkTracking(*trackLinks)))
	}
	if len(opts) == 0 {
		return fmt.Errorf("server edit: no fields to change")
	}

	srv, err := client.EditServer(ctx, opts...)
	if err != nil {
		return fmt.Errorf("edit server: %w", err)
	}
	return writeJSON(cfg.Stdout, srv)
}
