// Package postmark provides a Go client for the Postmark transactional
// email API, scoped to a single server token.
//
// Most of the surface manages the server record and its webhook
// configurations. Every method maps to one HTTP request and none of them
// retry.
//
// Basic usage:
//
//	client, err := postmark.New(os.Getenv("POSTMARK_SERVER_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register a webhook for bounces on the default stream
//	wh, err := client.CreateWebhookConfiguration(ctx, "https://example.com/hook",
//	    postmark.WithTriggers(&postmark.WebhookTriggers{
//	        Bounce: &postmark.BounceTrigger{Enabled: true},
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Enable clicks too; the bounce trigger is left as it is
//	wh, err = client.EditWebhookConfiguration(ctx, wh.ID,
//	    postmark.WithUpdateTriggers(&postmark.WebhookTriggers{
//	        Click: &postmark.ClickTrigger{Enabled: true},
//	    }),
//	)
//
// # Errors
//
// A response outside the 2xx range is returned as a *ValidationError
// carrying the service's ErrorCode and Message. A request that never got
// a response is returned as a *TransportError. Both can be matched
// against ErrUnauthorized, ErrNotFound and ErrRateLimited with errors.Is.
package postmark
