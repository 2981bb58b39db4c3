//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	postmark "github.com/postmark-go/client-go"
)

func hookURL(path string) string {
	return "http://www.example.com/" + path + "/" + uuid.NewString()
}

func TestIntegration_CreateWebhookConfiguration(t *testing.T) {
	client := newClient(t)
	cleanupWebhooks(t, client)
	ctx := context.Background()

	url := hookURL("webhook")
	triggers := &postmark.WebhookTriggers{
		Bounce:        &postmark.BounceTrigger{Enabled: true, IncludeContent: true},
		Click:         &postmark.ClickTrigger{Enabled: true},
		Open:          &postmark.OpenTrigger{Enabled: true, PostFirstOpenOnly: true},
		Delivery:      &postmark.DeliveryTrigger{Enabled: true},
		SpamComplaint: &postmark.SpamComplaintTrigger{Enabled: true, IncludeContent: true},
	}

	wh, err := client.CreateWebhookConfiguration(ctx, url,
		postmark.WithMessageStream("outbound"),
		postmark.WithHTTPAuth("testUser", "testPassword"),
		postmark.WithHTTPHeaders(postmark.HTTPHeader{Name: "testName", Value: "testValue"}),
		postmark.WithTriggers(triggers),
	)
	if err != nil {
		t.Fatalf("CreateWebhookConfiguration() error = %v", err)
	}

	t.Logf("Created webhook configuration: %d", wh.ID)

	if wh.ID == 0 {
		t.Error("ID is zero")
	}
	if wh.URL != url {
		t.Errorf("URL = %q, want %q", wh.URL, url)
	}
	if wh.MessageStream != "outbound" {
		t.Errorf("MessageStream = %q, want outbound", wh.MessageStream)
	}
	if wh.HTTPAuth == nil || wh.HTTPAuth.Username != "testUser" || wh.HTTPAuth.Password != "testPassword" {
		t.Errorf("HTTPAuth = %+v", wh.HTTPAuth)
	}
	if len(wh.HTTPHeaders) != 1 || wh.HTTPHeaders[0] != (postmark.HTTPHeader{Name: "testName", Value: "testValue"}) {
		t.Errorf("HTTPHeaders = %+v", wh.HTTPHeaders)
	}
	if *wh.Triggers.Bounce != *triggers.Bounce {
		t.Errorf("Bounce = %+v, want %+v", wh.Triggers.Bounce, triggers.Bounce)
	}
	if *wh.Triggers.Open != *triggers.Open {
		t.Errorf("Open = %+v, want %+v", wh.Triggers.Open, triggers.Open)
	}
	if !wh.Triggers.Click.Enabled || !wh.Triggers.Delivery.Enabled {
		t.Errorf("Click/Delivery = %+v/%+v", wh.Triggers.Click, wh.Triggers.Delivery)
	}
	if *wh.Triggers.SpamComplaint != *triggers.SpamComplaint {
		t.Errorf("SpamComplaint = %+v, want %+v", wh.Triggers.SpamComplaint, triggers.SpamComplaint)
	}
}

func TestIntegration_GetWebhookConfiguration(t *testing.T) {
	client := newClient(t)
	cleanupWebhooks(t, client)
	ctx := context.Background()

	created, err := client.CreateWebhookConfiguration(ctx, hookURL("get"))
	if err != nil {
		t.Fatalf("CreateWebhookConfiguration() error = %v", err)
	}

	got, err := client.GetWebhookConfiguration(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetWebhookConfiguration() error = %v", err)
	}

	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}
	if got.URL != created.URL {
		t.Errorf("URL = %q, want %q", got.URL, created.URL)
	}
	if got.MessageStream != "outbound" {
		t.Errorf("MessageStream = %q, want outbound", got.MessageStream)
	}
}

func TestIntegration_ListWebhookConfigurations(t *testing.T) {
	client := newClient(t)
	cleanupWebhooks(t, client)
	ctx := context.Background()

	if _, err := client.DeleteAllWebhookConfigurations(ctx); err != nil {
		t.Fatalf("DeleteAllWebhookConfigurations() error = %v", err)
	}

	for _, path := range []string{"list-1", "list-2"} {
		if _, err := client.CreateWebhookConfiguration(ctx, hookURL(path)); err != nil {
			t.Fatalf("CreateWebhookConfiguration() error = %v", err)
		}
	}

	list, err := client.GetWebhookConfigurations(ctx)
	if err != nil {
		t.Fatalf("GetWebhookConfigurations() error = %v", err)
	}
	if len(list.Webhooks) != 2 {
		t.Errorf("len(Webhooks) = %d, want 2", len(list.Webhooks))
	}
}

func TestIntegration_DeleteWebhookConfiguration(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.CreateWebhookConfiguration(ctx, hookURL("delete"))
	if err != nil {
		t.Fatalf("CreateWebhookConfiguration() error = %v", err)
	}

	resp, err := client.DeleteWebhookConfiguration(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteWebhookConfiguration() error = %v", err)
	}
	if resp.Status() != postmark.StatusSuccess {
		t.Errorf("Status() = %v, want Success", resp.Status())
	}

	_, err = client.GetWebhookConfiguration(ctx, created.ID)
	var verr *postmark.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("GetWebhookConfiguration() after delete error = %v, want *ValidationError", err)
	}
	if !errors.Is(err, postmark.ErrNotFound) {
		t.Errorf("error %v should match ErrNotFound", err)
	}
}

func TestIntegration_EditWebhookConfiguration(t *testing.T) {
	client := newClient(t)
	cleanupWebhooks(t, client)
	ctx := context.Background()

	old, err := client.CreateWebhookConfiguration(ctx, hookURL("edit"),
		postmark.WithMessageStream("outbound"),
		postmark.WithHTTPAuth("testUser", "testPassword"),
		postmark.WithHTTPHeaders(postmark.HTTPHeader{Name: "testName", Value: "testValue"}),
		postmark.WithTriggers(&postmark.WebhookTriggers{
			Bounce: &postmark.BounceTrigger{Enabled: true, IncludeContent: true},
			Click:  &postmark.ClickTrigger{Enabled: true},
		}),
	)
	if err != nil {
		t.Fatalf("CreateWebhookConfiguration() error = %v", err)
	}

	newURL := hookURL("new-webhook")
	updated, err := client.EditWebhookConfiguration(ctx, old.ID,
		postmark.WithUpdateURL(newURL),
		postmark.WithUpdateHTTPAuth("updatedUser", "updatedPassword"),
		postmark.WithUpdateHTTPHeaders(),
		postmark.WithUpdateTriggers(&postmark.WebhookTriggers{
			Click: &postmark.ClickTrigger{Enabled: false},
		}),
	)
	if err != nil {
		t.Fatalf("EditWebhookConfiguration() error = %v", err)
	}

	if updated.ID != old.ID {
		t.Errorf("ID = %d, want %d", updated.ID, old.ID)
	}
	if updated.MessageStream != old.MessageStream {
		t.Errorf("MessageStream = %q, want %q", updated.MessageStream, old.MessageStream)
	}
	if updated.URL != newURL {
		t.Errorf("URL = %q, want %q", updated.URL, newURL)
	}
	if updated.HTTPAuth == nil || updated.HTTPAuth.Username != "updatedUser" || updated.HTTPAuth.Password != "updatedPassword" {
		t.Errorf("HTTPAuth = %+v", updated.HTTPAuth)
	}
	if len(updated.HTTPHeaders) != 0 {
		t.Errorf("HTTPHeaders = %+v, want empty", updated.HTTPHeaders)
	}
	if updated.Triggers.Click.Enabled {
		t.Error("Click.Enabled should be false")
	}
	if !updated.Triggers.Bounce.Enabled {
		t.Error("Bounce.Enabled should be preserved")
	}
}
