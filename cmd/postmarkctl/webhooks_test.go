package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	postmark "github.com/postmark-go/client-go"
)

const webhookJSON = `{"ID":12,"Url":"http://new","MessageStream":"outbound","HttpHeaders":[],"Triggers":{"Click":{"Enabled":true}}}`

func TestRun_WebhooksEditSendsOnlyChangedKinds(t *testing.T) {
	ts, requests := newRecordingServer(t, webhookJSON)

	cfg, stdout := testConfig()
	args := append(globalArgs(ts.URL), "webhooks", "edit", "--url", "http://new", "--click", "12")
	if err := run(args, cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := requests()
	if len(got) != 1 {
		t.Fatalf("requests = %d, want 1", len(got))
	}
	if got[0].Method != "PUT" || got[0].Path != "/webhooks/12" {
		t.Errorf("request = %s %s", got[0].Method, got[0].Path)
	}
	want := `{"Url":"http://new","Triggers":{"Click":{"Enabled":true}}}`
	if strings.TrimSpace(got[0].Body) != want {
		t.Errorf("body = %s, want %s", got[0].Body, want)
	}

	var wh postmark.WebhookConfiguration
	if err := json.Unmarshal(stdout.Bytes(), &wh); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if wh.ID != 12 || !wh.Triggers.Click.Enabled {
		t.Errorf("webhook = %+v", wh)
	}
}

func TestRun_WebhooksEditClearHeaders(t *testing.T) {
	ts, requests := newRecordingServer(t, webhookJSON)

	cfg, _ := testConfig()
	if err := run(append(globalArgs(ts.URL), "webhooks", "edit", "--clear-headers", "12"), cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if body := strings.TrimSpace(requests()[0].Body); body != `{"HttpHeaders":[]}` {
		t.Errorf("body = %s", body)
	}
}

func TestRun_WebhooksCreate(t *testing.T) {
	ts, requests := newRecordingServer(t, webhookJSON)

	cfg, stdout := testConfig()
	args := append(globalArgs(ts.URL), "webhooks", "create",
		"--url", "http://new", "--stream", "outbound", "--secret-header", "X-Hook-Secret",
		"--bounce", "--bounce-content")
	if err := run(args, cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var out struct {
		Webhook *postmark.WebhookConfiguration
		Secret  string
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if _, err := uuid.Parse(out.Secret); err != nil {
		t.Errorf("secret %q is not a uuid: %v", out.Secret, err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(requests()[0].Body), &body); err != nil {
		t.Fatalf("parse request: %v", err)
	}
	headers, _ := body["HttpHeaders"].([]any)
	if len(headers) != 1 {
		t.Fatalf("HttpHeaders = %v, want one header", body["HttpHeaders"])
	}
	if h := headers[0].(map[string]any); h["Name"] != "X-Hook-Secret" || h["Value"] != out.Secret {
		t.Errorf("header = %v", h)
	}
	triggers := body["Triggers"].(map[string]any)
	if _, ok := triggers["Click"]; ok {
		t.Error("Click should not be sent")
	}
	if b := triggers["Bounce"].(map[string]any); b["Enabled"] != true || b["IncludeContent"] != true {
		t.Errorf("Bounce = %v", b)
	}
}

func TestRunWebhooksCreate_RequiresURL(t *testing.T) {
	cfg, _ := testConfig()
	err := runWebhooksCreate(context.Background(), &mockClient{}, cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "--url is required") {
		t.Errorf("runWebhooksCreate() error = %v", err)
	}
}

func TestRunWebhooksGet_InvalidID(t *testing.T) {
	cfg, _ := testConfig()

	for _, args := range [][]string{nil, {"abc"}, {"0"}, {"1", "2"}} {
		if err := runWebhooksGet(context.Background(), &mockClient{}, cfg, args); err == nil {
			t.Errorf("runWebhooksGet(%v) should fail", args)
		}
	}
}

func TestRunWebhooksGet_NotFound(t *testing.T) {
	client := &mockClient{
		getFn: func(ctx context.Context, id int64) (*postmark.WebhookConfiguration, error) {
			return nil, &postmark.ValidationError{StatusCode: 422, ErrorCode: 1402, Message: "Webhook not found."}
		},
	}
	cfg, _ := testConfig()

	err := runWebhooksGet(context.Background(), client, cfg, []string{"5"})
	if !errors.Is(err, postmark.ErrNotFound) {
		t.Errorf("runWebhooksGet() error = %v, want ErrNotFound", err)
	}
}

func TestRunWebhooksDelete(t *testing.T) {
	var deleted int64
	client := &mockClient{
		deleteFn: func(ctx context.Context, id int64) (*postmark.Response, error) {
			deleted = id
			return &postmark.Response{Message: "Webhook 9 removed."}, nil
		},
	}
	cfg, stdout := testConfig()

	if err := runWebhooksDelete(context.Background(), client, cfg, []string{"9"}); err != nil {
		t.Fatalf("runWebhooksDelete() error = %v", err)
	}
	if deleted != 9 {
		t.Errorf("deleted = %d, want 9", deleted)
	}
	if !strings.Contains(stdout.String(), "Webhook 9 removed.") {
		t.Errorf("output = %s", stdout.String())
	}
}

func TestRunWebhooksPurge_Unthrottled(t *testing.T) {
	client := &mockClient{
		deleteAllFn: func(ctx context.Context, opts ...postmark.WebhookListOption) (int, error) {
			return 3, nil
		},
	}
	cfg, stdout := testConfig()

	if err := runWebhooksPurge(context.Background(), client, cfg, 0, nil); err != nil {
		t.Fatalf("runWebhooksPurge() error = %v", err)
	}
	if !strings.Contains(stdout.String(), `"Deleted": 3`) {
		t.Errorf("output = %s", stdout.String())
	}
}

func TestRunWebhooksPurge_Throttled(t *testing.T) {
	var deleted []int64
	client := &mockClient{
		listFn: func(ctx context.Context, opts ...postmark.WebhookListOption) (*postmark.WebhookConfigurationList, error) {
			return &postmark.WebhookConfigurationList{Webhooks: []*postmark.WebhookConfiguration{{ID: 1}, {ID: 2}, {ID: 3}}}, nil
		},
		deleteFn: func(ctx context.Context, id int64) (*postmark.Response, error) {
			if id == 2 {
				return nil, errors.New("boom")
			}
			deleted = append(deleted, id)
			return &postmark.Response{}, nil
		},
	}
	cfg, stdout := testConfig()

	err := runWebhooksPurge(context.Background(), client, cfg, 1000, nil)
	if err == nil || !strings.Contains(err.Error(), "delete webhook configuration 2") {
		t.Errorf("runWebhooksPurge() error = %v", err)
	}
	if len(deleted) != 2 {
		t.Errorf("deleted = %v, want [1 3]", deleted)
	}
	if !strings.Contains(stdout.String(), `"Deleted": 2`) {
		t.Errorf("output = %s", stdout.String())
	}
}

func TestTriggerFlags_NoneChanged(t *testing.T) {
	cfg, _ := testConfig()
	fs := newCommandFlagSet("test", cfg)
	flags := addTriggerFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if flags.triggers() != nil {
		t.Error("triggers() should be nil when no trigger flag is given")
	}
}

func TestTriggerFlags_ExplicitFalse(t *testing.T) {
	cfg, _ := testConfig()
	fs := newCommandFlagSet("test", cfg)
	flags := addTriggerFlags(fs)
	if err := fs.Parse([]string{"--open=false", "--spam-content"}); err != nil {
		t.Fatal(err)
	}

	got := flags.triggers()
	if got == nil || got.Open == nil || got.Open.Enabled {
		t.Fatalf("Open = %+v, want disabled kind", got)
	}
	if got.SpamComplaint == nil || !got.SpamComplaint.IncludeContent {
		t.Errorf("SpamComplaint = %+v", got.SpamComplaint)
	}
	if got.Click != nil || got.Bounce != nil {
		t.Error("unset kinds should stay nil")
	}
}
