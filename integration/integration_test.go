//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	postmark "github.com/postmark-go/client-go"
)

var (
	serverToken string
	baseURL     string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	serverToken = os.Getenv("POSTMARK_SERVER_TOKEN")
	baseURL = os.Getenv("POSTMARK_BASE_URL")

	if serverToken == "" {
		os.Stderr.WriteString("Skipping integration tests: POSTMARK_SERVER_TOKEN not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	if baseURL != "" {
		os.Stderr.WriteString("API URL: " + baseURL + "\n")
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *postmark.Client {
	t.Helper()

	opts := []postmark.Option{
		postmark.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, postmark.WithBaseURL(baseURL))
	}

	client, err := postmark.New(serverToken, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return client
}

// cleanupWebhooks removes every webhook configuration on the server when
// the test finishes.
func cleanupWebhooks(t *testing.T, client *postmark.Client) {
	t.Helper()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := client.DeleteAllWebhookConfigurations(ctx); err != nil {
			t.Logf("cleanup webhooks: %v", err)
		}
	})
}
