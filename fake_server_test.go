package postmark

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/postmark-go/client-go/internal/api"
)

const testToken = "test-server-token"

// fakePostmark is an in-memory stand-in for the server and webhook
// endpoints of the Postmark API.
type fakePostmark struct {
	mu       sync.Mutex
	server   api.ServerDTO
	webhooks map[int64]*api.WebhookDTO
	order    []int64
	nextID   int64
	streams  map[string]bool
	requests []string
}

func newFakePostmark(t *testing.T) (*fakePostmark, *httptest.Server) {
	t.Helper()

	f := &fakePostmark{
		server: api.ServerDTO{
			ID:                   1,
			Name:                 "integration-server",
			APITokens:            []string{testToken},
			Color:                "yellow",
			InboundSpamThreshold: 5,
			TrackLinks:           "None",
		},
		webhooks: make(map[int64]*api.WebhookDTO),
		nextID:   1000,
		streams:  map[string]bool{"outbound": true, "broadcast": true},
	}

	ts := httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakePostmark) requestLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakePostmark) writeError(w http.ResponseWriter, status, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"ErrorCode": code, "Message": msg})
}

func (f *fakePostmark) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (f *fakePostmark) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Postmark-Server-Token") != testToken {
		f.writeError(w, http.StatusUnauthorized, 10, "Request does not contain a valid Server token.")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	switch {
	case r.URL.Path == "/server":
		f.handleServer(w, r)
	case r.URL.Path == "/webhooks":
		f.handleWebhooks(w, r)
	case strings.HasPrefix(r.URL.Path, "/webhooks/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/webhooks/"), 10, 64)
		if err != nil {
			f.writeError(w, http.StatusUnprocessableEntity, 1400, "Invalid webhook id.")
			return
		}
		f.handleWebhook(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakePostmark) handleServer(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		f.writeJSON(w, f.server)
	case http.MethodPut:
		// Decoding onto the current record leaves absent fields untouched.
		if err := json.NewDecoder(r.Body).Decode(&f.server); err != nil {
			f.writeError(w, http.StatusUnprocessableEntity, 402, "Received invalid JSON input.")
			return
		}
		f.writeJSON(w, f.server)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakePostmark) handleWebhooks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		stream := r.URL.Query().Get("MessageStream")
		resp := api.WebhookListResponseDTO{Webhooks: []*api.WebhookDTO{}}
		for _, id := range f.order {
			wh := f.webhooks[id]
			if stream == "" || wh.MessageStream == stream {
				resp.Webhooks = append(resp.Webhooks, wh)
			}
		}
		f.writeJSON(w, resp)

	case http.MethodPost:
		var req api.CreateWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			f.writeError(w, http.StatusUnprocessableEntity, 402, "Received invalid JSON input.")
			return
		}
		if req.URL == "" || !strings.HasPrefix(req.URL, "http") {
			f.writeError(w, http.StatusUnprocessableEntity, 1400, "Invalid 'Url' value.")
			return
		}
		if req.MessageStream == "" {
			req.MessageStream = "outbound"
		}
		if !f.streams[req.MessageStream] {
			f.writeError(w, http.StatusUnprocessableEntity, 1226, fmt.Sprintf("The message stream '%s' was not found.", req.MessageStream))
			return
		}

		f.nextID++
		wh := &api.WebhookDTO{
			ID:            f.nextID,
			URL:           req.URL,
			MessageStream: req.MessageStream,
			HTTPAuth:      req.HTTPAuth,
			HTTPHeaders:   req.HTTPHeaders,
			Triggers:      mergeTriggers(disabledTriggers(), req.Triggers),
		}
		if wh.HTTPHeaders == nil {
			wh.HTTPHeaders = []api.HeaderDTO{}
		}
		f.webhooks[wh.ID] = wh
		f.order = append(f.order, wh.ID)
		f.writeJSON(w, wh)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakePostmark) handleWebhook(w http.ResponseWriter, r *http.Request, id int64) {
	wh, ok := f.webhooks[id]
	if !ok {
		f.writeError(w, http.StatusUnprocessableEntity, 1402, "Webhook not found.")
		return
	}

	switch r.Method {
	case http.MethodGet:
		f.writeJSON(w, wh)

	case http.MethodPut:
		var req api.UpdateWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			f.writeError(w, http.StatusUnprocessableEntity, 402, "Received invalid JSON input.")
			return
		}
		if req.URL != nil {
			wh.URL = *req.URL
		}
		if req.HTTPAuth != nil {
			wh.HTTPAuth = req.HTTPAuth
		}
		if req.HTTPHeaders != nil {
			wh.HTTPHeaders = *req.HTTPHeaders
		}
		wh.Triggers = mergeTriggers(wh.Triggers, req.Triggers)
		f.writeJSON(w, wh)

	case http.MethodDelete:
		delete(f.webhooks, id)
		for i, oid := range f.order {
			if oid == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
		f.writeJSON(w, api.StatusResponseDTO{ErrorCode: 0, Message: fmt.Sprintf("Webhook %d removed.", id)})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func disabledTriggers() *api.TriggersDTO {
	return &api.TriggersDTO{
		Open:               &api.OpenTriggerDTO{},
		Click:              &api.EnabledTriggerDTO{},
		Delivery:           &api.EnabledTriggerDTO{},
		Bounce:             &api.ContentTriggerDTO{},
		SpamComplaint:      &api.ContentTriggerDTO{},
		SubscriptionChange: &api.EnabledTriggerDTO{},
	}
}

// mergeTriggers replaces every kind present in update and keeps the rest.
func mergeTriggers(current, update *api.TriggersDTO) *api.TriggersDTO {
	merged := *current
	if update == nil {
		return &merged
	}
	if update.Open != nil {
		merged.Open = update.Open
	}
	if update.Click != nil {
		merged.Click = update.Click
	}
	if update.Delivery != nil {
		merged.Delivery = update.Delivery
	}
	if update.Bounce != nil {
		merged.Bounce = update.Bounce
	}
	if update.SpamComplaint != nil {
		merged.SpamComplaint = update.SpamComplaint
	}
	if update.SubscriptionChange != nil {
		merged.SubscriptionChange = update.SubscriptionChange
	}
	return &merged
}

// syncWriter serialises log writes from concurrent requests.
type syncWriter struct {
	mu sync.Mutex
	b  *strings.Builder
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.b.Write(p)
}
