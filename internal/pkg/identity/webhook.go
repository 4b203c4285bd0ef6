package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// Event types the mirror cares about. Anything else is acknowledged and
// dropped.
const (
	EventUserCreated = "user.created"
	EventUserDeleted = "user.deleted"
)

var ErrMissingUserID = errors.New("webhook event has no user id")

// WebhookEvent is the envelope of an identity-provider webhook. Data stays
// raw because its shape differs per event type.
type WebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// UserID extracts the provider-side user id from the event payload.
func (e *WebhookEvent) UserID() (string, error) {
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return "", err
	}
	if data.ID == "" {
		return "", ErrMissingUserID
	}
	return data.ID, nil
}

// VerifyWebhook checks the svix signature headers against the raw payload
// and, when valid, parses the event envelope.
func VerifyWebhook(secret string, payload []byte, headers http.Header) (*WebhookEvent, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	if err := wh.Verify(payload, headers); err != nil {
		return nil, err
	}

	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
