package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// VerifyWebhookSignature checks the detached HMAC-SHA256 signature over the
// raw body against the shared webhook secret, in constant time.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	return VerifySignature(body, signature, c.webhookSecret)
}

// VerifySignature is the signature check used by VerifyWebhookSignature,
// exposed for configurations that hold the secret elsewhere.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignBody computes the webhook signature for a body. Used by tests and by
// local tooling that replays events.
func SignBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseEvent unmarshals a verified webhook body into an Event envelope.
func ParseEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, errors.Wrap(err, "failed to unmarshal webhook event")
	}
	return event, nil
}
