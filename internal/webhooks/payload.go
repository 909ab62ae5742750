package webhooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON marks a payload that could not be parsed as JSON.
var ErrInvalidJSON = errors.New("webhooks: payload is not valid JSON")

// MissingFieldsError marks a payload lacking one or more required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "webhooks: payload is missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidEventError marks a payload whose event value is not one of the six
// recognized types.
type InvalidEventError struct {
	Value string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("webhooks: unrecognized event %q", e.Value)
}

// PayloadPost references the post a delivery concerns.
type PayloadPost struct {
	ID string `json:"id"`
}

// PayloadStaticPage references the static page a delivery concerns.
type PayloadStaticPage struct {
	ID string `json:"id"`
}

// PayloadPublication references the publication that emitted the delivery.
type PayloadPublication struct {
	ID string `json:"id"`
}

// PayloadData carries the event's subject: exactly one of Post or StaticPage
// is set for the corresponding event family. Deeper fields are not validated.
type PayloadData struct {
	Post       *PayloadPost       `json:"post,omitempty"`
	StaticPage *PayloadStaticPage `json:"staticPage,omitempty"`
}

// Payload is a structurally validated webhook delivery.
type Payload struct {
	Event       Event               `json:"event"`
	Data        *PayloadData        `json:"data"`
	Publication *PayloadPublication `json:"publication"`
	Timestamp   int64               `json:"timestamp"`
}

// ParsePayload parses raw as JSON and validates its structure. It fails with
// an ErrInvalidJSON-wrapped error on malformed JSON, a *MissingFieldsError
// when event, data, publication, or timestamp is absent, and an
// *InvalidEventError when the event value is not one of the six recognized
// types. The payload is otherwise returned unchanged.
func ParsePayload(raw []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := ValidatePayload(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ValidatePayload checks an already-parsed payload the same way ParsePayload
// does after decoding.
func ValidatePayload(p *Payload) error {
	if p == nil {
		return &MissingFieldsError{Fields: []string{"event", "data", "publication", "timestamp"}}
	}

	var missing []string
	if p.Event == "" {
		missing = append(missing, "event")
	}
	if p.Data == nil {
		missing = append(missing, "data")
	}
	if p.Publication == nil {
		missing = append(missing, "publication")
	}
	if p.Timestamp == 0 {
		missing = append(missing, "timestamp")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !IsValidEvent(p.Event) {
		return &InvalidEventError{Value: string(p.Event)}
	}
	return nil
}
