package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/queries"
)

// ErrEmptyURL is returned by Create when the target URL is blank.
var ErrEmptyURL = errors.New("webhooks: url must be a non-empty string")

// ErrEmptyID is returned by Delete when the webhook id is blank.
var ErrEmptyID = errors.New("webhooks: id must be a non-empty string")

// Webhook is a webhook registration on a publication.
type Webhook struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Events    []Event `json:"events"`
	Secret    string  `json:"secret"`
	CreatedAt string  `json:"createdAt"`
}

// WebhookManager defines the interface for webhook registration mutations.
type WebhookManager interface {
	Create(ctx context.Context, host, url string, events []Event, secret string) (*Webhook, error)
	Delete(ctx context.Context, id string) error
}

// Compile-time interface check.
var _ WebhookManager = (*Manager)(nil)

// Manager implements WebhookManager using a GraphQL client. Unlike the read
// operations elsewhere, mutations do not degrade to defaults: a failed
// create or delete is always surfaced as an error.
type Manager struct {
	client graphql.Client
	host   string
}

// NewManager returns a Manager backed by the provided GraphQL client. host is
// the default publication host. The client must carry a personal access
// token for mutations to succeed.
func NewManager(client graphql.Client, host string) *Manager {
	if client == nil {
		panic("graphql client must not be nil")
	}
	return &Manager{client: client, host: host}
}

func (m *Manager) resolveHost(host string) string {
	if strings.TrimSpace(host) == "" {
		return m.host
	}
	return host
}

// publicationIDResponse is the JSON wrapper for the publication-id lookup.
type publicationIDResponse struct {
	Publication struct {
		ID string `json:"id"`
	} `json:"publication"`
}

func (m *Manager) publicationID(ctx context.Context, host string) (string, error) {
	data, err := m.client.Execute(ctx, queries.PublicationID(), map[string]any{"host": host})
	if err != nil {
		return "", err
	}

	var resp publicationIDResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse publication id: %w", err)
	}
	if resp.Publication.ID == "" {
		return "", fmt.Errorf("no publication found for host %q", host)
	}
	return resp.Publication.ID, nil
}

// createResponse is the JSON wrapper for a createWebhook mutation response.
type createResponse struct {
	CreateWebhook struct {
		Webhook *Webhook `json:"webhook"`
	} `json:"createWebhook"`
}

// Create registers url as a webhook on the publication for the given events.
// A nil or empty events slice subscribes to all recognized events. Invalid
// event values are rejected before any network call.
func (m *Manager) Create(ctx context.Context, host, url string, events []Event, secret string) (*Webhook, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}
	if len(events) == 0 {
		events = AllEvents
	}
	for _, e := range events {
		if !IsValidEvent(e) {
			return nil, &InvalidEventError{Value: string(e)}
		}
	}

	pubID, err := m.publicationID(ctx, m.resolveHost(host))
	if err != nil {
		return nil, fmt.Errorf("webhooks create: %w", err)
	}

	eventNames := make([]string, len(events))
	for i, e := range events {
		eventNames[i] = string(e)
	}

	vars := map[string]any{
		"input": map[string]any{
			"publicationId": pubID,
			"url":           url,
			"events":        eventNames,
			"secret":        secret,
		},
	}

	data, err := m.client.Execute(ctx, queries.CreateWebhook(), vars)
	if err != nil {
		return nil, fmt.Errorf("webhooks create: %w", err)
	}

	var resp createResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("webhooks create: parse response: %w", err)
	}
	if resp.CreateWebhook.Webhook == nil {
		return nil, errors.New("webhooks create: mutation returned no webhook")
	}
	return resp.CreateWebhook.Webhook, nil
}

// Delete removes the webhook registration with the given id.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}

	if _, err := m.client.Execute(ctx, queries.DeleteWebhook(), map[string]any{"id": id}); err != nil {
		return fmt.Errorf("webhooks delete: %w", err)
	}
	return nil
}
