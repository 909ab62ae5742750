// Package config provides configuration loading and defaults for the
// hashnode-mcp server and the webhook receiver.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HostFilter holds allowlist and denylist entries for publication hosts.
type HostFilter struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// SafetyConfig groups the host filter used to restrict which publications the
// MCP tools may target.
type SafetyConfig struct {
	Hosts HostFilter `yaml:"hosts"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LogPath   string `yaml:"log_path"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// ServerConfig holds network and authentication settings for the MCP server.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// HashnodeConfig holds connection details for the Hashnode GraphQL API.
type HashnodeConfig struct {
	// Endpoint is the GraphQL endpoint URL. Empty means the public
	// https://gql.hashnode.com endpoint.
	Endpoint string `yaml:"endpoint"`
	// Host is the default publication host, e.g. "blog.example.com" or
	// "example.hashnode.dev".
	Host string `yaml:"host"`
	// Token is a Hashnode personal access token. Optional for public
	// queries; required for drafts and webhook mutations.
	Token string `yaml:"token"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// PaginationConfig holds the default and maximum page sizes for list
// operations.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// Clamp maps a requested page size onto the allowed range: values of zero or
// less mean "use the default", and anything above MaxPageSize is reduced to
// MaxPageSize. Values inside the range pass through unchanged.
func (p PaginationConfig) Clamp(requested int) int {
	size := requested
	if size <= 0 {
		size = p.DefaultPageSize
	}
	if size > p.MaxPageSize {
		size = p.MaxPageSize
	}
	return size
}

// WebhookConfig holds settings for the inbound webhook receiver.
type WebhookConfig struct {
	// Secret is the shared secret used to verify inbound signatures.
	Secret string `yaml:"secret"`
	// Port is the listen port of the webhook receiver daemon.
	Port int `yaml:"port"`
	// Path is the URL path the receiver accepts deliveries on.
	Path string `yaml:"path"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Hashnode   HashnodeConfig   `yaml:"hashnode"`
	Pagination PaginationConfig `yaml:"pagination"`
	Webhook    WebhookConfig    `yaml:"webhook"`
	Safety     SafetyConfig     `yaml:"safety"`
	Audit      AuditConfig      `yaml:"audit"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// Fields absent from the file keep their DefaultConfig values. On error, nil
// is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Hashnode: HashnodeConfig{
			Endpoint: "https://gql.hashnode.com",
			Timeout:  30,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: 10,
			MaxPageSize:     20,
		},
		Webhook: WebhookConfig{
			Port: 8081,
			Path: "/webhooks/hashnode",
		},
		Audit: AuditConfig{
			Enabled: true,
			LogPath: "/config/audit.log",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - HASHNODE_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - HASHNODE_ENDPOINT overrides cfg.Hashnode.Endpoint
//   - HASHNODE_HOST overrides cfg.Hashnode.Host
//   - HASHNODE_TOKEN overrides cfg.Hashnode.Token
//   - HASHNODE_WEBHOOK_SECRET overrides cfg.Webhook.Secret
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("HASHNODE_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if endpoint := os.Getenv("HASHNODE_ENDPOINT"); endpoint != "" {
		cfg.Hashnode.Endpoint = endpoint
	}
	if host := os.Getenv("HASHNODE_HOST"); host != "" {
		cfg.Hashnode.Host = host
	}
	if token := os.Getenv("HASHNODE_TOKEN"); token != "" {
		cfg.Hashnode.Token = token
	}
	if secret := os.Getenv("HASHNODE_WEBHOOK_SECRET"); secret != "" {
		cfg.Webhook.Secret = secret
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or generated)
// and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
