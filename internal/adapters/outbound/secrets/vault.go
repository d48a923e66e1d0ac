package secrets

import (
	"context"
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/hashicorp/vault/api"
)

// VaultRepository reads secrets from a HashiCorp Vault KV v2 mount.
type VaultRepository struct {
	client    *api.Client
	mountPath string
}

// NewClient builds a Vault API client from the secrets storage settings.
func NewClient(cfg config.SecretsStorage) (*api.Client, error) {
	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = cfg.Address
	vaultConfig.Timeout = cfg.Timeout
	vaultConfig.MaxRetries = int(cfg.MaxRetries)

	if cfg.TLSSkipVerify {
		if err := vaultConfig.ConfigureTLS(&api.TLSConfig{Insecure: true}); err != nil {
			return nil, fmt.Errorf("configuring vault TLS: %w", err)
		}
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	return client, nil
}

// NewVaultRepository creates a repository reading from the given mount.
func NewVaultRepository(client *api.Client, mountPath string) *VaultRepository {
	return &VaultRepository{
		client:    client,
		mountPath: mountPath,
	}
}

// SetToken replaces the client token, e.g. after a re-authentication.
func (r *VaultRepository) SetToken(token string) {
	r.client.SetToken(token)
}

// FetchSecret returns the data of the KV v2 secret stored under path.
func (r *VaultRepository) FetchSecret(ctx context.Context, path string) (map[string]any, error) {
	secret, err := r.client.KVv2(r.mountPath).Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading secret %q: %w", path, err)
	}

	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("secret %q has no data", path)
	}

	return secret.Data, nil
}
