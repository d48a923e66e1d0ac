package ports

import "context"

// SecretsRepository reads credentials from the secrets storage.
type SecretsRepository interface {
	// FetchSecret returns the secret payload stored under the given path.
	FetchSecret(ctx context.Context, path string) (map[string]any, error)
}
