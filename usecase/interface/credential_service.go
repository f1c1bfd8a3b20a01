package usecase

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
)

// CredentialService defines the interface for obtaining Datadog credentials
type CredentialService interface {
	// Resolve returns the given keys when both are valid. Otherwise it prompts
	// the user once and returns whatever was entered, valid or not.
	Resolve(ctx context.Context, apiKey, appKey string) (*valueobject.APICredentials, error)
}
