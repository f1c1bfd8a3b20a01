package impl

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
	usecase "github.com/ca-srg/dd-unqueried-metrics/usecase/interface"
)

const (
	usageMessage      = "Usage: ./dd-unqueried-metrics --api-key=<API_KEY> --app-key=<APP_KEY>"
	promptingMessage  = "api_key and app-key parameters not provided, prompting user...\n"
	apiKeyPrompt      = "Please enter your Datadog API Key:"
	applicationPrompt = "Please enter your Datadog Application Key:"
)

// CredentialServiceImpl implements CredentialService
type CredentialServiceImpl struct {
	prompt repository.CredentialPromptRepository
	logger domain.Logger
}

// NewCredentialService creates a new credential service
func NewCredentialService(prompt repository.CredentialPromptRepository, logger domain.Logger) usecase.CredentialService {
	return &CredentialServiceImpl{
		prompt: prompt,
		logger: logger,
	}
}

// Resolve returns credentials from the flags or, when they are invalid, from a single prompt pass
func (s *CredentialServiceImpl) Resolve(ctx context.Context, apiKey, appKey string) (*valueobject.APICredentials, error) {
	creds := valueobject.NewAPICredentials(apiKey, appKey)
	if creds.IsValid() {
		s.logger.Debug(ctx, "Using credentials from command line", domain.NewField("credentials", creds.String()))
		return creds, nil
	}

	s.logger.Debug(ctx, "Command line credentials missing or invalid, prompting",
		domain.NewField("apiKeyValid", valueobject.IsValidKey(apiKey)),
		domain.NewField("appKeyValid", valueobject.IsValidKey(appKey)))

	s.prompt.Notify(usageMessage)
	s.prompt.Notify(promptingMessage)

	enteredAPIKey, err := s.prompt.Prompt(apiKeyPrompt)
	if err != nil {
		return nil, domain.ErrCredentialInput("API key", err)
	}

	enteredAppKey, err := s.prompt.Prompt(applicationPrompt)
	if err != nil {
		return nil, domain.ErrCredentialInput("application key", err)
	}

	creds = valueobject.NewAPICredentials(enteredAPIKey, enteredAppKey)
	// No second prompt: the API rejects whatever is still wrong.
	if !creds.IsValid() {
		s.logger.Warn(ctx, "Entered credentials are not alphanumeric, the request will likely be rejected",
			domain.NewField("apiKeyValid", valueobject.IsValidKey(enteredAPIKey)),
			domain.NewField("appKeyValid", valueobject.IsValidKey(enteredAppKey)))
	}

	return creds, nil
}
