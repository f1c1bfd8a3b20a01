package impl

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_Resolve_ValidFlags(t *testing.T) {
	prompt := new(MockCredentialPrompt)
	logger := &MockLogger{}
	service := NewCredentialService(prompt, logger)

	creds, err := service.Resolve(context.Background(), "abc123", "DEF456")

	require.NoError(t, err)
	assert.Equal(t, "abc123", creds.APIKey())
	assert.Equal(t, "DEF456", creds.AppKey())
	assert.Empty(t, prompt.notices)
	prompt.AssertNotCalled(t, "Prompt")
}

func TestCredentialService_Resolve_PromptsWhenInvalid(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		appKey string
	}{
		{name: "both missing", apiKey: "", appKey: ""},
		{name: "api key missing", apiKey: "", appKey: "def456"},
		{name: "app key has punctuation", apiKey: "abc123", appKey: "def-456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := new(MockCredentialPrompt)
			logger := &MockLogger{}
			service := NewCredentialService(prompt, logger)

			prompt.On("Prompt", apiKeyPrompt).Return("enteredApi1", nil).Once()
			prompt.On("Prompt", applicationPrompt).Return("enteredApp2", nil).Once()

			creds, err := service.Resolve(context.Background(), tt.apiKey, tt.appKey)

			require.NoError(t, err)
			assert.Equal(t, "enteredApi1", creds.APIKey())
			assert.Equal(t, "enteredApp2", creds.AppKey())
			assert.Equal(t, []string{usageMessage, promptingMessage}, prompt.notices)
			assert.Empty(t, logger.warnCalls)
			prompt.AssertExpectations(t)
		})
	}
}

func TestCredentialService_Resolve_DoesNotRepromptInvalidInput(t *testing.T) {
	prompt := new(MockCredentialPrompt)
	logger := &MockLogger{}
	service := NewCredentialService(prompt, logger)

	prompt.On("Prompt", apiKeyPrompt).Return("", nil).Once()
	prompt.On("Prompt", applicationPrompt).Return("not valid!", nil).Once()

	creds, err := service.Resolve(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "", creds.APIKey())
	assert.Equal(t, "not valid!", creds.AppKey())
	assert.False(t, creds.IsValid())
	assert.Len(t, logger.warnCalls, 1)
	prompt.AssertNumberOfCalls(t, "Prompt", 2)
}

func TestCredentialService_Resolve_ReadFailure(t *testing.T) {
	t.Run("api key read fails", func(t *testing.T) {
		prompt := new(MockCredentialPrompt)
		service := NewCredentialService(prompt, &MockLogger{})

		prompt.On("Prompt", apiKeyPrompt).Return("", io.ErrUnexpectedEOF).Once()

		creds, err := service.Resolve(context.Background(), "", "")

		require.Error(t, err)
		assert.Nil(t, creds)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeCredentialInput))
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		prompt.AssertNotCalled(t, "Prompt", applicationPrompt)
	})

	t.Run("application key read fails", func(t *testing.T) {
		prompt := new(MockCredentialPrompt)
		service := NewCredentialService(prompt, &MockLogger{})

		prompt.On("Prompt", apiKeyPrompt).Return("abc", nil).Once()
		prompt.On("Prompt", applicationPrompt).Return("", io.EOF).Once()

		_, err := service.Resolve(context.Background(), "", "")

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeCredentialInput))
		assert.Contains(t, err.Error(), "application key")
	})
}
