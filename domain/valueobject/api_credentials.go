package valueobject

import "fmt"

// APICredentials holds the Datadog API key and application key pair
type APICredentials struct {
	apiKey string
	appKey string
}

// NewAPICredentials creates a credential pair. The keys are kept as given;
// callers decide what to do with pairs that fail IsValid.
func NewAPICredentials(apiKey, appKey string) *APICredentials {
	return &APICredentials{
		apiKey: apiKey,
		appKey: appKey,
	}
}

// APIKey returns the API key
func (c *APICredentials) APIKey() string {
	return c.apiKey
}

// AppKey returns the application key
func (c *APICredentials) AppKey() string {
	return c.appKey
}

// IsValid reports whether both keys pass IsValidKey
func (c *APICredentials) IsValid() bool {
	return IsValidKey(c.apiKey) && IsValidKey(c.appKey)
}

// String masks both keys so credentials can be logged safely
func (c *APICredentials) String() string {
	return fmt.Sprintf("APICredentials{apiKey: %s, appKey: %s}", maskKey(c.apiKey), maskKey(c.appKey))
}

// IsValidKey reports whether key is non-empty and made only of ASCII letters and digits
func IsValidKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum {
			return false
		}
	}
	return true
}

// maskKey keeps the last four characters of a key
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
