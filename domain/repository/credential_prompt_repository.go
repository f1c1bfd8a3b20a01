package repository

// CredentialPromptRepository talks to an interactive user to obtain credentials
type CredentialPromptRepository interface {
	// Notify shows an informational line to the user
	Notify(message string)

	// Prompt shows message and returns the next line entered, with surrounding whitespace removed
	Prompt(message string) (string, error)
}
