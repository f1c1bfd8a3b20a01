package repository

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
)

// StdinCredentialPromptRepository prompts on a writer and reads answers line by line
type StdinCredentialPromptRepository struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdinCredentialPromptRepository creates a prompt reading from in and writing to out
func NewStdinCredentialPromptRepository(in io.Reader, out io.Writer) repository.CredentialPromptRepository {
	return &StdinCredentialPromptRepository{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Notify writes message followed by a newline
func (r *StdinCredentialPromptRepository) Notify(message string) {
	_, _ = fmt.Fprintln(r.writer, message)
}

// Prompt writes message and reads one line. End of input yields whatever was
// read so far, possibly an empty string; only read failures are errors.
func (r *StdinCredentialPromptRepository) Prompt(message string) (string, error) {
	_, _ = fmt.Fprintln(r.writer, message)

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}
