// Package interpreter maps raw command text to a structured Intent. Two
// interchangeable strategies implement the same contract: a fixed pattern
// table and a model-backed client talking to an inference HTTP server.
package interpreter

import (
	"context"
	"errors"

	"voiceplc/internal/models"
)

var (
	// ErrUnrecognizedCommand is returned when no strategy can map the input
	// to an Intent. The wrapped message carries the original text.
	ErrUnrecognizedCommand = errors.New("unrecognized command")

	// ErrInterpreterTimeout is returned when the model backend does not
	// answer within the configured deadline. Retryable: the engine stays
	// ready for the next command.
	ErrInterpreterTimeout = errors.New("interpreter timed out")
)

// Interpreter converts free-form text into an Intent. Implementations must
// never guess: input they cannot map cleanly fails with
// ErrUnrecognizedCommand.
type Interpreter interface {
	Interpret(ctx context.Context, text string) (models.Intent, error)
}
