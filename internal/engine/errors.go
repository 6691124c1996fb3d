package engine

import "errors"

// Fatal pipeline errors. Only these unwind past the pipeline boundary; every
// other failure is absorbed into logs or a degraded payload.
var (
	// ErrInvalidInput means the request failed the pre-flight check. No
	// collaborator is invoked and no partial output is produced.
	ErrInvalidInput = errors.New("engine: insufficient input")

	// ErrInferenceUnavailable means the AI provider returned no text.
	ErrInferenceUnavailable = errors.New("engine: inference provider unavailable")

	// ErrMalformedResponse means the provider's text could not be parsed as
	// the expected structure after stripping code fences.
	ErrMalformedResponse = errors.New("engine: malformed inference response")

	// ErrSimulatedContent means the parsed analysis contains placeholder or
	// templated content. No synthetic data may substitute for a real result.
	ErrSimulatedContent = errors.New("engine: simulated content detected")
)
