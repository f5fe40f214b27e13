package domain

import "errors"

var (
	MessageSuccessComplete = "Completion generated successfully"
	MessageFailedComplete  = "Failed to generate completion"
	MessagePromptRequired  = "Prompt is required"

	ErrEmptyCompletion = errors.New("completion returned no choices")
)

type (
	CompletionRequest struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	CompletionResponse struct {
		Text string `json:"text"`
	}
)
