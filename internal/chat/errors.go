package chat

import "errors"

var (
	ErrGenerationEmpty   = errors.New("no response generated")
	ErrGenerationTimeout = errors.New("generation timed out")
	ErrGenerationFailed  = errors.New("generation failed")
)
