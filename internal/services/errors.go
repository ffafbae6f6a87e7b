package services

import "errors"

// Failure kinds surfaced by the upload workflow. Handlers check these with
// errors.Is and map each to its own HTTP status instead of collapsing every
// internal failure into a single 500.
var (
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrExtraction          = errors.New("text extraction failed")
	ErrUpstreamUnavailable = errors.New("evaluation service unavailable")
	ErrUpstreamTimeout     = errors.New("evaluation service timed out")
	ErrMalformedResponse   = errors.New("malformed evaluation service response")
)
