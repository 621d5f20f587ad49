package types

import "errors"

var (
	ErrInvalidParam  = errors.New("invalid or missing query parameter")
	ErrNoSuggestion  = errors.New("generative backend returned no usable suggestion")
	ErrNoImage       = errors.New("no image found")
	ErrMissingAPIKey = errors.New("api key not configured")
)
