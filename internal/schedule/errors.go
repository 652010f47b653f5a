package schedule

import "errors"

// ErrValidation marks schedule file content that fails load validation.
// Startup treats these as fatal; see the CLI contract.
var ErrValidation = errors.New("schedule validation error")
