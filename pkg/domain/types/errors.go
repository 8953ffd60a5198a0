package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrInvalidParameter = goerr.New("invalid parameter")

	// ErrRateLimited indicates GitHub responded with 403/429. Callers should
	// suggest configuring a token to raise the quota.
	ErrRateLimited = goerr.New("github rate limit exceeded")

	// ErrBadResponse indicates an upstream response that could not be parsed
	// into repository records (e.g. trending page markup changed).
	ErrBadResponse = goerr.New("unexpected upstream response")

	ErrNoLLMResponse = goerr.New("LLM returned no choices")
)
