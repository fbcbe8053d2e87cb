package render

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Option configures the HTML conversion.
type Option func(*config)

type config struct {
	extensions blackfriday.Extensions
	policy     *bluemonday.Policy
}

// WithExtensions overrides the blackfriday extension set.
func WithExtensions(extensions blackfriday.Extensions) Option {
	return func(cfg *config) { cfg.extensions = extensions }
}

// WithPolicy sanitises the converted HTML with the given policy. No
// sanitising happens unless a policy is set.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) { cfg.policy = policy }
}

// DefaultPolicy permits user generated content plus the id attribute on
// divs so accordion markers survive sanitising.
func DefaultPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("div")
	return policy
}

// HTML converts markdown (with placeholder markers already substituted)
// into HTML.
func HTML(markdown string, opts ...Option) string {
	cfg := config{extensions: blackfriday.CommonExtensions}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := string(blackfriday.Run([]byte(markdown), blackfriday.WithExtensions(cfg.extensions)))
	if cfg.policy != nil {
		out = cfg.policy.Sanitize(out)
	}
	return out
}
