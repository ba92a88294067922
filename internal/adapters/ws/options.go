package ws

import "github.com/okian/macromon/pkg/logger"

// Option applies a configuration option to the Hub.
type Option func(*Hub)

// WithLogger sets a custom logger for the hub.
func WithLogger(l logger.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}
