package jejak

import "github.com/google/uuid"

// DebugConfig controls what the client logs when debugging is enabled.
// A Logger must be configured alongside an enabled DebugConfig.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool
	RequestIDGen func() string
}

// DefaultDebugConfig returns a disabled configuration that, once enabled,
// logs requests and responses with UUID request IDs.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		RequestIDGen: uuid.NewString,
	}
}
