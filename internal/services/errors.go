package services

// Error types returned by the chat service, mapped to HTTP statuses at the
// handler boundary.

type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

type TimeoutError struct{ Message string }

func (e *TimeoutError) Error() string { return e.Message }

type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }
