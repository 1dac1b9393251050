// internal/common/camunda/client.go
package camunda

import (
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// ClientConfig holds configuration for the Camunda/Zeebe client.
type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RequestTimeout         time.Duration
	RetryConfig            *RetryConfig
}

// RetryConfig defines retry behavior for transient connection failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// NewClient creates a Zeebe client with default configuration. Suitable for
// simple setups (e.g., local dev).
func NewClient(address string) (zbc.Client, error) {
	return NewClientWithConfig(&ClientConfig{
		GatewayAddress:         address,
		UsePlaintextConnection: true, // Set to false and configure TLS in production
		ConnectionTimeout:      10 * time.Second,
		RequestTimeout:         30 * time.Second,
		RetryConfig:            DefaultRetryConfig,
	})
}

// NewClientWithConfig creates a Zeebe client using explicit configuration,
// retrying transient connection failures with exponential backoff.
func NewClientWithConfig(config *ClientConfig) (zbc.Client, error) {
	retry := config.RetryConfig
	if retry == nil {
		retry = DefaultRetryConfig
	}

	var client zbc.Client
	var err error
	delay := retry.BaseDelay

	for attempt := 0; attempt <= retry.MaxRetries; attempt++ {
		client, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         config.GatewayAddress,
			UsePlaintextConnection: config.UsePlaintextConnection,
		})
		if err == nil {
			return client, nil
		}

		if attempt < retry.MaxRetries {
			time.Sleep(delay)
			delay *= 2
			if delay > retry.MaxDelay {
				delay = retry.MaxDelay
			}
		}
	}

	return nil, fmt.Errorf("zeebe client connect failed after %d attempts: %w", retry.MaxRetries+1, err)
}
