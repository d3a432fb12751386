package counter

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// The package-level operations share one lazily constructed client.
// Construction happens at most once per process, on the first call; later
// callers reuse the same handle.
var (
	configMu      sync.Mutex
	configuredAWS *aws.Config

	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Configure sets the AWS configuration used by the shared client. It must
// be called before the first package-level operation; once the shared
// client exists the configuration is fixed and later calls have no effect.
func Configure(cfg aws.Config) {
	configMu.Lock()
	defer configMu.Unlock()
	configuredAWS = &cfg
}

// Default returns the shared client, building it on first use from the
// Configure'd AWS config, or from the ambient AWS environment (credentials
// chain, region) when Configure was never called.
func Default(ctx context.Context) (*Client, error) {
	defaultOnce.Do(func() {
		configMu.Lock()
		cfg := configuredAWS
		configMu.Unlock()

		if cfg == nil {
			loaded, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				defaultErr = err
				return
			}
			cfg = &loaded
		}
		defaultClient = New(dynamodb.NewFromConfig(*cfg), DefaultConfig())
	})
	return defaultClient, defaultErr
}

// Increment advances a counter using the shared client.
func Increment(ctx context.Context, counterID string, opts ...Option) (int64, error) {
	c, err := Default(ctx)
	if err != nil {
		return 0, err
	}
	return c.Increment(ctx, counterID, opts...)
}

// GetLastValue reads a counter using the shared client.
func GetLastValue(ctx context.Context, counterID string, opts ...Option) (int64, error) {
	c, err := Default(ctx)
	if err != nil {
		return 0, err
	}
	return c.GetLastValue(ctx, counterID, opts...)
}
