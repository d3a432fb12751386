// Command atomic-counter increments or reads a named counter in DynamoDB.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sergio/dynamodb-atomic-counter/counter"
	"github.com/sergio/dynamodb-atomic-counter/internal/log"
)

var (
	optTable     = flag.String("table", "", "DynamoDB table holding the counters (default AtomicCounters)")
	optID        = flag.String("id", "", "counter id")
	optDelta     = flag.Int64("delta", 1, "amount to add; may be negative")
	optGet       = flag.Bool("get", false, "read the last value instead of incrementing")
	optKeyAttr   = flag.String("key-attribute", "", "attribute holding the counter id (default id)")
	optCountAttr = flag.String("count-attribute", "", "attribute holding the counter value (default lastValue)")
	optLogLevel  = flag.String("log-level", "info", "debug|info|warn|error")
)

var logger *zap.SugaredLogger

func main() {
	godotenv.Load()

	flag.Parse()

	logger = log.Must(log.New(*optLogLevel)).Sugar()
	defer logger.Sync()

	if *optID == "" {
		logger.Fatalf("*** --id must be specified")
	}

	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		logger.Fatalf("*** run: %v", err)
	}
}

func run(ctx context.Context) error {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	client := counter.New(dynamodb.NewFromConfig(awsCfg), counter.Config{
		TableName:      *optTable,
		KeyAttribute:   *optKeyAttr,
		CountAttribute: *optCountAttr,
	})

	var value int64
	if *optGet {
		value, err = client.GetLastValue(ctx, *optID)
		if err != nil {
			return fmt.Errorf("GetLastValue: %w", err)
		}
		logger.Infow("read counter", "id", *optID, "lastValue", value)
	} else {
		value, err = client.Increment(ctx, *optID, counter.WithDelta(*optDelta))
		if err != nil {
			return fmt.Errorf("Increment: %w", err)
		}
		logger.Infow("incremented counter", "id", *optID, "delta", *optDelta, "lastValue", value)
	}

	fmt.Println(value)
	return nil
}
