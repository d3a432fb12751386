// Package counter provides distributed, monotonically increasing counters
// backed by a DynamoDB table.
//
// Each counter is one item in a shared table, keyed by a string id, with
// its running total in a number attribute. Increment issues a single
// atomic ADD update with UPDATED_NEW return values, so DynamoDB serializes
// concurrent increments per counter and returns each caller a distinct
// post-increment value; no two callers ever observe the same result for
// the same id. Durability, atomicity and ordering all come from DynamoDB -
// this package adds no replication, locking or retries of its own.
//
// # Usage
//
//	client := counter.New(dynamodb.NewFromConfig(cfg), counter.DefaultConfig())
//
//	next, err := client.Increment(ctx, "orders")          // 1, 2, 3, ...
//	last, err := client.GetLastValue(ctx, "orders")       // current value
//	last, err = client.GetLastValue(ctx, "never-used")    // 0, not an error
//
// A process-wide shared client is also available through the package-level
// [Increment] and [GetLastValue], configured once via [Configure] and
// lazily constructed on first use.
//
// # Table layout
//
// [DefaultConfig] expects a table named "AtomicCounters" with a string
// partition key "id"; values live in the "lastValue" attribute. All three
// names are configurable per client and per call.
//
// # Errors
//
//   - [ErrEmptyCounterID] - an operation was given a blank counter id
//   - [StoreError] - the DynamoDB call failed; wraps the SDK error
//   - [ParseError] - the store returned a count that is not a base-10
//     integer; carries the raw value, which is never coerced to zero
//
// A missing item on GetLastValue is not an error: a counter that was never
// incremented reads as 0.
//
// # Retries
//
// Increment writes exactly once and never retries. A failed call does not
// reveal whether DynamoDB applied the add before the failure, so callers
// that resubmit may double-count; exactly-once id generation requires
// caller-side idempotency (for example a ConditionExpression override).
package counter
