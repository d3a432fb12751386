package counter

import (
	"errors"
	"fmt"
)

// ErrEmptyCounterID is returned when an operation is invoked with a blank
// counter id.
var ErrEmptyCounterID = errors.New("counter: counter id must not be empty")

// StoreError wraps a failed DynamoDB call with the operation and counter it
// belonged to. The underlying SDK error is available via Unwrap.
type StoreError struct {
	// Op is the operation that failed ("increment" or "getLastValue").
	Op string

	// CounterID is the counter the operation addressed.
	CounterID string

	// Err is the error returned by the DynamoDB client.
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("counter: %s %q: %v", e.Op, e.CounterID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a DynamoDB call succeeded but the count
// attribute could not be decoded as a base-10 integer. A corrupt stored
// value is never coerced to zero; the offending raw string is carried
// verbatim in Raw (empty when the attribute was absent or non-textual).
type ParseError struct {
	// Op is the operation that observed the value.
	Op string

	// CounterID is the counter the operation addressed.
	CounterID string

	// Raw is the attribute payload that failed to parse.
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("counter: %s %q: unparsable count value %q", e.Op, e.CounterID, e.Raw)
}
