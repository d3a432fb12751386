package counter

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB is the slice of the DynamoDB client surface the counter uses.
// *dynamodb.Client satisfies it; tests supply fakes.
type DynamoDB interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Client provides atomic counters backed by a DynamoDB table.
//
// Each counter is a single item whose number attribute is advanced with an
// ADD update, so DynamoDB serializes concurrent increments per counter id
// and every caller observes a distinct post-increment value. The Client
// itself holds no mutable state and is safe for concurrent use.
type Client struct {
	db     DynamoDB
	config Config
}

// New creates a Client on top of an existing DynamoDB client.
func New(db DynamoDB, config Config) *Client {
	config.validate()
	return &Client{
		db:     db,
		config: config,
	}
}

// Option adjusts a single Increment or GetLastValue call.
type Option func(*callOptions)

type callOptions struct {
	table     string
	keyAttr   string
	countAttr string
	delta     int64
	overrides Overrides
}

// WithDelta sets the amount added by Increment. Defaults to 1; zero and
// negative deltas are passed through to the store unchanged.
func WithDelta(delta int64) Option {
	return func(o *callOptions) {
		o.delta = delta
	}
}

// WithTableName overrides the configured table for this call.
func WithTableName(table string) Option {
	return func(o *callOptions) {
		o.table = table
	}
}

// WithKeyAttribute overrides the configured key attribute for this call.
func WithKeyAttribute(attr string) Option {
	return func(o *callOptions) {
		o.keyAttr = attr
	}
}

// WithCountAttribute overrides the configured count attribute for this call.
func WithCountAttribute(attr string) Option {
	return func(o *callOptions) {
		o.countAttr = attr
	}
}

// WithOverrides merges raw DynamoDB request parameters into the generated
// request. Overrides are applied last and win on conflicts.
func WithOverrides(ov Overrides) Option {
	return func(o *callOptions) {
		o.overrides = ov
	}
}

func (c *Client) newCallOptions(opts []Option) callOptions {
	o := callOptions{
		table:     c.config.TableName,
		keyAttr:   c.config.KeyAttribute,
		countAttr: c.config.CountAttribute,
		delta:     1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Increment atomically adds the call's delta (default 1) to the counter and
// returns the new value.
//
// The update requests UPDATED_NEW return values, so the post-increment value
// comes back with the write and no follow-up read is needed. If the counter
// item does not exist yet, DynamoDB's ADD action creates it with the delta
// as its initial value; first use is not special-cased here.
//
// Exactly one write is issued and never retried. An error does not reveal
// whether the store applied the add before failing, so resubmitting a
// failed Increment may double-count; callers needing exactly-once semantics
// must layer their own idempotency on top.
func (c *Client) Increment(ctx context.Context, counterID string, opts ...Option) (int64, error) {
	if counterID == "" {
		return 0, ErrEmptyCounterID
	}
	o := c.newCallOptions(opts)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(o.table),
		Key: map[string]types.AttributeValue{
			o.keyAttr: &types.AttributeValueMemberS{Value: counterID},
		},
		UpdateExpression: aws.String("ADD #count :delta"),
		ExpressionAttributeNames: map[string]string{
			"#count": o.countAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.FormatInt(o.delta, 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	}
	if err := o.overrides.applyUpdate(input); err != nil {
		return 0, &StoreError{Op: opIncrement, CounterID: counterID, Err: err}
	}

	out, err := c.db.UpdateItem(ctx, input)
	if err != nil {
		return 0, &StoreError{Op: opIncrement, CounterID: counterID, Err: err}
	}

	value, perr := parseCount(out.Attributes, o.countAttr)
	if perr != nil {
		perr.Op = opIncrement
		perr.CounterID = counterID
		return 0, perr
	}
	return value, nil
}

// GetLastValue reads the counter's current value without mutating it.
//
// A counter that has never been incremented resolves to 0 with no error; a
// GetLastValue racing an Increment may observe either the pre- or
// post-increment value.
func (c *Client) GetLastValue(ctx context.Context, counterID string, opts ...Option) (int64, error) {
	if counterID == "" {
		return 0, ErrEmptyCounterID
	}
	o := c.newCallOptions(opts)

	input := &dynamodb.GetItemInput{
		TableName: aws.String(o.table),
		Key: map[string]types.AttributeValue{
			o.keyAttr: &types.AttributeValueMemberS{Value: counterID},
		},
		ProjectionExpression: aws.String("#count"),
		ExpressionAttributeNames: map[string]string{
			"#count": o.countAttr,
		},
	}
	o.overrides.applyGet(input)

	out, err := c.db.GetItem(ctx, input)
	if err != nil {
		return 0, &StoreError{Op: opGetLastValue, CounterID: counterID, Err: err}
	}

	// Absent item means the counter was never used, which is a valid zero
	// state. The projection returns an empty map when the item exists but
	// lacks the attribute; that is indistinguishable from absence and is
	// treated the same way.
	if len(out.Item) == 0 {
		return 0, nil
	}

	value, perr := parseCount(out.Item, o.countAttr)
	if perr != nil {
		perr.Op = opGetLastValue
		perr.CounterID = counterID
		return 0, perr
	}
	return value, nil
}

const (
	opIncrement    = "increment"
	opGetLastValue = "getLastValue"
)
