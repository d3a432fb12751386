package counter_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the DynamoDB client implementing
// real ADD semantics: counters are created on first add and updates are
// serialized under a mutex, so concurrency tests exercise the same
// distinct-value guarantee the real store provides.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]map[string]types.AttributeValue // table -> id -> item

	updateErr   error
	getErr      error
	forcedAttrs map[string]types.AttributeValue // replaces UpdateItem response attributes
	forcedItem  map[string]types.AttributeValue // replaces GetItem response item
	blockUpdate bool                            // UpdateItem waits for ctx cancellation

	lastUpdate *dynamodb.UpdateItemInput
	lastGet    *dynamodb.GetItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		items: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// seed inserts an item directly, bypassing update semantics.
func (f *fakeDynamo) seed(table, keyAttr, id string, attrs map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item := map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: id},
	}
	for k, v := range attrs {
		item[k] = v
	}
	if f.items[table] == nil {
		f.items[table] = make(map[string]map[string]types.AttributeValue)
	}
	f.items[table][id] = item
}

func keyID(key map[string]types.AttributeValue) (attr, id string) {
	for k, v := range key {
		attr = k
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			id = s.Value
		}
	}
	return attr, id
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.blockUpdate {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = in

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	table := aws.ToString(in.TableName)
	keyAttr, id := keyID(in.Key)
	countAttr := in.ExpressionAttributeNames["#count"]

	var delta int64
	if n, ok := in.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN); ok {
		delta, _ = strconv.ParseInt(n.Value, 10, 64)
	}

	if f.items[table] == nil {
		f.items[table] = make(map[string]map[string]types.AttributeValue)
	}
	item := f.items[table][id]
	if item == nil {
		item = map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: id},
		}
		f.items[table][id] = item
	}

	var current int64
	if n, ok := item[countAttr].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	item[countAttr] = &types.AttributeValueMemberN{
		Value: strconv.FormatInt(current+delta, 10),
	}

	out := &dynamodb.UpdateItemOutput{}
	if f.forcedAttrs != nil {
		out.Attributes = f.forcedAttrs
		return out, nil
	}
	if in.ReturnValues == types.ReturnValueUpdatedNew {
		out.Attributes = map[string]types.AttributeValue{
			countAttr: item[countAttr],
		}
	}
	return out, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastGet = in

	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.forcedItem != nil {
		return &dynamodb.GetItemOutput{Item: f.forcedItem}, nil
	}

	table := aws.ToString(in.TableName)
	_, id := keyID(in.Key)
	countAttr := in.ExpressionAttributeNames["#count"]

	item := f.items[table][id]
	if item == nil {
		return &dynamodb.GetItemOutput{}, nil
	}

	projected := map[string]types.AttributeValue{}
	if v, ok := item[countAttr]; ok {
		projected[countAttr] = v
	}
	return &dynamodb.GetItemOutput{Item: projected}, nil
}
