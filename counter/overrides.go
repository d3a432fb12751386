package counter

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Overrides is a typed passthrough of raw DynamoDB request parameters.
//
// Precedence is fixed: the operation builds its request from generated
// defaults and explicit call options first, then applies Overrides last,
// field by field. Zero-valued fields leave the generated request alone;
// map entries are merged with the override entry winning on key conflicts.
type Overrides struct {
	// TableName replaces the table the request targets.
	TableName string

	// ReturnValues replaces the update's return mode (Increment only).
	// Changing it away from UPDATED_NEW leaves the response without a
	// parsable count and the call reports a ParseError.
	ReturnValues types.ReturnValue

	// ConditionExpression guards the write (Increment only).
	ConditionExpression string

	// ExpressionAttributeNames entries are merged into the generated names.
	ExpressionAttributeNames map[string]string

	// ExpressionAttributeValues entries are merged into the generated values.
	ExpressionAttributeValues map[string]types.AttributeValue

	// Values is a convenience form of ExpressionAttributeValues: each entry
	// is marshaled with attributevalue and merged under its key.
	Values map[string]any

	// ConsistentRead requests a strongly consistent read (GetLastValue only).
	ConsistentRead *bool
}

// applyUpdate overlays the overrides onto a generated UpdateItem request.
func (o Overrides) applyUpdate(input *dynamodb.UpdateItemInput) error {
	if o.TableName != "" {
		input.TableName = aws.String(o.TableName)
	}
	if o.ReturnValues != "" {
		input.ReturnValues = o.ReturnValues
	}
	if o.ConditionExpression != "" {
		input.ConditionExpression = aws.String(o.ConditionExpression)
	}
	for k, v := range o.ExpressionAttributeNames {
		input.ExpressionAttributeNames[k] = v
	}
	for k, v := range o.ExpressionAttributeValues {
		input.ExpressionAttributeValues[k] = v
	}
	if len(o.Values) > 0 {
		marshaled, err := attributevalue.MarshalMap(o.Values)
		if err != nil {
			return fmt.Errorf("marshal override values: %w", err)
		}
		for k, v := range marshaled {
			input.ExpressionAttributeValues[k] = v
		}
	}
	return nil
}

// applyGet overlays the overrides onto a generated GetItem request. Values
// and write-only fields are ignored; GetItem carries no expression values.
func (o Overrides) applyGet(input *dynamodb.GetItemInput) {
	if o.TableName != "" {
		input.TableName = aws.String(o.TableName)
	}
	if o.ConsistentRead != nil {
		input.ConsistentRead = o.ConsistentRead
	}
	for k, v := range o.ExpressionAttributeNames {
		input.ExpressionAttributeNames[k] = v
	}
}
