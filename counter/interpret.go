package counter

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// parseCount decodes the count attribute from a DynamoDB attribute map.
// Counter values are number attributes encoded as base-10 decimal strings
// on the wire. Anything else - a missing attribute, a string-typed value,
// a non-numeric or overflowing payload - yields a ParseError rather than a
// fabricated zero. The Op and CounterID fields are filled by the caller.
func parseCount(attrs map[string]types.AttributeValue, attr string) (int64, *ParseError) {
	raw, ok := attrs[attr]
	if !ok {
		return 0, &ParseError{}
	}

	switch v := raw.(type) {
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return 0, &ParseError{Raw: v.Value}
		}
		return n, nil
	case *types.AttributeValueMemberS:
		return 0, &ParseError{Raw: v.Value}
	default:
		return 0, &ParseError{}
	}
}
