package repository

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Items reuse the json tags of the domain types, so nested SKUs, products and
// the editor session are stored as native DynamoDB lists and maps.
func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
}

func unmarshalItem(av map[string]types.AttributeValue, v any) error {
	return attributevalue.UnmarshalMapWithOptions(av, v, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
}
