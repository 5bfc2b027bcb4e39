package gql

import (
	"reflect"

	domainerrors "eats/internal/domain/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// decodeArg copies the GraphQL argument name into out, honoring json tags.
func decodeArg(p graphql.ResolveParams, name string, out any) error {
	raw, ok := p.Args[name]
	if !ok || raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToUUIDHook,
			numberToDecimalHook,
		),
	})
	if err != nil {
		return errors.Wrap(err, "build argument decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// idArg parses a required ID argument.
func idArg(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	raw, _ := p.Args[name].(string)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " is not a valid ID")
	}

	return id, nil
}

func stringToUUIDHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != uuidType {
		return data, nil
	}

	raw, ok := data.(string)
	if !ok {
		return data, nil
	}

	return uuid.Parse(raw)
}

func numberToDecimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return data, nil
	}
}
