package rpc

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/maxpoletaev/sorter/internal/grpcutil"
)

const (
	fieldValues    = "values"
	fieldAscending = "ascending"
)

func violation(field, desc string) *errdetails.BadRequest_FieldViolation {
	return &errdetails.BadRequest_FieldViolation{
		Field:       field,
		Description: desc,
	}
}

// fromRequest splits a request into its list of values and the direction.
// A missing list is treated as empty and a missing direction as ascending.
func fromRequest(req *structpb.Struct) ([]*structpb.Value, bool, error) {
	fields := req.GetFields()
	ascending := true

	if v, ok := fields[fieldAscending]; ok {
		b, isBool := v.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return nil, false, grpcutil.InvalidArgument("invalid request",
				violation(fieldAscending, "expected bool"))
		}

		ascending = b.BoolValue
	}

	v, ok := fields[fieldValues]
	if !ok {
		return nil, ascending, nil
	}

	list, isList := v.GetKind().(*structpb.Value_ListValue)
	if !isList {
		return nil, false, grpcutil.InvalidArgument("invalid request",
			violation(fieldValues, "expected list"))
	}

	return list.ListValue.GetValues(), ascending, nil
}

func toNumbers(values []*structpb.Value) ([]float64, error) {
	var (
		out        = make([]float64, len(values))
		violations []*errdetails.BadRequest_FieldViolation
	)

	for i, v := range values {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			violations = append(violations, violation(fmt.Sprintf("%s[%d]", fieldValues, i), "expected number"))
			continue
		}

		out[i] = n.NumberValue
	}

	if len(violations) > 0 {
		return nil, grpcutil.InvalidArgument("non-numeric values", violations...)
	}

	return out, nil
}

func toStrings(values []*structpb.Value) ([]string, error) {
	var (
		out        = make([]string, len(values))
		violations []*errdetails.BadRequest_FieldViolation
	)

	for i, v := range values {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			violations = append(violations, violation(fmt.Sprintf("%s[%d]", fieldValues, i), "expected string"))
			continue
		}

		out[i] = s.StringValue
	}

	if len(violations) > 0 {
		return nil, grpcutil.InvalidArgument("non-string values", violations...)
	}

	return out, nil
}

func fromNumbers(values []float64) *structpb.ListValue {
	list := &structpb.ListValue{
		Values: make([]*structpb.Value, len(values)),
	}

	for i, v := range values {
		list.Values[i] = structpb.NewNumberValue(v)
	}

	return list
}

func fromStrings(values []string) *structpb.ListValue {
	list := &structpb.ListValue{
		Values: make([]*structpb.Value, len(values)),
	}

	for i, v := range values {
		list.Values[i] = structpb.NewStringValue(v)
	}

	return list
}

// NumbersRequest builds a SortNumbers request.
func NumbersRequest(values []float64, ascending bool) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldValues:    structpb.NewListValue(fromNumbers(values)),
			fieldAscending: structpb.NewBoolValue(ascending),
		},
	}
}

// StringsRequest builds a SortStrings request.
func StringsRequest(values []string, ascending bool) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldValues:    structpb.NewListValue(fromStrings(values)),
			fieldAscending: structpb.NewBoolValue(ascending),
		},
	}
}

// NumbersResponse decodes a SortNumbers response.
func NumbersResponse(resp *structpb.ListValue) ([]float64, error) {
	return toNumbers(resp.GetValues())
}

// StringsResponse decodes a SortStrings response.
func StringsResponse(resp *structpb.ListValue) ([]string, error) {
	return toStrings(resp.GetValues())
}
