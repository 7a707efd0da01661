package grpcutil

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode extracts a gRPC error code from an error. If the error is not a
// gRPC error, it returns codes.Unknown.
func ErrorCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if st, ok := status.FromError(err); ok {
		return st.Code()
	}

	return codes.Unknown
}

// InvalidArgument builds an InvalidArgument status carrying the field
// violations as a BadRequest detail.
func InvalidArgument(msg string, violations ...*errdetails.BadRequest_FieldViolation) error {
	st := status.New(codes.InvalidArgument, msg)

	if len(violations) == 0 {
		return st.Err()
	}

	withDetails, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: violations,
	})
	if err != nil {
		return st.Err()
	}

	return withDetails.Err()
}

// FieldViolations extracts the BadRequest field violations from an error. If
// the error is not a gRPC error or carries no BadRequest detail, it returns nil.
func FieldViolations(err error) []*errdetails.BadRequest_FieldViolation {
	st := status.Convert(err)

	for _, detail := range st.Details() {
		if br, ok := detail.(*errdetails.BadRequest); ok {
			return br.GetFieldViolations()
		}
	}

	return nil
}
