package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Requests and responses are protobuf well-known types, so the service needs
// no generated code. A request is a Struct with a "values" list and an
// optional "ascending" bool; a response is the sorted ListValue.

const (
	ServiceName = "sorter.Sorter"

	MethodSortNumbers = "/" + ServiceName + "/SortNumbers"
	MethodSortStrings = "/" + ServiceName + "/SortStrings"
)

// SorterServer is the server API for the sorter service.
type SorterServer interface {
	SortNumbers(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error)
	SortStrings(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error)
}

func RegisterSorterServer(s grpc.ServiceRegistrar, srv SorterServer) {
	s.RegisterService(&sorterServiceDesc, srv)
}

var sorterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SorterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SortNumbers",
			Handler:    unaryHandler(MethodSortNumbers, SorterServer.SortNumbers),
		},
		{
			MethodName: "SortStrings",
			Handler:    unaryHandler(MethodSortStrings, SorterServer.SortStrings),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sorter.proto",
}

type unaryMethod func(SorterServer, context.Context, *structpb.Struct) (*structpb.ListValue, error)

// methodHandler has the signature grpc.MethodDesc expects for Handler.
type methodHandler = func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)

func unaryHandler(fullMethod string, method unaryMethod) methodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return method(srv.(SorterServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(SorterServer), ctx, req.(*structpb.Struct))
		}

		return interceptor(ctx, in, info, handler)
	}
}
