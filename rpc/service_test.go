package rpc

import (
	"context"
	"math"
	"net"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/maxpoletaev/sorter/internal/grpcutil"
	"github.com/maxpoletaev/sorter/sorting"
)

type gateStub bool

func (g gateStub) Ready() bool { return bool(g) }

type failingSorter struct {
	err error
}

func (s failingSorter) SortNumbers(context.Context, []float64, bool) ([]float64, error) {
	return nil, s.err
}

func (s failingSorter) SortStrings(context.Context, []string, bool) ([]string, error) {
	return nil, s.err
}

func startServer(t *testing.T, srv SorterServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	RegisterSorterServer(server, srv)

	go server.Serve(lis) //nolint:errcheck

	conn, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
	})

	return conn
}

func newService(ready bool) *SorterService {
	engine := sorting.NewEngine(sorting.DefaultConfig())
	return New(engine, gateStub(ready), kitlog.NewNopLogger())
}

func TestSortNumbers_OverTheWire(t *testing.T) {
	conn := startServer(t, newService(true))
	ctx := context.Background()

	tests := map[string]struct {
		values    []float64
		ascending bool
		want      []float64
	}{
		"Ascending": {
			values:    []float64{5, 2, 9, 1, 5, 6},
			ascending: true,
			want:      []float64{1, 2, 5, 5, 6, 9},
		},
		"Descending": {
			values:    []float64{5, 2, 9, 1, 5, 6},
			ascending: false,
			want:      []float64{9, 6, 5, 5, 2, 1},
		},
		"Empty": {
			values:    []float64{},
			ascending: true,
			want:      []float64{},
		},
		"Infinities": {
			values:    []float64{math.Inf(1), 0, math.Inf(-1)},
			ascending: true,
			want:      []float64{math.Inf(-1), 0, math.Inf(1)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resp := new(structpb.ListValue)
			err := conn.Invoke(ctx, MethodSortNumbers, NumbersRequest(tt.values, tt.ascending), resp)
			require.NoError(t, err)

			got, err := NumbersResponse(resp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortNumbers_NaN(t *testing.T) {
	conn := startServer(t, newService(true))

	resp := new(structpb.ListValue)
	req := NumbersRequest([]float64{math.NaN(), 2, 1}, false)
	require.NoError(t, conn.Invoke(context.Background(), MethodSortNumbers, req, resp))

	got, err := NumbersResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, got[:2])
	assert.True(t, math.IsNaN(got[2]))
}

func TestSortStrings_OverTheWire(t *testing.T) {
	conn := startServer(t, newService(true))

	resp := new(structpb.ListValue)
	req := StringsRequest([]string{"b", "c", "a"}, true)
	require.NoError(t, conn.Invoke(context.Background(), MethodSortStrings, req, resp))

	got, err := StringsResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSortNumbers_InvalidRequest(t *testing.T) {
	service := newService(true)
	ctx := context.Background()

	tests := map[string]struct {
		fields     map[string]interface{}
		wantFields []string
	}{
		"NonNumericValues": {
			fields: map[string]interface{}{
				"values": []interface{}{1.0, "two", true},
			},
			wantFields: []string{"values[1]", "values[2]"},
		},
		"ValuesNotAList": {
			fields: map[string]interface{}{
				"values": "1,2,3",
			},
			wantFields: []string{"values"},
		},
		"AscendingNotABool": {
			fields: map[string]interface{}{
				"values":    []interface{}{1.0},
				"ascending": "yes",
			},
			wantFields: []string{"ascending"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := structpb.NewStruct(tt.fields)
			require.NoError(t, err)

			_, err = service.SortNumbers(ctx, req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, grpcutil.ErrorCode(err))

			var fields []string
			for _, v := range grpcutil.FieldViolations(err) {
				fields = append(fields, v.Field)
			}

			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestSortNumbers_MissingFields(t *testing.T) {
	service := newService(true)

	resp, err := service.SortNumbers(context.Background(), &structpb.Struct{})
	require.NoError(t, err)
	assert.Empty(t, resp.GetValues())
}

func TestSortStrings_NonStringValues(t *testing.T) {
	service := newService(true)

	req, err := structpb.NewStruct(map[string]interface{}{
		"values": []interface{}{"a", 2.0},
	})
	require.NoError(t, err)

	_, err = service.SortStrings(context.Background(), req)
	assert.Equal(t, codes.InvalidArgument, grpcutil.ErrorCode(err))
}

func TestService_NotReady(t *testing.T) {
	conn := startServer(t, newService(false))

	err := conn.Invoke(context.Background(), MethodSortNumbers, NumbersRequest([]float64{1}, true), new(structpb.ListValue))
	assert.Equal(t, codes.Unavailable, grpcutil.ErrorCode(err))

	err = conn.Invoke(context.Background(), MethodSortStrings, StringsRequest([]string{"a"}, true), new(structpb.ListValue))
	assert.Equal(t, codes.Unavailable, grpcutil.ErrorCode(err))
}

func TestService_EngineErrors(t *testing.T) {
	tests := map[string]struct {
		err      error
		wantCode codes.Code
	}{
		"Internal": {
			err:      assert.AnError,
			wantCode: codes.Internal,
		},
		"Canceled": {
			err:      context.Canceled,
			wantCode: codes.Canceled,
		},
		"DeadlineExceeded": {
			err:      context.DeadlineExceeded,
			wantCode: codes.DeadlineExceeded,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			service := New(failingSorter{err: tt.err}, gateStub(true), kitlog.NewNopLogger())

			_, err := service.SortNumbers(context.Background(), NumbersRequest([]float64{1}, true))
			assert.Equal(t, tt.wantCode, grpcutil.ErrorCode(err))

			_, err = service.SortStrings(context.Background(), StringsRequest([]string{"a"}, true))
			assert.Equal(t, tt.wantCode, grpcutil.ErrorCode(err))
		})
	}
}
