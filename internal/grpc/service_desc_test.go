package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/maturity-server/internal/grpc/mocks"
	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
)

func dialBufconn(t *testing.T, srv MaturityReportsServer) MaturityReportsClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	RegisterMaturityReportsServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewMaturityReportsClient(conn)
}

func TestMaturityReportsOverTheWire(t *testing.T) {
	reports := &mocks.MockReportService{
		ComputeStatsByCompanyFunc: func(_ context.Context, company string) (stats.MetricList, error) {
			if company != "Acme" {
				return stats.MetricList{}, nil
			}
			return stats.MetricList{{Key: stats.KeyPctKnowLLM, Value: 70}}, nil
		},
		GetCompanyReportFunc: func(context.Context, string) (service.Report, error) {
			return service.Report{}, service.ErrNoSurveys
		},
		ListCompaniesFunc: func(context.Context) ([]string, error) {
			return []string{"Acme"}, nil
		},
	}
	handlers := NewGRPCHandlers(reports, &mocks.MockEvaluationService{}, nil, zap.NewNop(), time.Minute)
	client := dialBufconn(t, handlers)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{"company": "Acme"})
	require.NoError(t, err)

	resp, err := client.GetCompanyStats(ctx, req)
	require.NoError(t, err)
	values := resp.GetFields()["metrics"].GetListValue().GetValues()
	require.Len(t, values, 1)
	assert.Equal(t, 70.0, values[0].GetStructValue().GetFields()["value"].GetNumberValue())

	other, err := structpb.NewStruct(map[string]any{"company": "acme"})
	require.NoError(t, err)
	_, err = client.GetCompanyStats(ctx, other)
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetCompanyReport(ctx, req)
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err := client.ListCompanies(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.Len(t, list.GetFields()["companies"].GetListValue().GetValues(), 1)
}

func TestUnimplementedMaturityReportsServer(t *testing.T) {
	client := dialBufconn(t, UnimplementedMaturityReportsServer{})

	_, err := client.SubmitEvaluation(context.Background(), &structpb.Struct{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
