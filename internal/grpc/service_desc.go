package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "maturity.v1.MaturityReports"

	MaturityReports_GetCompanyStats_FullMethodName  = "/maturity.v1.MaturityReports/GetCompanyStats"
	MaturityReports_GetCompanyReport_FullMethodName = "/maturity.v1.MaturityReports/GetCompanyReport"
	MaturityReports_SubmitEvaluation_FullMethodName = "/maturity.v1.MaturityReports/SubmitEvaluation"
	MaturityReports_ListCompanies_FullMethodName    = "/maturity.v1.MaturityReports/ListCompanies"
)

// MaturityReportsServer is the server API for the MaturityReports service.
// Requests and responses are google.protobuf.Struct messages.
type MaturityReportsServer interface {
	GetCompanyStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCompanyReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitEvaluation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCompanies(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedMaturityReportsServer can be embedded to have forward
// compatible implementations.
type UnimplementedMaturityReportsServer struct{}

func (UnimplementedMaturityReportsServer) GetCompanyStats(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompanyStats not implemented")
}

func (UnimplementedMaturityReportsServer) GetCompanyReport(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompanyReport not implemented")
}

func (UnimplementedMaturityReportsServer) SubmitEvaluation(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitEvaluation not implemented")
}

func (UnimplementedMaturityReportsServer) ListCompanies(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCompanies not implemented")
}

func RegisterMaturityReportsServer(s grpc.ServiceRegistrar, srv MaturityReportsServer) {
	s.RegisterService(&MaturityReports_ServiceDesc, srv)
}

func _MaturityReports_GetCompanyStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MaturityReportsServer).GetCompanyStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MaturityReports_GetCompanyStats_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MaturityReportsServer).GetCompanyStats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _MaturityReports_GetCompanyReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MaturityReportsServer).GetCompanyReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MaturityReports_GetCompanyReport_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MaturityReportsServer).GetCompanyReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _MaturityReports_SubmitEvaluation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MaturityReportsServer).SubmitEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MaturityReports_SubmitEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MaturityReportsServer).SubmitEvaluation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _MaturityReports_ListCompanies_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MaturityReportsServer).ListCompanies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MaturityReports_ListCompanies_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MaturityReportsServer).ListCompanies(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// MaturityReports_ServiceDesc is the grpc.ServiceDesc for the MaturityReports service.
var MaturityReports_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MaturityReportsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCompanyStats", Handler: _MaturityReports_GetCompanyStats_Handler},
		{MethodName: "GetCompanyReport", Handler: _MaturityReports_GetCompanyReport_Handler},
		{MethodName: "SubmitEvaluation", Handler: _MaturityReports_SubmitEvaluation_Handler},
		{MethodName: "ListCompanies", Handler: _MaturityReports_ListCompanies_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "maturity/v1/maturity.proto",
}

// MaturityReportsClient is the client API for the MaturityReports service.
type MaturityReportsClient interface {
	GetCompanyStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCompanyReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitEvaluation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCompanies(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type maturityReportsClient struct {
	cc grpc.ClientConnInterface
}

func NewMaturityReportsClient(cc grpc.ClientConnInterface) MaturityReportsClient {
	return &maturityReportsClient{cc}
}

func (c *maturityReportsClient) GetCompanyStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MaturityReports_GetCompanyStats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maturityReportsClient) GetCompanyReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MaturityReports_GetCompanyReport_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maturityReportsClient) SubmitEvaluation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MaturityReports_SubmitEvaluation_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maturityReportsClient) ListCompanies(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MaturityReports_ListCompanies_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
