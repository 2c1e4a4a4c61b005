// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: telemetry/v1/telemetry.proto

package telemetryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TelemetryService_EmitTelemetryEvent_FullMethodName = "/teamspace.telemetry.v1.TelemetryService/EmitTelemetryEvent"
	TelemetryService_BatchEmitTelemetry_FullMethodName = "/teamspace.telemetry.v1.TelemetryService/BatchEmitTelemetry"
)

// TelemetryServiceClient is the client API for TelemetryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TelemetryService accepts client-side telemetry events. Best-effort: the
// server never fails a request over telemetry.
type TelemetryServiceClient interface {
	EmitTelemetryEvent(ctx context.Context, in *EmitTelemetryEventRequest, opts ...grpc.CallOption) (*EmitTelemetryEventResponse, error)
	BatchEmitTelemetry(ctx context.Context, in *BatchEmitTelemetryRequest, opts ...grpc.CallOption) (*BatchEmitTelemetryResponse, error)
}

type telemetryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTelemetryServiceClient(cc grpc.ClientConnInterface) TelemetryServiceClient {
	return &telemetryServiceClient{cc}
}

func (c *telemetryServiceClient) EmitTelemetryEvent(ctx context.Context, in *EmitTelemetryEventRequest, opts ...grpc.CallOption) (*EmitTelemetryEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EmitTelemetryEventResponse)
	err := c.cc.Invoke(ctx, TelemetryService_EmitTelemetryEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) BatchEmitTelemetry(ctx context.Context, in *BatchEmitTelemetryRequest, opts ...grpc.CallOption) (*BatchEmitTelemetryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BatchEmitTelemetryResponse)
	err := c.cc.Invoke(ctx, TelemetryService_BatchEmitTelemetry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TelemetryServiceServer is the server API for TelemetryService service.
// All implementations must embed UnimplementedTelemetryServiceServer
// for forward compatibility.
//
// TelemetryService accepts client-side telemetry events. Best-effort: the
// server never fails a request over telemetry.
type TelemetryServiceServer interface {
	EmitTelemetryEvent(context.Context, *EmitTelemetryEventRequest) (*EmitTelemetryEventResponse, error)
	BatchEmitTelemetry(context.Context, *BatchEmitTelemetryRequest) (*BatchEmitTelemetryResponse, error)
	mustEmbedUnimplementedTelemetryServiceServer()
}

// UnimplementedTelemetryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTelemetryServiceServer struct{}

func (UnimplementedTelemetryServiceServer) EmitTelemetryEvent(context.Context, *EmitTelemetryEventRequest) (*EmitTelemetryEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EmitTelemetryEvent not implemented")
}
func (UnimplementedTelemetryServiceServer) BatchEmitTelemetry(context.Context, *BatchEmitTelemetryRequest) (*BatchEmitTelemetryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BatchEmitTelemetry not implemented")
}
func (UnimplementedTelemetryServiceServer) mustEmbedUnimplementedTelemetryServiceServer() {}
func (UnimplementedTelemetryServiceServer) testEmbeddedByValue()                          {}

// UnsafeTelemetryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TelemetryServiceServer will
// result in compilation errors.
type UnsafeTelemetryServiceServer interface {
	mustEmbedUnimplementedTelemetryServiceServer()
}

func RegisterTelemetryServiceServer(s grpc.ServiceRegistrar, srv TelemetryServiceServer) {
	// If the following call panics, it indicates UnimplementedTelemetryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TelemetryService_ServiceDesc, srv)
}

func _TelemetryService_EmitTelemetryEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmitTelemetryEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).EmitTelemetryEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TelemetryService_EmitTelemetryEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelemetryServiceServer).EmitTelemetryEvent(ctx, req.(*EmitTelemetryEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_BatchEmitTelemetry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchEmitTelemetryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).BatchEmitTelemetry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TelemetryService_BatchEmitTelemetry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelemetryServiceServer).BatchEmitTelemetry(ctx, req.(*BatchEmitTelemetryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TelemetryService_ServiceDesc is the grpc.ServiceDesc for TelemetryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TelemetryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "teamspace.telemetry.v1.TelemetryService",
	HandlerType: (*TelemetryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EmitTelemetryEvent",
			Handler:    _TelemetryService_EmitTelemetryEvent_Handler,
		},
		{
			MethodName: "BatchEmitTelemetry",
			Handler:    _TelemetryService_BatchEmitTelemetry_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "telemetry/v1/telemetry.proto",
}
