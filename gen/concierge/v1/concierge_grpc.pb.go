// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: concierge/v1/concierge.proto

package conciergev1

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
	ConciergeService_RegisterVisitor_FullMethodName = "/concierge.v1.ConciergeService/RegisterVisitor"
	ConciergeService_ListVisitors_FullMethodName    = "/concierge.v1.ConciergeService/ListVisitors"
	ConciergeService_ScanDocument_FullMethodName    = "/concierge.v1.ConciergeService/ScanDocument"
	ConciergeService_RecognizeFace_FullMethodName   = "/concierge.v1.ConciergeService/RecognizeFace"
	ConciergeService_RegisterEntry_FullMethodName   = "/concierge.v1.ConciergeService/RegisterEntry"
	ConciergeService_RegisterExit_FullMethodName    = "/concierge.v1.ConciergeService/RegisterExit"
	ConciergeService_ListVisits_FullMethodName      = "/concierge.v1.ConciergeService/ListVisits"
	ConciergeService_ExportVisits_FullMethodName    = "/concierge.v1.ConciergeService/ExportVisits"
)

// ConciergeServiceClient is the client API for ConciergeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ConciergeServiceClient interface {
	// Visitor registry
	RegisterVisitor(ctx context.Context, in *RegisterVisitorRequest, opts ...grpc.CallOption) (*RegisterVisitorResponse, error)
	ListVisitors(ctx context.Context, in *ListVisitorsRequest, opts ...grpc.CallOption) (*ListVisitorsResponse, error)
	// Document scanning: photo -> OCR -> identity fields
	ScanDocument(ctx context.Context, in *ScanDocumentRequest, opts ...grpc.CallOption) (*ScanDocumentResponse, error)
	// Face recognition against the enrolled gallery
	RecognizeFace(ctx context.Context, in *RecognizeFaceRequest, opts ...grpc.CallOption) (*RecognizeFaceResponse, error)
	// Visit log
	RegisterEntry(ctx context.Context, in *RegisterEntryRequest, opts ...grpc.CallOption) (*RegisterEntryResponse, error)
	RegisterExit(ctx context.Context, in *RegisterExitRequest, opts ...grpc.CallOption) (*RegisterExitResponse, error)
	ListVisits(ctx context.Context, in *ListVisitsRequest, opts ...grpc.CallOption) (*ListVisitsResponse, error)
	ExportVisits(ctx context.Context, in *ExportVisitsRequest, opts ...grpc.CallOption) (*ExportVisitsResponse, error)
}

type conciergeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewConciergeServiceClient(cc grpc.ClientConnInterface) ConciergeServiceClient {
	return &conciergeServiceClient{cc}
}

func (c *conciergeServiceClient) RegisterVisitor(ctx context.Context, in *RegisterVisitorRequest, opts ...grpc.CallOption) (*RegisterVisitorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterVisitorResponse)
	err := c.cc.Invoke(ctx, ConciergeService_RegisterVisitor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) ListVisitors(ctx context.Context, in *ListVisitorsRequest, opts ...grpc.CallOption) (*ListVisitorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVisitorsResponse)
	err := c.cc.Invoke(ctx, ConciergeService_ListVisitors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) ScanDocument(ctx context.Context, in *ScanDocumentRequest, opts ...grpc.CallOption) (*ScanDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanDocumentResponse)
	err := c.cc.Invoke(ctx, ConciergeService_ScanDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) RecognizeFace(ctx context.Context, in *RecognizeFaceRequest, opts ...grpc.CallOption) (*RecognizeFaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecognizeFaceResponse)
	err := c.cc.Invoke(ctx, ConciergeService_RecognizeFace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) RegisterEntry(ctx context.Context, in *RegisterEntryRequest, opts ...grpc.CallOption) (*RegisterEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterEntryResponse)
	err := c.cc.Invoke(ctx, ConciergeService_RegisterEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) RegisterExit(ctx context.Context, in *RegisterExitRequest, opts ...grpc.CallOption) (*RegisterExitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterExitResponse)
	err := c.cc.Invoke(ctx, ConciergeService_RegisterExit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) ListVisits(ctx context.Context, in *ListVisitsRequest, opts ...grpc.CallOption) (*ListVisitsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVisitsResponse)
	err := c.cc.Invoke(ctx, ConciergeService_ListVisits_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conciergeServiceClient) ExportVisits(ctx context.Context, in *ExportVisitsRequest, opts ...grpc.CallOption) (*ExportVisitsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportVisitsResponse)
	err := c.cc.Invoke(ctx, ConciergeService_ExportVisits_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConciergeServiceServer is the server API for ConciergeService service.
// All implementations must embed UnimplementedConciergeServiceServer
// for forward compatibility.
type ConciergeServiceServer interface {
	// Visitor registry
	RegisterVisitor(context.Context, *RegisterVisitorRequest) (*RegisterVisitorResponse, error)
	ListVisitors(context.Context, *ListVisitorsRequest) (*ListVisitorsResponse, error)
	// Document scanning: photo -> OCR -> identity fields
	ScanDocument(context.Context, *ScanDocumentRequest) (*ScanDocumentResponse, error)
	// Face recognition against the enrolled gallery
	RecognizeFace(context.Context, *RecognizeFaceRequest) (*RecognizeFaceResponse, error)
	// Visit log
	RegisterEntry(context.Context, *RegisterEntryRequest) (*RegisterEntryResponse, error)
	RegisterExit(context.Context, *RegisterExitRequest) (*RegisterExitResponse, error)
	ListVisits(context.Context, *ListVisitsRequest) (*ListVisitsResponse, error)
	ExportVisits(context.Context, *ExportVisitsRequest) (*ExportVisitsResponse, error)
	mustEmbedUnimplementedConciergeServiceServer()
}

// UnimplementedConciergeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedConciergeServiceServer struct{}

func (UnimplementedConciergeServiceServer) RegisterVisitor(context.Context, *RegisterVisitorRequest) (*RegisterVisitorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterVisitor not implemented")
}
func (UnimplementedConciergeServiceServer) ListVisitors(context.Context, *ListVisitorsRequest) (*ListVisitorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVisitors not implemented")
}
func (UnimplementedConciergeServiceServer) ScanDocument(context.Context, *ScanDocumentRequest) (*ScanDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ScanDocument not implemented")
}
func (UnimplementedConciergeServiceServer) RecognizeFace(context.Context, *RecognizeFaceRequest) (*RecognizeFaceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecognizeFace not implemented")
}
func (UnimplementedConciergeServiceServer) RegisterEntry(context.Context, *RegisterEntryRequest) (*RegisterEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterEntry not implemented")
}
func (UnimplementedConciergeServiceServer) RegisterExit(context.Context, *RegisterExitRequest) (*RegisterExitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterExit not implemented")
}
func (UnimplementedConciergeServiceServer) ListVisits(context.Context, *ListVisitsRequest) (*ListVisitsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVisits not implemented")
}
func (UnimplementedConciergeServiceServer) ExportVisits(context.Context, *ExportVisitsRequest) (*ExportVisitsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportVisits not implemented")
}
func (UnimplementedConciergeServiceServer) mustEmbedUnimplementedConciergeServiceServer() {}
func (UnimplementedConciergeServiceServer) testEmbeddedByValue()                          {}

// UnsafeConciergeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ConciergeServiceServer will
// result in compilation errors.
type UnsafeConciergeServiceServer interface {
	mustEmbedUnimplementedConciergeServiceServer()
}

func RegisterConciergeServiceServer(s grpc.ServiceRegistrar, srv ConciergeServiceServer) {
	// If the following call panics, it indicates UnimplementedConciergeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ConciergeService_ServiceDesc, srv)
}

func _ConciergeService_RegisterVisitor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterVisitorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).RegisterVisitor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_RegisterVisitor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).RegisterVisitor(ctx, req.(*RegisterVisitorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_ListVisitors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVisitorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).ListVisitors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_ListVisitors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).ListVisitors(ctx, req.(*ListVisitorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_ScanDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).ScanDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_ScanDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).ScanDocument(ctx, req.(*ScanDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_RecognizeFace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecognizeFaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).RecognizeFace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_RecognizeFace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).RecognizeFace(ctx, req.(*RecognizeFaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_RegisterEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).RegisterEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_RegisterEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).RegisterEntry(ctx, req.(*RegisterEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_RegisterExit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterExitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).RegisterExit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_RegisterExit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).RegisterExit(ctx, req.(*RegisterExitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_ListVisits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVisitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).ListVisits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_ListVisits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).ListVisits(ctx, req.(*ListVisitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConciergeService_ExportVisits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportVisitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConciergeServiceServer).ExportVisits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConciergeService_ExportVisits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConciergeServiceServer).ExportVisits(ctx, req.(*ExportVisitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ConciergeService_ServiceDesc is the grpc.ServiceDesc for ConciergeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ConciergeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "concierge.v1.ConciergeService",
	HandlerType: (*ConciergeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterVisitor",
			Handler:    _ConciergeService_RegisterVisitor_Handler,
		},
		{
			MethodName: "ListVisitors",
			Handler:    _ConciergeService_ListVisitors_Handler,
		},
		{
			MethodName: "ScanDocument",
			Handler:    _ConciergeService_ScanDocument_Handler,
		},
		{
			MethodName: "RecognizeFace",
			Handler:    _ConciergeService_RecognizeFace_Handler,
		},
		{
			MethodName: "RegisterEntry",
			Handler:    _ConciergeService_RegisterEntry_Handler,
		},
		{
			MethodName: "RegisterExit",
			Handler:    _ConciergeService_RegisterExit_Handler,
		},
		{
			MethodName: "ListVisits",
			Handler:    _ConciergeService_ListVisits_Handler,
		},
		{
			MethodName: "ExportVisits",
			Handler:    _ConciergeService_ExportVisits_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "concierge/v1/concierge.proto",
}
