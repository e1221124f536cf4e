// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

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
	ExtractionService_ExtractScorebook_FullMethodName = "/extraction.v1.ExtractionService/ExtractScorebook"
	ExtractionService_ExtractRoster_FullMethodName    = "/extraction.v1.ExtractionService/ExtractRoster"
	ExtractionService_ExtractSchedule_FullMethodName  = "/extraction.v1.ExtractionService/ExtractSchedule"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExtractionServiceClient interface {
	ExtractScorebook(ctx context.Context, in *ExtractScorebookRequest, opts ...grpc.CallOption) (*ExtractResponse, error)
	ExtractRoster(ctx context.Context, in *ExtractRosterRequest, opts ...grpc.CallOption) (*ExtractResponse, error)
	ExtractSchedule(ctx context.Context, in *ExtractScheduleRequest, opts ...grpc.CallOption) (*ExtractResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) ExtractScorebook(ctx context.Context, in *ExtractScorebookRequest, opts ...grpc.CallOption) (*ExtractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractScorebook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExtractRoster(ctx context.Context, in *ExtractRosterRequest, opts ...grpc.CallOption) (*ExtractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExtractSchedule(ctx context.Context, in *ExtractScheduleRequest, opts ...grpc.CallOption) (*ExtractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
type ExtractionServiceServer interface {
	ExtractScorebook(context.Context, *ExtractScorebookRequest) (*ExtractResponse, error)
	ExtractRoster(context.Context, *ExtractRosterRequest) (*ExtractResponse, error)
	ExtractSchedule(context.Context, *ExtractScheduleRequest) (*ExtractResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) ExtractScorebook(context.Context, *ExtractScorebookRequest) (*ExtractResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractScorebook not implemented")
}
func (UnimplementedExtractionServiceServer) ExtractRoster(context.Context, *ExtractRosterRequest) (*ExtractResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractRoster not implemented")
}
func (UnimplementedExtractionServiceServer) ExtractSchedule(context.Context, *ExtractScheduleRequest) (*ExtractResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractSchedule not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call panics, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_ExtractScorebook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractScorebookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractScorebook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractScorebook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractScorebook(ctx, req.(*ExtractScorebookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExtractRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractRoster(ctx, req.(*ExtractRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExtractSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractSchedule(ctx, req.(*ExtractScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractScorebook",
			Handler:    _ExtractionService_ExtractScorebook_Handler,
		},
		{
			MethodName: "ExtractRoster",
			Handler:    _ExtractionService_ExtractRoster_Handler,
		},
		{
			MethodName: "ExtractSchedule",
			Handler:    _ExtractionService_ExtractSchedule_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}

const (
	SchoolsService_ResolveSchool_FullMethodName = "/extraction.v1.SchoolsService/ResolveSchool"
	SchoolsService_ListSchools_FullMethodName   = "/extraction.v1.SchoolsService/ListSchools"
	SchoolsService_AddAlias_FullMethodName      = "/extraction.v1.SchoolsService/AddAlias"
)

// SchoolsServiceClient is the client API for SchoolsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SchoolsServiceClient interface {
	ResolveSchool(ctx context.Context, in *ResolveSchoolRequest, opts ...grpc.CallOption) (*ResolveSchoolResponse, error)
	ListSchools(ctx context.Context, in *ListSchoolsRequest, opts ...grpc.CallOption) (*ListSchoolsResponse, error)
	AddAlias(ctx context.Context, in *AddAliasRequest, opts ...grpc.CallOption) (*AddAliasResponse, error)
}

type schoolsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSchoolsServiceClient(cc grpc.ClientConnInterface) SchoolsServiceClient {
	return &schoolsServiceClient{cc}
}

func (c *schoolsServiceClient) ResolveSchool(ctx context.Context, in *ResolveSchoolRequest, opts ...grpc.CallOption) (*ResolveSchoolResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveSchoolResponse)
	err := c.cc.Invoke(ctx, SchoolsService_ResolveSchool_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schoolsServiceClient) ListSchools(ctx context.Context, in *ListSchoolsRequest, opts ...grpc.CallOption) (*ListSchoolsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSchoolsResponse)
	err := c.cc.Invoke(ctx, SchoolsService_ListSchools_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schoolsServiceClient) AddAlias(ctx context.Context, in *AddAliasRequest, opts ...grpc.CallOption) (*AddAliasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddAliasResponse)
	err := c.cc.Invoke(ctx, SchoolsService_AddAlias_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SchoolsServiceServer is the server API for SchoolsService service.
// All implementations must embed UnimplementedSchoolsServiceServer
// for forward compatibility.
type SchoolsServiceServer interface {
	ResolveSchool(context.Context, *ResolveSchoolRequest) (*ResolveSchoolResponse, error)
	ListSchools(context.Context, *ListSchoolsRequest) (*ListSchoolsResponse, error)
	AddAlias(context.Context, *AddAliasRequest) (*AddAliasResponse, error)
	mustEmbedUnimplementedSchoolsServiceServer()
}

// UnimplementedSchoolsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSchoolsServiceServer struct{}

func (UnimplementedSchoolsServiceServer) ResolveSchool(context.Context, *ResolveSchoolRequest) (*ResolveSchoolResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolveSchool not implemented")
}
func (UnimplementedSchoolsServiceServer) ListSchools(context.Context, *ListSchoolsRequest) (*ListSchoolsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSchools not implemented")
}
func (UnimplementedSchoolsServiceServer) AddAlias(context.Context, *AddAliasRequest) (*AddAliasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddAlias not implemented")
}
func (UnimplementedSchoolsServiceServer) mustEmbedUnimplementedSchoolsServiceServer() {}
func (UnimplementedSchoolsServiceServer) testEmbeddedByValue()                        {}

// UnsafeSchoolsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SchoolsServiceServer will
// result in compilation errors.
type UnsafeSchoolsServiceServer interface {
	mustEmbedUnimplementedSchoolsServiceServer()
}

func RegisterSchoolsServiceServer(s grpc.ServiceRegistrar, srv SchoolsServiceServer) {
	// If the following call panics, it indicates UnimplementedSchoolsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SchoolsService_ServiceDesc, srv)
}

func _SchoolsService_ResolveSchool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveSchoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchoolsServiceServer).ResolveSchool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchoolsService_ResolveSchool_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchoolsServiceServer).ResolveSchool(ctx, req.(*ResolveSchoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SchoolsService_ListSchools_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSchoolsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchoolsServiceServer).ListSchools(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchoolsService_ListSchools_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchoolsServiceServer).ListSchools(ctx, req.(*ListSchoolsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SchoolsService_AddAlias_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddAliasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchoolsServiceServer).AddAlias(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SchoolsService_AddAlias_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchoolsServiceServer).AddAlias(ctx, req.(*AddAliasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SchoolsService_ServiceDesc is the grpc.ServiceDesc for SchoolsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SchoolsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.SchoolsService",
	HandlerType: (*SchoolsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveSchool",
			Handler:    _SchoolsService_ResolveSchool_Handler,
		},
		{
			MethodName: "ListSchools",
			Handler:    _SchoolsService_ListSchools_Handler,
		},
		{
			MethodName: "AddAlias",
			Handler:    _SchoolsService_AddAlias_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}

const (
	CommitService_CommitRoster_FullMethodName   = "/extraction.v1.CommitService/CommitRoster"
	CommitService_CommitSchedule_FullMethodName = "/extraction.v1.CommitService/CommitSchedule"
	CommitService_CommitGame_FullMethodName     = "/extraction.v1.CommitService/CommitGame"
)

// CommitServiceClient is the client API for CommitService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CommitServiceClient interface {
	CommitRoster(ctx context.Context, in *CommitRosterRequest, opts ...grpc.CallOption) (*CommitResponse, error)
	CommitSchedule(ctx context.Context, in *CommitScheduleRequest, opts ...grpc.CallOption) (*CommitResponse, error)
	CommitGame(ctx context.Context, in *CommitGameRequest, opts ...grpc.CallOption) (*CommitResponse, error)
}

type commitServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCommitServiceClient(cc grpc.ClientConnInterface) CommitServiceClient {
	return &commitServiceClient{cc}
}

func (c *commitServiceClient) CommitRoster(ctx context.Context, in *CommitRosterRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitResponse)
	err := c.cc.Invoke(ctx, CommitService_CommitRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commitServiceClient) CommitSchedule(ctx context.Context, in *CommitScheduleRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitResponse)
	err := c.cc.Invoke(ctx, CommitService_CommitSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commitServiceClient) CommitGame(ctx context.Context, in *CommitGameRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitResponse)
	err := c.cc.Invoke(ctx, CommitService_CommitGame_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CommitServiceServer is the server API for CommitService service.
// All implementations must embed UnimplementedCommitServiceServer
// for forward compatibility.
type CommitServiceServer interface {
	CommitRoster(context.Context, *CommitRosterRequest) (*CommitResponse, error)
	CommitSchedule(context.Context, *CommitScheduleRequest) (*CommitResponse, error)
	CommitGame(context.Context, *CommitGameRequest) (*CommitResponse, error)
	mustEmbedUnimplementedCommitServiceServer()
}

// UnimplementedCommitServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCommitServiceServer struct{}

func (UnimplementedCommitServiceServer) CommitRoster(context.Context, *CommitRosterRequest) (*CommitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitRoster not implemented")
}
func (UnimplementedCommitServiceServer) CommitSchedule(context.Context, *CommitScheduleRequest) (*CommitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitSchedule not implemented")
}
func (UnimplementedCommitServiceServer) CommitGame(context.Context, *CommitGameRequest) (*CommitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitGame not implemented")
}
func (UnimplementedCommitServiceServer) mustEmbedUnimplementedCommitServiceServer() {}
func (UnimplementedCommitServiceServer) testEmbeddedByValue()                       {}

// UnsafeCommitServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CommitServiceServer will
// result in compilation errors.
type UnsafeCommitServiceServer interface {
	mustEmbedUnimplementedCommitServiceServer()
}

func RegisterCommitServiceServer(s grpc.ServiceRegistrar, srv CommitServiceServer) {
	// If the following call panics, it indicates UnimplementedCommitServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CommitService_ServiceDesc, srv)
}

func _CommitService_CommitRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitServiceServer).CommitRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CommitService_CommitRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitServiceServer).CommitRoster(ctx, req.(*CommitRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CommitService_CommitSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitServiceServer).CommitSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CommitService_CommitSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitServiceServer).CommitSchedule(ctx, req.(*CommitScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CommitService_CommitGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitServiceServer).CommitGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CommitService_CommitGame_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitServiceServer).CommitGame(ctx, req.(*CommitGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CommitService_ServiceDesc is the grpc.ServiceDesc for CommitService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CommitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.CommitService",
	HandlerType: (*CommitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CommitRoster",
			Handler:    _CommitService_CommitRoster_Handler,
		},
		{
			MethodName: "CommitSchedule",
			Handler:    _CommitService_CommitSchedule_Handler,
		},
		{
			MethodName: "CommitGame",
			Handler:    _CommitService_CommitGame_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}

const (
	ExportService_ExportRoster_FullMethodName   = "/extraction.v1.ExportService/ExportRoster"
	ExportService_ExportSchedule_FullMethodName = "/extraction.v1.ExportService/ExportSchedule"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportRoster(ctx context.Context, in *ExportRosterRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportSchedule(ctx context.Context, in *ExportScheduleRequest, opts ...grpc.CallOption) (*ExportResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportRoster(ctx context.Context, in *ExportRosterRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportSchedule(ctx context.Context, in *ExportScheduleRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportRoster(context.Context, *ExportRosterRequest) (*ExportResponse, error)
	ExportSchedule(context.Context, *ExportScheduleRequest) (*ExportResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportRoster(context.Context, *ExportRosterRequest) (*ExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportRoster not implemented")
}
func (UnimplementedExportServiceServer) ExportSchedule(context.Context, *ExportScheduleRequest) (*ExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportSchedule not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportRoster(ctx, req.(*ExportRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportSchedule(ctx, req.(*ExportScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportRoster",
			Handler:    _ExportService_ExportRoster_Handler,
		},
		{
			MethodName: "ExportSchedule",
			Handler:    _ExportService_ExportSchedule_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}
