// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: carbontracker/v1/carbon_tracker.proto

package carbontrackerv1

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
	CarbonTrackerService_ScanBill_FullMethodName         = "/carbontracker.v1.CarbonTrackerService/ScanBill"
	CarbonTrackerService_CreateManualBill_FullMethodName = "/carbontracker.v1.CarbonTrackerService/CreateManualBill"
	CarbonTrackerService_GetBill_FullMethodName          = "/carbontracker.v1.CarbonTrackerService/GetBill"
	CarbonTrackerService_ListBills_FullMethodName        = "/carbontracker.v1.CarbonTrackerService/ListBills"
	CarbonTrackerService_DeleteBill_FullMethodName       = "/carbontracker.v1.CarbonTrackerService/DeleteBill"
	CarbonTrackerService_ExportBills_FullMethodName      = "/carbontracker.v1.CarbonTrackerService/ExportBills"
)

// CarbonTrackerServiceClient is the client API for CarbonTrackerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CarbonTrackerServiceClient interface {
	ScanBill(ctx context.Context, in *ScanBillRequest, opts ...grpc.CallOption) (*ScanBillResponse, error)
	CreateManualBill(ctx context.Context, in *CreateManualBillRequest, opts ...grpc.CallOption) (*CreateManualBillResponse, error)
	GetBill(ctx context.Context, in *GetBillRequest, opts ...grpc.CallOption) (*GetBillResponse, error)
	ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsResponse, error)
	DeleteBill(ctx context.Context, in *DeleteBillRequest, opts ...grpc.CallOption) (*DeleteBillResponse, error)
	ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error)
}

type carbonTrackerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCarbonTrackerServiceClient(cc grpc.ClientConnInterface) CarbonTrackerServiceClient {
	return &carbonTrackerServiceClient{cc}
}

func (c *carbonTrackerServiceClient) ScanBill(ctx context.Context, in *ScanBillRequest, opts ...grpc.CallOption) (*ScanBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanBillResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_ScanBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonTrackerServiceClient) CreateManualBill(ctx context.Context, in *CreateManualBillRequest, opts ...grpc.CallOption) (*CreateManualBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateManualBillResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_CreateManualBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonTrackerServiceClient) GetBill(ctx context.Context, in *GetBillRequest, opts ...grpc.CallOption) (*GetBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBillResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_GetBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonTrackerServiceClient) ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBillsResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_ListBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonTrackerServiceClient) DeleteBill(ctx context.Context, in *DeleteBillRequest, opts ...grpc.CallOption) (*DeleteBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteBillResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_DeleteBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonTrackerServiceClient) ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBillsResponse)
	err := c.cc.Invoke(ctx, CarbonTrackerService_ExportBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CarbonTrackerServiceServer is the server API for CarbonTrackerService service.
// All implementations must embed UnimplementedCarbonTrackerServiceServer
// for forward compatibility.
type CarbonTrackerServiceServer interface {
	ScanBill(context.Context, *ScanBillRequest) (*ScanBillResponse, error)
	CreateManualBill(context.Context, *CreateManualBillRequest) (*CreateManualBillResponse, error)
	GetBill(context.Context, *GetBillRequest) (*GetBillResponse, error)
	ListBills(context.Context, *ListBillsRequest) (*ListBillsResponse, error)
	DeleteBill(context.Context, *DeleteBillRequest) (*DeleteBillResponse, error)
	ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error)
	mustEmbedUnimplementedCarbonTrackerServiceServer()
}

// UnimplementedCarbonTrackerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCarbonTrackerServiceServer struct{}

func (UnimplementedCarbonTrackerServiceServer) ScanBill(context.Context, *ScanBillRequest) (*ScanBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanBill not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) CreateManualBill(context.Context, *CreateManualBillRequest) (*CreateManualBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateManualBill not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) GetBill(context.Context, *GetBillRequest) (*GetBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBill not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) ListBills(context.Context, *ListBillsRequest) (*ListBillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBills not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) DeleteBill(context.Context, *DeleteBillRequest) (*DeleteBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBill not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBills not implemented")
}
func (UnimplementedCarbonTrackerServiceServer) mustEmbedUnimplementedCarbonTrackerServiceServer() {}
func (UnimplementedCarbonTrackerServiceServer) testEmbeddedByValue()                              {}

// UnsafeCarbonTrackerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CarbonTrackerServiceServer will
// result in compilation errors.
type UnsafeCarbonTrackerServiceServer interface {
	mustEmbedUnimplementedCarbonTrackerServiceServer()
}

func RegisterCarbonTrackerServiceServer(s grpc.ServiceRegistrar, srv CarbonTrackerServiceServer) {
	// If the following call pancis, it indicates UnimplementedCarbonTrackerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CarbonTrackerService_ServiceDesc, srv)
}

func _CarbonTrackerService_ScanBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).ScanBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_ScanBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).ScanBill(ctx, req.(*ScanBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonTrackerService_CreateManualBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateManualBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).CreateManualBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_CreateManualBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).CreateManualBill(ctx, req.(*CreateManualBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonTrackerService_GetBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).GetBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_GetBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).GetBill(ctx, req.(*GetBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonTrackerService_ListBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).ListBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_ListBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).ListBills(ctx, req.(*ListBillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonTrackerService_DeleteBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).DeleteBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_DeleteBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).DeleteBill(ctx, req.(*DeleteBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonTrackerService_ExportBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonTrackerServiceServer).ExportBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonTrackerService_ExportBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonTrackerServiceServer).ExportBills(ctx, req.(*ExportBillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CarbonTrackerService_ServiceDesc is the grpc.ServiceDesc for CarbonTrackerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CarbonTrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "carbontracker.v1.CarbonTrackerService",
	HandlerType: (*CarbonTrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScanBill",
			Handler:    _CarbonTrackerService_ScanBill_Handler,
		},
		{
			MethodName: "CreateManualBill",
			Handler:    _CarbonTrackerService_CreateManualBill_Handler,
		},
		{
			MethodName: "GetBill",
			Handler:    _CarbonTrackerService_GetBill_Handler,
		},
		{
			MethodName: "ListBills",
			Handler:    _CarbonTrackerService_ListBills_Handler,
		},
		{
			MethodName: "DeleteBill",
			Handler:    _CarbonTrackerService_DeleteBill_Handler,
		},
		{
			MethodName: "ExportBills",
			Handler:    _CarbonTrackerService_ExportBills_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carbontracker/v1/carbon_tracker.proto",
}

const (
	ProfilesService_CreateProfile_FullMethodName = "/carbontracker.v1.ProfilesService/CreateProfile"
	ProfilesService_ListProfiles_FullMethodName  = "/carbontracker.v1.ProfilesService/ListProfiles"
)

// ProfilesServiceClient is the client API for ProfilesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ProfilesServiceClient interface {
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error)
}

type profilesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfilesServiceClient(cc grpc.ClientConnInterface) ProfilesServiceClient {
	return &profilesServiceClient{cc}
}

func (c *profilesServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_CreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profilesServiceClient) ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProfilesResponse)
	err := c.cc.Invoke(ctx, ProfilesService_ListProfiles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfilesServiceServer is the server API for ProfilesService service.
// All implementations must embed UnimplementedProfilesServiceServer
// for forward compatibility.
type ProfilesServiceServer interface {
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error)
	mustEmbedUnimplementedProfilesServiceServer()
}

// UnimplementedProfilesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProfilesServiceServer struct{}

func (UnimplementedProfilesServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedProfilesServiceServer) ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProfiles not implemented")
}
func (UnimplementedProfilesServiceServer) mustEmbedUnimplementedProfilesServiceServer() {}
func (UnimplementedProfilesServiceServer) testEmbeddedByValue()                         {}

// UnsafeProfilesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProfilesServiceServer will
// result in compilation errors.
type UnsafeProfilesServiceServer interface {
	mustEmbedUnimplementedProfilesServiceServer()
}

func RegisterProfilesServiceServer(s grpc.ServiceRegistrar, srv ProfilesServiceServer) {
	// If the following call pancis, it indicates UnimplementedProfilesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProfilesService_ServiceDesc, srv)
}

func _ProfilesService_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_CreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfilesService_ListProfiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProfilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).ListProfiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_ListProfiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).ListProfiles(ctx, req.(*ListProfilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfilesService_ServiceDesc is the grpc.ServiceDesc for ProfilesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProfilesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "carbontracker.v1.ProfilesService",
	HandlerType: (*ProfilesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProfile",
			Handler:    _ProfilesService_CreateProfile_Handler,
		},
		{
			MethodName: "ListProfiles",
			Handler:    _ProfilesService_ListProfiles_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carbontracker/v1/carbon_tracker.proto",
}
