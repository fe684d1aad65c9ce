// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docanchor/v1/docanchor.proto

package docanchorv1

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
	DocAnchorService_UploadDocument_FullMethodName  = "/docanchor.v1.DocAnchorService/UploadDocument"
	DocAnchorService_GetIngestion_FullMethodName    = "/docanchor.v1.DocAnchorService/GetIngestion"
	DocAnchorService_ListIngestions_FullMethodName  = "/docanchor.v1.DocAnchorService/ListIngestions"
	DocAnchorService_ResumeIngestion_FullMethodName = "/docanchor.v1.DocAnchorService/ResumeIngestion"
	DocAnchorService_VerifyIngestion_FullMethodName = "/docanchor.v1.DocAnchorService/VerifyIngestion"
	DocAnchorService_ExportHistory_FullMethodName   = "/docanchor.v1.DocAnchorService/ExportHistory"
)

// DocAnchorServiceClient is the client API for DocAnchorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocAnchorService is the upload/audit boundary of the ingestion pipeline.
type DocAnchorServiceClient interface {
	// UploadDocument runs the full pipeline: extract, canonicalize, hash,
	// encrypt, store, anchor, persist.
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	// GetIngestion returns one ingestion record by id.
	GetIngestion(ctx context.Context, in *GetIngestionRequest, opts ...grpc.CallOption) (*GetIngestionResponse, error)
	// ListIngestions queries history by subject or by fingerprint.
	ListIngestions(ctx context.Context, in *ListIngestionsRequest, opts ...grpc.CallOption) (*ListIngestionsResponse, error)
	// ResumeIngestion re-anchors a failed ingestion from its stored-CID
	// checkpoint without re-storing the blob.
	ResumeIngestion(ctx context.Context, in *ResumeIngestionRequest, opts ...grpc.CallOption) (*ResumeIngestionResponse, error)
	// VerifyIngestion decrypts the stored envelope and checks it against the
	// recorded fingerprint.
	VerifyIngestion(ctx context.Context, in *VerifyIngestionRequest, opts ...grpc.CallOption) (*VerifyIngestionResponse, error)
	// ExportHistory renders a subject's ingestion history as an XLSX workbook.
	ExportHistory(ctx context.Context, in *ExportHistoryRequest, opts ...grpc.CallOption) (*ExportHistoryResponse, error)
}

type docAnchorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocAnchorServiceClient(cc grpc.ClientConnInterface) DocAnchorServiceClient {
	return &docAnchorServiceClient{cc}
}

func (c *docAnchorServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docAnchorServiceClient) GetIngestion(ctx context.Context, in *GetIngestionRequest, opts ...grpc.CallOption) (*GetIngestionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetIngestionResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_GetIngestion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docAnchorServiceClient) ListIngestions(ctx context.Context, in *ListIngestionsRequest, opts ...grpc.CallOption) (*ListIngestionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListIngestionsResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_ListIngestions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docAnchorServiceClient) ResumeIngestion(ctx context.Context, in *ResumeIngestionRequest, opts ...grpc.CallOption) (*ResumeIngestionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeIngestionResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_ResumeIngestion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docAnchorServiceClient) VerifyIngestion(ctx context.Context, in *VerifyIngestionRequest, opts ...grpc.CallOption) (*VerifyIngestionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyIngestionResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_VerifyIngestion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docAnchorServiceClient) ExportHistory(ctx context.Context, in *ExportHistoryRequest, opts ...grpc.CallOption) (*ExportHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportHistoryResponse)
	err := c.cc.Invoke(ctx, DocAnchorService_ExportHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocAnchorServiceServer is the server API for DocAnchorService service.
// All implementations must embed UnimplementedDocAnchorServiceServer
// for forward compatibility.
//
// DocAnchorService is the upload/audit boundary of the ingestion pipeline.
type DocAnchorServiceServer interface {
	// UploadDocument runs the full pipeline: extract, canonicalize, hash,
	// encrypt, store, anchor, persist.
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	// GetIngestion returns one ingestion record by id.
	GetIngestion(context.Context, *GetIngestionRequest) (*GetIngestionResponse, error)
	// ListIngestions queries history by subject or by fingerprint.
	ListIngestions(context.Context, *ListIngestionsRequest) (*ListIngestionsResponse, error)
	// ResumeIngestion re-anchors a failed ingestion from its stored-CID
	// checkpoint without re-storing the blob.
	ResumeIngestion(context.Context, *ResumeIngestionRequest) (*ResumeIngestionResponse, error)
	// VerifyIngestion decrypts the stored envelope and checks it against the
	// recorded fingerprint.
	VerifyIngestion(context.Context, *VerifyIngestionRequest) (*VerifyIngestionResponse, error)
	// ExportHistory renders a subject's ingestion history as an XLSX workbook.
	ExportHistory(context.Context, *ExportHistoryRequest) (*ExportHistoryResponse, error)
	mustEmbedUnimplementedDocAnchorServiceServer()
}

// UnimplementedDocAnchorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocAnchorServiceServer struct{}

func (UnimplementedDocAnchorServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedDocAnchorServiceServer) GetIngestion(context.Context, *GetIngestionRequest) (*GetIngestionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetIngestion not implemented")
}
func (UnimplementedDocAnchorServiceServer) ListIngestions(context.Context, *ListIngestionsRequest) (*ListIngestionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListIngestions not implemented")
}
func (UnimplementedDocAnchorServiceServer) ResumeIngestion(context.Context, *ResumeIngestionRequest) (*ResumeIngestionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeIngestion not implemented")
}
func (UnimplementedDocAnchorServiceServer) VerifyIngestion(context.Context, *VerifyIngestionRequest) (*VerifyIngestionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyIngestion not implemented")
}
func (UnimplementedDocAnchorServiceServer) ExportHistory(context.Context, *ExportHistoryRequest) (*ExportHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportHistory not implemented")
}
func (UnimplementedDocAnchorServiceServer) mustEmbedUnimplementedDocAnchorServiceServer() {}
func (UnimplementedDocAnchorServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocAnchorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocAnchorServiceServer will
// result in compilation errors.
type UnsafeDocAnchorServiceServer interface {
	mustEmbedUnimplementedDocAnchorServiceServer()
}

func RegisterDocAnchorServiceServer(s grpc.ServiceRegistrar, srv DocAnchorServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocAnchorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocAnchorService_ServiceDesc, srv)
}

func _DocAnchorService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocAnchorService_GetIngestion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetIngestionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).GetIngestion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_GetIngestion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).GetIngestion(ctx, req.(*GetIngestionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocAnchorService_ListIngestions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListIngestionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).ListIngestions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_ListIngestions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).ListIngestions(ctx, req.(*ListIngestionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocAnchorService_ResumeIngestion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeIngestionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).ResumeIngestion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_ResumeIngestion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).ResumeIngestion(ctx, req.(*ResumeIngestionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocAnchorService_VerifyIngestion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyIngestionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).VerifyIngestion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_VerifyIngestion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).VerifyIngestion(ctx, req.(*VerifyIngestionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocAnchorService_ExportHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocAnchorServiceServer).ExportHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocAnchorService_ExportHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocAnchorServiceServer).ExportHistory(ctx, req.(*ExportHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocAnchorService_ServiceDesc is the grpc.ServiceDesc for DocAnchorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocAnchorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docanchor.v1.DocAnchorService",
	HandlerType: (*DocAnchorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _DocAnchorService_UploadDocument_Handler,
		},
		{
			MethodName: "GetIngestion",
			Handler:    _DocAnchorService_GetIngestion_Handler,
		},
		{
			MethodName: "ListIngestions",
			Handler:    _DocAnchorService_ListIngestions_Handler,
		},
		{
			MethodName: "ResumeIngestion",
			Handler:    _DocAnchorService_ResumeIngestion_Handler,
		},
		{
			MethodName: "VerifyIngestion",
			Handler:    _DocAnchorService_VerifyIngestion_Handler,
		},
		{
			MethodName: "ExportHistory",
			Handler:    _DocAnchorService_ExportHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docanchor/v1/docanchor.proto",
}
