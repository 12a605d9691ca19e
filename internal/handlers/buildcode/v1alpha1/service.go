package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "buildcode.v1alpha1.BuildCodeService"

// Full method names
const (
	BuildCodeService_Encode_FullMethodName  = "/" + ServiceName + "/Encode"
	BuildCodeService_Decode_FullMethodName  = "/" + ServiceName + "/Decode"
	BuildCodeService_Inspect_FullMethodName = "/" + ServiceName + "/Inspect"
	BuildCodeService_Share_FullMethodName   = "/" + ServiceName + "/Share"
	BuildCodeService_Resolve_FullMethodName = "/" + ServiceName + "/Resolve"
	BuildCodeService_Delete_FullMethodName  = "/" + ServiceName + "/Delete"
)

// BuildCodeServiceClient is the client API for the build code service.
// Builds travel as google.protobuf.Struct holding their JSON form; codes and
// share IDs travel as google.protobuf.StringValue.
type BuildCodeServiceClient interface {
	Encode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Inspect(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Share(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type buildCodeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBuildCodeServiceClient creates a client bound to cc
func NewBuildCodeServiceClient(cc grpc.ClientConnInterface) BuildCodeServiceClient {
	return &buildCodeServiceClient{cc}
}

func (c *buildCodeServiceClient) Encode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, BuildCodeService_Encode_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *buildCodeServiceClient) Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeStruct(ctx, BuildCodeService_Decode_FullMethodName, in, opts...)
}

func (c *buildCodeServiceClient) Inspect(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeStruct(ctx, BuildCodeService_Inspect_FullMethodName, in, opts...)
}

func (c *buildCodeServiceClient) Share(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeStruct(ctx, BuildCodeService_Share_FullMethodName, in, opts...)
}

func (c *buildCodeServiceClient) Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeStruct(ctx, BuildCodeService_Resolve_FullMethodName, in, opts...)
}

func (c *buildCodeServiceClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, BuildCodeService_Delete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *buildCodeServiceClient) invokeStruct(ctx context.Context, method string, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildCodeServiceServer is the server API for the build code service.
// Implementations must embed UnimplementedBuildCodeServiceServer.
type BuildCodeServiceServer interface {
	Encode(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Decode(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Inspect(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Share(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Resolve(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	mustEmbedUnimplementedBuildCodeServiceServer()
}

// UnimplementedBuildCodeServiceServer answers every method with Unimplemented
type UnimplementedBuildCodeServiceServer struct{}

func (UnimplementedBuildCodeServiceServer) Encode(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Encode not implemented")
}
func (UnimplementedBuildCodeServiceServer) Decode(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Decode not implemented")
}
func (UnimplementedBuildCodeServiceServer) Inspect(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Inspect not implemented")
}
func (UnimplementedBuildCodeServiceServer) Share(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Share not implemented")
}
func (UnimplementedBuildCodeServiceServer) Resolve(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedBuildCodeServiceServer) Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedBuildCodeServiceServer) mustEmbedUnimplementedBuildCodeServiceServer() {}

// RegisterBuildCodeServiceServer registers srv with s
func RegisterBuildCodeServiceServer(s grpc.ServiceRegistrar, srv BuildCodeServiceServer) {
	s.RegisterService(&BuildCodeService_ServiceDesc, srv)
}

// unaryHandler adapts one server method to a grpc.MethodDesc handler
func unaryHandler[Req any](
	fullMethod string,
	call func(BuildCodeServiceServer, context.Context, *Req) (any, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BuildCodeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BuildCodeServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BuildCodeService_ServiceDesc is the grpc.ServiceDesc for the build code service
var BuildCodeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuildCodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Encode",
			Handler: unaryHandler(BuildCodeService_Encode_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *structpb.Struct) (any, error) {
					return s.Encode(ctx, in)
				}),
		},
		{
			MethodName: "Decode",
			Handler: unaryHandler(BuildCodeService_Decode_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
					return s.Decode(ctx, in)
				}),
		},
		{
			MethodName: "Inspect",
			Handler: unaryHandler(BuildCodeService_Inspect_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
					return s.Inspect(ctx, in)
				}),
		},
		{
			MethodName: "Share",
			Handler: unaryHandler(BuildCodeService_Share_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
					return s.Share(ctx, in)
				}),
		},
		{
			MethodName: "Resolve",
			Handler: unaryHandler(BuildCodeService_Resolve_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
					return s.Resolve(ctx, in)
				}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(BuildCodeService_Delete_FullMethodName,
				func(s BuildCodeServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
					return s.Delete(ctx, in)
				}),
		},
	},
	Streams: []grpc.StreamDesc{},
}
