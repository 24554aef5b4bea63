package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "catalog.v1.CatalogService"

// Method names of catalog.v1.CatalogService.
const (
	MethodGetProduct              = "GetProduct"
	MethodGetCatalogFeed          = "GetCatalogFeed"
	MethodGetCombinationFilter    = "GetCombinationFilter"
	MethodGetPrice                = "GetPrice"
	MethodGetPriceList            = "GetPriceList"
	MethodGetRelatedProducts      = "GetRelatedProducts"
	MethodGetRelatedForCollection = "GetRelatedForCollection"
	MethodSetProductSale          = "SetProductSale"
	MethodUpdateProduct           = "UpdateProduct"
	MethodUpdateVariantPrice      = "UpdateVariantPrice"
	MethodRelateProducts          = "RelateProducts"
	MethodGenerateVariants        = "GenerateVariants"
)

// CatalogServiceServer is implemented by Handler. Every message is a
// google.protobuf.Struct.
type CatalogServiceServer interface {
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCatalogFeed(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCombinationFilter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPriceList(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRelatedProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRelatedForCollection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetProductSale(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateVariantPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RelateProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateVariants(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type method func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call method) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
			})
		},
	}
}

// ServiceDesc describes catalog.v1.CatalogService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodGetProduct, CatalogServiceServer.GetProduct),
		unary(MethodGetCatalogFeed, CatalogServiceServer.GetCatalogFeed),
		unary(MethodGetCombinationFilter, CatalogServiceServer.GetCombinationFilter),
		unary(MethodGetPrice, CatalogServiceServer.GetPrice),
		unary(MethodGetPriceList, CatalogServiceServer.GetPriceList),
		unary(MethodGetRelatedProducts, CatalogServiceServer.GetRelatedProducts),
		unary(MethodGetRelatedForCollection, CatalogServiceServer.GetRelatedForCollection),
		unary(MethodSetProductSale, CatalogServiceServer.SetProductSale),
		unary(MethodUpdateProduct, CatalogServiceServer.UpdateProduct),
		unary(MethodUpdateVariantPrice, CatalogServiceServer.UpdateVariantPrice),
		unary(MethodRelateProducts, CatalogServiceServer.RelateProducts),
		unary(MethodGenerateVariants, CatalogServiceServer.GenerateVariants),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

// RegisterCatalogServiceServer registers srv on s.
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls catalog.v1.CatalogService methods by name.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and returns the response struct.
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
