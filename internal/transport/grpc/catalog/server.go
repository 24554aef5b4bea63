package catalog

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer builds a gRPC server exposing the catalog service and the
// standard health service. The returned health server starts as SERVING.
func NewServer(h CatalogServiceServer, enableReflection bool, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(), RecoveryInterceptor()),
	}, opts...)
	srv := grpc.NewServer(opts...)

	RegisterCatalogServiceServer(srv, h)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	if enableReflection {
		reflection.Register(srv)
	}
	return srv, hs
}
