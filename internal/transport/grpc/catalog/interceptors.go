package catalog

import (
	"context"
	"path"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/metrics"
)

// RequestIDHeader is the metadata key carrying the caller's request id.
const RequestIDHeader = "x-request-id"

// UnaryServerInterceptor tags every call with a request id, then logs and
// records its status code and latency.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		ctx = logging.ContextWithRequestID(ctx, requestID(ctx))

		resp, err := handler(ctx, req)

		code := status.Code(err)
		elapsed := time.Since(start)
		metrics.RecordGRPCRequest(path.Base(info.FullMethod), code.String(), elapsed)

		ev := logging.Ctx(ctx).Info()
		if err != nil {
			ev = logging.Ctx(ctx).Warn().Err(err)
		}
		ev.Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", elapsed).
			Msg("grpc request")
		return resp, err
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal so one bad
// request cannot take the process down. It runs inside UnaryServerInterceptor,
// which then logs and counts the call as Internal.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				metrics.GRPCPanics.WithLabelValues(path.Base(info.FullMethod)).Inc()
				logging.Ctx(ctx).Error().
					Str("method", info.FullMethod).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("grpc handler panicked")
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeader); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return logging.NewRequestID()
}
