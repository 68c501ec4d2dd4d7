// Package grpc runs the ops-facing gRPC server: the standard health-check
// service plus panic-recovery, logging and Prometheus interceptors. It serves
// liveness for orchestrators; the storefront API itself stays on HTTP.
package grpc

import (
	"context"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/metrics"
)

var (
	handledTotal = promauto.With(metrics.Registry()).NewCounterVec(prometheus.CounterOpts{
		Namespace: "localconnect",
		Subsystem: "grpc",
		Name:      "handled_total",
		Help:      "Total gRPC calls completed, by method and code.",
	}, []string{"grpc_method", "grpc_code"})

	handlingSeconds = promauto.With(metrics.Registry()).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "localconnect",
		Subsystem: "grpc",
		Name:      "handling_seconds",
		Help:      "gRPC response latency in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"grpc_method"})
)

func recoveryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("grpc: panic recovered",
				"method", info.FullMethod,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

func observeInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	handledTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	handlingSeconds.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())

	logger.Debug("grpc: call handled",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start).String(),
	)
	return resp, err
}

// Start listens on :port and serves health checks until Stop is called.
func Start(port string) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, nil, fmt.Errorf("grpc: listen :%s: %w", port, err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(recoveryInterceptor, observeInterceptor),
	)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	reflection.Register(srv)

	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc: serve stopped", "error", err)
		}
	}()

	logger.Info("grpc: ops server listening", "port", port)
	return srv, lis, nil
}

// Stop drains in-flight calls and shuts the server down.
func Stop(srv *grpc.Server) {
	if srv != nil {
		srv.GracefulStop()
	}
}
