// Package health exposes the standard grpc.health.v1 service, kept in step
// with the record store by a periodic ping.
package health

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name reported alongside the overall ("") status.
const Service = "bizsite.API"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	srv      *grpc.Server
	hs       *health.Server
	pinger   Pinger
	interval time.Duration
}

func New(p Pinger, interval time.Duration) *Server {
	hs := health.NewServer()
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary))
	healthpb.RegisterHealthServer(srv, hs)
	return &Server{srv: srv, hs: hs, pinger: p, interval: interval}
}

// Check pings the store once and publishes the result.
func (s *Server) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	err := s.pinger.Ping(ctx)
	if err != nil {
		log.Printf("health check: %v", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.hs.SetServingStatus("", st)
	s.hs.SetServingStatus(Service, st)
	return err == nil
}

// Run checks immediately and then every interval until ctx ends.
func (s *Server) Run(ctx context.Context) {
	s.Check(ctx)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Check(ctx)
		}
	}
}

func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight calls.
func (s *Server) Stop() {
	s.hs.Shutdown()
	s.srv.GracefulStop()
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)
	if err != nil {
		log.Printf("grpc %s ms=%d err=%v", info.FullMethod, time.Since(start).Milliseconds(), err)
	}
	return resp, err
}
