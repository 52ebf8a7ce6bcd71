package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizsite-api/internal/auth"
	"bizsite-api/internal/config"
	"bizsite-api/internal/handler"
	"bizsite-api/internal/health"
	"bizsite-api/internal/middleware"
	"bizsite-api/internal/store/backend"
	"bizsite-api/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// database
	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	st, kind, err := backend.Open(openCtx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	log.Printf("connected to %s", kind)

	files, err := uploads(ctx, cfg)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	hcfg := handler.Config{PublicURL: cfg.PublicURL, MaxUpload: cfg.UploadMaxBytes}
	var requireAdmin func(http.Handler) http.Handler
	if cfg.AuthEnabled() {
		hcfg.Admin = &auth.Admin{User: cfg.AdminUser, PasswordHash: cfg.AdminPasswordHash, Secret: cfg.JWTSecret}
		requireAdmin = middleware.RequireAdmin(cfg.JWTSecret)
		log.Println("admin auth enabled")
	} else {
		log.Println("JWT_SECRET not set, admin routes are open")
	}

	var limit func(http.Handler) http.Handler
	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		defer rl.Close()
		limit = rl.Limit
	}

	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logging,
		middleware.Recover,
		middleware.CORS(cfg.CORSOrigin),
	}
	if cfg.TrustProxy {
		// client addresses come from the proxy's forwarded headers
		mws = append([]func(http.Handler) http.Handler{middleware.RealIP}, mws...)
	}

	h := handler.New(st, files, hcfg)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Chain(h.Routes(requireAdmin, limit), mws...),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		log.Printf("http on :%s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http: %v", err)
			stop()
		}
	}()

	// grpc health
	var hs *health.Server
	if cfg.HealthPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.HealthPort)
		if err != nil {
			log.Fatalf("listen: %v", err)
		}
		hs = health.New(st, 15*time.Second)
		go hs.Run(ctx)
		go func() {
			log.Printf("grpc health on :%s", cfg.HealthPort)
			if err := hs.Serve(lis); err != nil {
				log.Printf("grpc: %v", err)
			}
		}()
	}

	// graceful shutdown
	<-ctx.Done()
	log.Println("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if hs != nil {
		hs.Stop()
	}
	if err := st.Close(shutCtx); err != nil {
		log.Printf("db close: %v", err)
	}
}

func uploads(ctx context.Context, cfg *config.Config) (upload.Storage, error) {
	if cfg.S3.Enabled() {
		m, err := upload.NewMinio(ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket)
		if err != nil {
			return nil, err
		}
		log.Printf("uploads in bucket %s", cfg.S3.Bucket)
		return m, nil
	}
	if _, err := os.Stat(cfg.UploadDir); errors.Is(err, os.ErrNotExist) {
		log.Printf("creating upload dir %s", cfg.UploadDir)
	}
	d, err := upload.NewDisk(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	return d, nil
}
