package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/handlers/buildcode/v1alpha1"
	"github.com/KirkDiggler/build-share-api/internal/orchestrators/buildshare"
	"github.com/KirkDiggler/build-share-api/internal/pkg/clock"
	"github.com/KirkDiggler/build-share-api/internal/pkg/idgen"
	"github.com/KirkDiggler/build-share-api/internal/redis"
	sharedbuild "github.com/KirkDiggler/build-share-api/internal/repositories/shared_build"
)

const (
	shareIDPrefix       = "bld"
	redisPingTimeout    = 5 * time.Second
	gracefulStopTimeout = 30 * time.Second
)

// serverConfig holds the server flags
type serverConfig struct {
	Port          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ShareTTL      time.Duration
	TextCodec     string
	IDKind        string
}

var cfg serverConfig

// Validate checks the flag values
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	if c.RedisAddr == "" {
		vb.RequiredField("redis-addr")
	}
	if c.RedisDB < 0 {
		vb.Field("redis-db", "must not be negative")
	}
	if c.ShareTTL <= 0 || c.ShareTTL > buildshare.MaxShareTTL {
		vb.Fieldf("share-ttl", "must be between 1s and %s", buildshare.MaxShareTTL)
	}
	if _, err := textcodec.Lookup(c.TextCodec); err != nil {
		vb.Field("text-codec", errors.GetMessage(err))
	}
	if !slices.Contains(idgen.Kinds(), c.IDKind) {
		vb.Fieldf("id-kind", "must be one of %s, got %q", strings.Join(idgen.Kinds(), ", "), c.IDKind)
	}

	return vb.Build()
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the build code gRPC server backed by Redis for share links.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&cfg.Port, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&cfg.RedisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	serverCmd.Flags().StringVar(&cfg.RedisPassword, "redis-password", os.Getenv("REDIS_PASSWORD"), "Redis password")
	serverCmd.Flags().IntVar(&cfg.RedisDB, "redis-db", 0, "Redis database number")
	serverCmd.Flags().DurationVar(&cfg.ShareTTL, "share-ttl", buildshare.DefaultShareTTL, "How long share links live")
	serverCmd.Flags().StringVar(&cfg.TextCodec, "text-codec", textcodec.Default.Name(), "Text codec for build codes")
	serverCmd.Flags().StringVar(&cfg.IDKind, "id-kind", "short", "Share ID generator: short, ulid or uuid")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}()

	if err := redis.Ping(ctx, redisClient, redisPingTimeout); err != nil {
		return err
	}

	handler, err := buildHandler(redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterBuildCodeServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (text codec %s, share ttl %s)...",
			cfg.Port, cfg.TextCodec, cfg.ShareTTL)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires the repository, orchestrator and handler
func buildHandler(client redis.Client) (*v1alpha1.Handler, error) {
	repo, err := sharedbuild.NewRedisRepository(&sharedbuild.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shared build repository: %w", err)
	}

	text, err := textcodec.Lookup(cfg.TextCodec)
	if err != nil {
		return nil, err
	}

	idGen, err := idgen.New(cfg.IDKind, shareIDPrefix)
	if err != nil {
		return nil, err
	}

	svc, err := buildshare.NewOrchestrator(&buildshare.Config{
		Repository:  repo,
		IDGenerator: idGen,
		TextCodec:   text,
		ShareTTL:    cfg.ShareTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create build orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BuildService: svc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create build code handler: %w", err)
	}

	slog.Debug("build code service wired", "id_kind", cfg.IDKind)

	return handler, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
