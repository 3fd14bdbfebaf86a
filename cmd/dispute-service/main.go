package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/app/background"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/config"
	deliveryhttp "github.com/jinwoo-93/crossdeal-dispute-service/internal/delivery/http"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/delivery/http/handlers"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/kafka"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/metrics"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/migrate"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/repository"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/push"
	usecase "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dispute"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/jury"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.DisputeDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.DisputeDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	disputeKafkaPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init repositories
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	settlementRepo := repository.NewDefaultSettlementRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	juryRepo := repository.NewDefaultJuryAssignmentRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)

	// Init push sender
	pushSender := push.NewHTTPPushSender(fmt.Sprintf("http://%s:%s", cfg.PushService.Host, cfg.PushService.Port))

	disputeMetrics := metrics.NewDisputeMetrics(prometheus.DefaultRegisterer)

	// Init dispute usecase
	disputeUc := usecase.NewDefaultDisputeUsecase(
		disputeRepo,
		orderRepo,
		paymentRepo,
		settlementRepo,
		juryRepo,
		notificationRepo,
		pushSender,
		disputeKafkaPublisher,
		cfg.Rules,
		disputeMetrics,
	)

	// Init jury selector
	sampler := jury.NewSampler(rand.NewSource(time.Now().UnixNano()))
	jurySelector := jury.NewDefaultJurySelector(
		disputeRepo,
		orderRepo,
		userRepo,
		juryRepo,
		notificationRepo,
		pushSender,
		sampler,
		cfg.Rules,
		disputeMetrics,
	)

	// Timeout sweep for expired votings
	tasks := background.NewBackgroundTasks(disputeUc, cfg.Rules.SweepInterval)
	tasks.StartAll(context.Background())

	// Prometheus endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		log.Printf("metrics server started on %s\n", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("metrics server failed: %v\n", err)
		}
	}()

	// gRPC health endpoint for the platform's probes
	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}
		grpcServer := grpc.NewServer()
		healthServer := health.NewServer()
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(grpcServer, healthServer)
		log.Printf("gRPC health server started on %s:%s\n", cfg.GRPCServer.Host, cfg.GRPCServer.Port)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	// HTTP API
	disputeHandler := handlers.NewDisputeHandler(disputeUc, jurySelector)
	router := deliveryhttp.NewRouter(disputeHandler)
	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
