package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/reputation"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/service"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr     string `long:"addr" env:"LINEAGE_API_ADDR" description:"gRPC listen addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"LINEAGE_API_REST_ADDR" description:"REST listen addr" default:":8001"`

	Store             string        `long:"store" env:"LINEAGE_API_STORE" description:"lineage store backend" choice:"clickhouse" choice:"sqlite" default:"sqlite"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"LINEAGE_API_CLICKHOUSE_DSN" description:"clickhouse dsn"`
	SQLitePath        string        `long:"sqlite-path" env:"LINEAGE_API_SQLITE_PATH" description:"path to tx.db" default:"tx.db"`
	SQLiteBusyTimeout time.Duration `long:"sqlite-busy-timeout" env:"LINEAGE_API_SQLITE_BUSY_TIMEOUT" description:"how long readers wait for the ingester write lock" default:"0s"`
	Network           string        `long:"network" env:"LINEAGE_API_NETWORK" description:"chain params used to decode output scripts" default:"mainnet"`

	OutputDepth         int `long:"output-depth" env:"LINEAGE_API_OUTPUT_DEPTH" description:"forward hops followed from the root transaction" default:"2"`
	TranslatorCacheSize int `long:"translator-cache-size" env:"LINEAGE_API_TRANSLATOR_CACHE_SIZE" description:"hash/value translator cache entries" default:"256"`
	OutputCacheSize     int `long:"output-cache-size" env:"LINEAGE_API_OUTPUT_CACHE_SIZE" description:"output rows cache entries" default:"256"`
	ReputationCacheSize int `long:"reputation-cache-size" env:"LINEAGE_API_REPUTATION_CACHE_SIZE" description:"address verdict cache entries" default:"512"`
	ExpandWorkers       int `long:"expand-workers" env:"LINEAGE_API_EXPAND_WORKERS" description:"transactions assembled in parallel per frontier" default:"8"`

	Reputation        string        `long:"reputation" env:"LINEAGE_API_REPUTATION" description:"reputation oracle" choice:"random" choice:"static" choice:"http" default:"random"`
	ReputationSeed    uint64        `long:"reputation-seed" env:"LINEAGE_API_REPUTATION_SEED" description:"seed of the random oracle"`
	ReputationFile    string        `long:"reputation-file" env:"LINEAGE_API_REPUTATION_FILE" description:"yaml file with whitelist and blacklist"`
	ReputationURL     string        `long:"reputation-url" env:"LINEAGE_API_REPUTATION_URL" description:"base url of the reputation service"`
	ReputationRPS     int           `long:"reputation-rps" env:"LINEAGE_API_REPUTATION_RPS" description:"reputation service requests per second, 0 is unlimited" default:"10"`
	ReputationTimeout time.Duration `long:"reputation-timeout" env:"LINEAGE_API_REPUTATION_TIMEOUT" description:"reputation service request timeout" default:"5s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	store, err := openStore(config.Store, logger.Named("store"))
	if err != nil {
		logger.Fatal("Open lineage store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Close lineage store", zap.Error(err))
		}
	}()
	if err := store.Ping(ctx); err != nil {
		logger.Warn("Lineage store is not reachable yet", zap.String("store", config.Store), zap.Error(err))
	}

	oracle, err := reputation.New(reputation.Config{
		Kind:     config.Reputation,
		Seed:     config.ReputationSeed,
		ListFile: config.ReputationFile,
		URL:      config.ReputationURL,
		RPS:      config.ReputationRPS,
		Timeout:  config.ReputationTimeout,
	}, metrics.NewReputation(config.Reputation), logger.Named("reputation"))
	if err != nil {
		logger.Fatal("Build reputation oracle", zap.Error(err))
	}

	explorer, err := service.NewExplorer(service.Dependencies{
		Store:             store,
		Oracle:            oracle,
		CacheMetrics:      metrics.NewCache(),
		ClassifierMetrics: metrics.NewReputation("classifier"),
		ExplorerMetrics:   metrics.NewExplorer(),
		Logger:            logger.Named("explorer"),
	}, service.Config{
		TranslatorCacheSize: config.TranslatorCacheSize,
		OutputCacheSize:     config.OutputCacheSize,
		ReputationCacheSize: config.ReputationCacheSize,
		OutputDepth:         config.OutputDepth,
		ExpandWorkers:       config.ExpandWorkers,
	})
	if err != nil {
		logger.Fatal("Build explorer", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	explorerHandler, err := transport.NewExplorerHandler(explorer, logger.Named("grpc"))
	if err != nil {
		logger.Fatal("Build explorer handler", zap.Error(err))
	}
	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, explorerHandler)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	lineageHandler, err := transport.NewLineageHandler(explorer, logger.Named("rest"))
	if err != nil {
		logger.Fatal("Build lineage handler", zap.Error(err))
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	lineageHandler.Register(engine)
	engine.NoRoute(gin.WrapH(gw))

	mux := http.NewServeMux()
	mux.Handle("/", engine)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.RestAddr),
		zap.String("store", config.Store),
		zap.String("reputation", config.Reputation),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
