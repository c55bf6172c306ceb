package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/clients/cache"
	"max.ks1230/public24-bot/internal/clients/gmaps"
	"max.ks1230/public24-bot/internal/clients/kafka"
	"max.ks1230/public24-bot/internal/clients/privat"
	"max.ks1230/public24-bot/internal/config"
	"max.ks1230/public24-bot/internal/logger"
	"max.ks1230/public24-bot/internal/model/rates"
	"max.ks1230/public24-bot/internal/model/webhook"
	"max.ks1230/public24-bot/internal/server"
)

const (
	serviceName     = "public24-webhook"
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger.Info("Webhook init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracerCloser, err := initTracing(serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() { _ = tracerCloser.Close() }()

	privatClient := privat.New(conf.Privat())
	ratesService := newRatesService(conf, privatClient)

	fulfillment := webhook.NewService(ratesService, privatClient, gmaps.New(), conf.App())
	if len(conf.Kafka().Brokers()) > 0 {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		fulfillment.SetEventProducer(producer)
	}

	srv := server.New(conf.Server().Port(), fulfillment)

	logger.Info("Webhook init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", zap.Error(err))
		}
	}()

	if err = srv.Run(); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}

func newRatesService(conf *config.Service, privatClient *privat.Client) *rates.Service {
	if len(conf.Memcached().Hosts()) == 0 {
		return rates.NewService(privatClient, nil)
	}
	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached:", zap.Error(err))
	}
	return rates.NewService(privatClient, mc)
}

func initTracing(service string) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
