package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/clients/gmaps"
	"max.ks1230/public24-bot/internal/clients/privat"
	"max.ks1230/public24-bot/internal/clients/tg"
	"max.ks1230/public24-bot/internal/config"
	"max.ks1230/public24-bot/internal/logger"
	"max.ks1230/public24-bot/internal/model/messages"
	"max.ks1230/public24-bot/internal/model/rates"
	"max.ks1230/public24-bot/internal/model/webhook"
)

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	privatClient := privat.New(conf.Privat())
	ratesService := rates.NewService(privatClient, nil)
	fulfillment := webhook.NewService(ratesService, privatClient, gmaps.New(), conf.App())
	msgService := messages.NewService(client, fulfillment)

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client.ListenUpdates(ctx, msgService)
}
