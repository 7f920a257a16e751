package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/api/handler"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/cache"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/chatgpt"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/converter"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/digitalocean"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/domain"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/services"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/telegram"
	"github.com/dkruglov/voicegpt-telegram-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN,required"`
	OpenAIToken       string `env:"OPENAI_API_KEY,required"`
	WhisperToken      string `env:"WHISPER_API_KEY,required"`
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	DigitalOceanToken string `env:"DIGITALOCEAN_TOKEN"`
	HTTPServerAddress string `env:"HTTP_SERVER_ADDRESS" envDefault:":8080"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	var worker workers.Worker
	var workerGroup workers.Group

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	answerCache := cache.NewRedisCache(net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)))
	openAIClient := chatgpt.NewClient(cfg.OpenAIToken)
	whisperClient := chatgpt.NewAudioClient(cfg.WhisperToken)

	responseCh := make(chan domain.Response)

	answerService := services.NewAnswerService(answerCache, openAIClient)
	speechService := services.NewSpeechService(openAIClient)

	voiceService := services.NewVoiceService(
		telegramClient,
		&converter.OggTomp3{},
		whisperClient,
		answerService,
		speechService,
		responseCh,
	)

	var balanceProvider services.BalanceProvider
	if cfg.DigitalOceanToken != "" {
		balanceProvider = digitalocean.NewClient(cfg.DigitalOceanToken)
	}
	commandService := services.NewCommandService(balanceProvider, responseCh)

	updateHandler := telegram.NewHandler(voiceService, commandService)

	if worker, err = workers.NewTelegramUpdateListener(
		telegramClient,
		updateHandler,
		responseCh,
	); err == nil {
		workerGroup = append(workerGroup, worker)
	} else {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.NewHealth().Check)
	mux.HandleFunc("/answer", handler.NewAnswer(answerService).ResolveAnswer)

	if worker, err = workers.NewHTTPServer(cfg.HTTPServerAddress, mux); err == nil {
		workerGroup = append(workerGroup, worker)
	} else {
		return nil, err
	}

	return workerGroup, nil
}
