package di

import (
	"context"
	"net/http"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/gevsen/Tg-bot/internal/ai"
	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/database"
	"github.com/gevsen/Tg-bot/internal/keyboard"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/network"
	"github.com/gevsen/Tg-bot/internal/service"
	"github.com/gevsen/Tg-bot/internal/session"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

type Container struct {
	BotClient  telegram.Client
	Logger     logger.Logger
	DB         database.Database
	Cfg        *config.Config
	AI         *ai.Client
	Sessions   *session.Store
	Localizer  *service.Localizer
	Keyboard   *keyboard.Renderer
	HttpClient *http.Client
}

func NewContainer(cfg *config.Config) (*Container, error) {
	logCfg := cfg.Log()
	l := logger.NewLogrusLogger(&logCfg)

	db, err := database.NewSQLiteDB(cfg, l)
	if err != nil {
		return nil, err
	}

	localizer, err := service.NewLocalizer(cfg.Global().InterfaceLanguage)
	if err != nil {
		l.WithError(err).Fatal("Error create localizer")
	}

	httpCfg := network.NewDefaultHTTPClientConfig(cfg.HTTP())
	httpClient := network.SetupHTTPClient(httpCfg, l)

	aiClient, err := ai.NewClient(context.Background(), cfg.Gemini(), httpClient, l)
	if err != nil {
		return nil, err
	}
	l.WithField("model", aiClient.Model()).Info("Gemini client initialized")

	sessions := session.NewStore(func() ai.Conversation {
		return aiClient.NewConversation()
	})

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram().Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		l.WithError(err).Fatal("Bot API client initialization error")
	}
	l.Info("Bot API initialized")

	return &Container{
		BotClient:  telegram.NewBotClient(api, httpClient, l),
		Logger:     l,
		DB:         db,
		Cfg:        cfg,
		AI:         aiClient,
		Sessions:   sessions,
		Localizer:  localizer,
		Keyboard:   keyboard.NewRenderer(localizer),
		HttpClient: httpClient,
	}, nil
}
