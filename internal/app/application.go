package app

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands/chat"
	"github.com/gevsen/Tg-bot/internal/commands/menu"
	"github.com/gevsen/Tg-bot/internal/commands/reset"
	"github.com/gevsen/Tg-bot/internal/commands/settings"
	"github.com/gevsen/Tg-bot/internal/commands/start"
	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/core"
	"github.com/gevsen/Tg-bot/internal/logger"
)

type Application struct {
	Logger logger.Logger
	cfg    *config.Config
	bot    *core.Bot
	di     *di.Container
	ctx    context.Context
	cancel context.CancelFunc
}

func New() (*Application, error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		cancel()
		return nil, err
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		cancel()
		return nil, err
	}
	container.Logger.Info("DI Container created")

	botInstance := core.NewBot(
		container.BotClient,
		container.Logger,
		container.DB,
		cfg,
	)

	app := &Application{
		Logger: container.Logger,
		cfg:    cfg,
		bot:    botInstance,
		di:     container,
		ctx:    ctx,
		cancel: cancel,
	}

	app.registerCommands()

	return app, nil
}

func (a *Application) registerCommands() {
	a.bot.RegisterCommand(start.New(a.di))
	a.bot.RegisterCommand(reset.New(a.di))
	a.bot.RegisterCommand(settings.NewTemperature(a.di))
	a.bot.RegisterCommand(settings.NewTopP(a.di))
	a.bot.RegisterCommand(settings.NewBudget(a.di))
	a.bot.RegisterCommand(settings.NewGrounding(a.di))
	a.bot.RegisterCommand(settings.NewThinking(a.di))

	menuCmd := menu.New(a.di)
	a.bot.RegisterCommand(menuCmd)
	a.bot.RegisterCallbackHandler(menu.CommandName, menuCmd)

	a.bot.RegisterFallback(chat.New(a.di))
}

func (a *Application) Start() error {
	a.Logger.Info("Starting application")
	if err := a.bot.Start(a.ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *Application) WaitForShutdown() {
	<-a.ctx.Done()
	a.di.DB.Close()
	a.Logger.Info("Application stopped")
}
