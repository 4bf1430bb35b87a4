// Package discord presents the fishing game as Discord slash commands.
package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/fishing"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// Scheduler runs delayed presentation work such as the reel-in reveal.
type Scheduler interface {
	Schedule(key string, delay time.Duration, task func(ctx context.Context)) error
}

// Deps are the collaborators every command handler can reach.
type Deps struct {
	Service    fishing.Service
	Confirms   *confirm.Manager
	Scheduler  Scheduler
	ReelDelay  time.Duration
	HTTPClient *http.Client // downloads /load attachments
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	deps     *Deps
	ctx      context.Context
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot with every game command registered.
func New(cfg Config, deps *Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	if deps.HTTPClient == nil {
		deps.HTTPClient = &http.Client{Timeout: attachmentTimeout}
	}

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: DefaultRegistry(),
		deps:     deps,
		ctx:      context.Background(),
	}, nil
}

// DefaultRegistry holds the game's commands.
func DefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()
	r.Register(GameCommand())
	r.Register(FishCommand())
	r.Register(FishItemCommand())
	r.Register(ShopCommand())
	r.Register(BuyCommand())
	r.Register(BagCommand())
	r.Register(NewGameCommand())
	r.Register(SaveCommand())
	r.Register(LoadCommand())
	return r
}

// Run opens the gateway, registers commands and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context, forceUpdate bool) error {
	b.ctx = ctx
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	defer b.Session.Close()

	if b.AppID == "" && b.Session.State != nil && b.Session.State.User != nil {
		b.AppID = b.Session.State.User.ID
	}
	if err := b.RegisterCommands(ctx, forceUpdate); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Discord bot is now running")
	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	logger.FromContext(b.ctx).Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := logger.WithRequestID(b.ctx, i.ID)
	b.Registry.Dispatch(ctx, s, i, b.deps)
}
