package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/metrics"
)

// CommandHandler handles a slash command. The returned error is for logs and
// metrics only; the handler has already answered the user.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
	order    []string
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	if _, dup := r.Commands[cmd.Name]; !dup {
		r.order = append(r.order, cmd.Name)
	}
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Definitions returns the commands in registration order.
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.Commands[name])
	}
	return out
}

// Dispatch routes an interaction by type.
func (r *CommandRegistry) Dispatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.Handle(ctx, s, i, d)
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(ctx, s, i, d)
	case discordgo.InteractionMessageComponent:
		HandleComponent(ctx, s, i, d)
	}
}

// Handle runs the slash command handler and records its outcome.
func (r *CommandRegistry) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		logger.FromContext(ctx).Warn("Unknown command", "command", name)
		return
	}

	start := time.Now()
	err := h(ctx, s, i, d)
	metrics.CommandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	status := metrics.ResultOK
	log := logger.FromContext(ctx).With("command", name, logger.AttrKeyPlayerID, getInteractionUser(i).ID)
	switch {
	case err == nil:
		log.Debug("Command handled")
	case domain.IsUserError(err):
		status = metrics.ResultRejected
		log.Info("Command rejected", "error", err)
	default:
		status = metrics.ResultError
		log.Error("Command failed", "error", err)
	}
	metrics.DiscordCommands.WithLabelValues(name, status).Inc()
}

// RegisterCommands registers or updates commands with Discord, skipping the
// call when nothing changed to avoid rate limits.
func (b *Bot) RegisterCommands(ctx context.Context, forceUpdate bool) error {
	log := logger.FromContext(ctx)
	desiredCmds := b.Registry.Definitions()

	if forceUpdate {
		log.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		return nil
	}

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	if commandsEqual(existingCmds, desiredCmds) {
		log.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	log.Info("Commands changed, updating...", "existing", len(existingCmds), "desired", len(desiredCmds))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	log.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// displayName prefers the guild nickname, then the global name.
func displayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	u := getInteractionUser(i)
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// getStringOption returns the named string option or "".
func getStringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range getOptions(i) {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// respond answers an interaction with a message. Ephemeral messages are only
// visible to the caller.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData, ephemeral bool) error {
	if ephemeral {
		data.Flags |= discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	return respond(s, i, &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}, ephemeral)
}

// respondFriendlyError answers privately with a readable version of err and
// returns err so handlers can propagate it.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if rerr := respond(s, i, &discordgo.InteractionResponseData{Content: formatFriendlyError(err)}, true); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

// deferResponse acknowledges an interaction whose answer is sent later with
// editResponse. Required before work that might take longer than 3 seconds.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		return fmt.Errorf("failed to send deferred response: %w", err)
	}
	return nil
}

// editResponse replaces the original response.
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, edit *discordgo.WebhookEdit) error {
	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		return fmt.Errorf("failed to edit interaction response: %w", err)
	}
	return nil
}

func editEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return editResponse(s, i, &discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{embed}})
}

// editFriendlyError is respondFriendlyError for deferred interactions.
func editFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	msg := formatFriendlyError(err)
	if eerr := editResponse(s, i, &discordgo.WebhookEdit{Content: &msg}); eerr != nil {
		return errors.Join(err, eerr)
	}
	return err
}

// detail strips the sentinel prefix from a wrapped error message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// formatFriendlyError turns a service error into something a player can act on.
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds + "\n" + detail(err, domain.ErrInsufficientFunds)
	case errors.Is(err, domain.ErrItemNotFound):
		if strings.Contains(err.Error(), "did you mean") {
			return MsgItemNotFound + "\n" + detail(err, domain.ErrItemNotFound)
		}
		return MsgItemNotFound
	case errors.Is(err, domain.ErrRodNotFound):
		if strings.Contains(err.Error(), "did you mean") {
			return MsgRodNotFound + "\n" + detail(err, domain.ErrRodNotFound)
		}
		return MsgRodNotFound
	case errors.Is(err, domain.ErrNotARod):
		return MsgNotARod
	case errors.Is(err, domain.ErrNotPurchasable):
		return MsgNotPurchasable
	case errors.Is(err, domain.ErrRodNotEquipped):
		return MsgNoRod
	case errors.Is(err, domain.ErrMalformedSnapshot):
		return MsgInvalidSaveFile
	case errors.Is(err, domain.ErrSnapshotMissingPlayer):
		return MsgSaveNotYours
	case errors.Is(err, domain.ErrSnapshotIncomplete):
		return MsgSaveIncomplete + "\n" + detail(err, domain.ErrSnapshotIncomplete)
	case errors.Is(err, domain.ErrConfirmationExpired):
		return MsgResetExpired
	case errors.Is(err, domain.ErrStorageUnavailable):
		return MsgStorageUnavailable
	}
	return MsgGenericError
}
