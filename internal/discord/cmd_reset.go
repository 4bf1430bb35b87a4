package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// NewGameCommand returns the reset command. It only asks; the reset happens
// when the player presses the confirm button before the ticket expires.
func NewGameCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "new_game",
		Description: "Start over from scratch",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		expire := func(_ context.Context, _ confirm.Ticket) {
			empty := []discordgo.MessageComponent{}
			embeds := []*discordgo.MessageEmbed{createEmbed(TitleResetTimeout, DescResetTimeout, ColorGray)}
			if err := editResponse(s, i, &discordgo.WebhookEdit{Embeds: &embeds, Components: &empty}); err != nil {
				logger.FromContext(ctx).Warn("Failed to show reset timeout", "error", err)
			}
		}

		ticket, err := d.Confirms.Request(ctx, getInteractionUser(i).ID, expire)
		if err != nil {
			return respondFriendlyError(s, i, err)
		}

		seconds := int(time.Until(ticket.ExpiresAt).Round(time.Second).Seconds())
		return respond(s, i, &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{resetPromptEmbed(seconds)},
			Components: resetButtons(ticket.Token),
		}, true)
	}

	return cmd, handler
}

// HandleComponent answers the confirm and cancel buttons of a reset prompt.
func HandleComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
	customID := i.MessageComponentData().CustomID
	playerID := getInteractionUser(i).ID
	log := logger.FromContext(ctx).With(logger.AttrKeyPlayerID, playerID, "custom_id", customID)

	var embed *discordgo.MessageEmbed
	switch {
	case strings.HasPrefix(customID, CustomIDResetConfirm):
		embed = confirmReset(ctx, d, playerID, strings.TrimPrefix(customID, CustomIDResetConfirm))
	case strings.HasPrefix(customID, CustomIDResetCancel):
		if d.Confirms.Cancel(playerID, strings.TrimPrefix(customID, CustomIDResetCancel)) {
			embed = createEmbed(TitleResetCancelled, DescResetCancelled, ColorGray)
		} else {
			embed = createEmbed(TitleResetTimeout, MsgResetExpired, ColorGray)
		}
	default:
		log.Warn("Unknown component")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Error("Failed to update reset prompt", "error", err)
	}
}

func confirmReset(ctx context.Context, d *Deps, playerID, token string) *discordgo.MessageEmbed {
	if err := d.Confirms.Confirm(playerID, token); err != nil {
		return createEmbed(TitleResetTimeout, MsgResetExpired, ColorGray)
	}

	p, err := d.Service.Reset(ctx, playerID)
	if err != nil {
		logger.FromContext(ctx).Error("Reset failed", logger.AttrKeyPlayerID, playerID, "error", err)
		msg := MsgGenericError
		if errors.Is(err, domain.ErrStorageUnavailable) {
			msg = MsgStorageUnavailable
		}
		return createEmbed(TitleResetPrompt, msg, ColorRed)
	}

	e := createEmbed(TitleResetDone, DescResetDone, ColorGreen)
	e.Fields = []*discordgo.MessageEmbedField{
		inlineField("Money", fmt.Sprintf("💰%d", p.Money)),
		inlineField("Rod", p.CurrentRod),
	}
	return e
}
