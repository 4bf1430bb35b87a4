package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/logger"
)

// FishCommand returns the fishing command. The attempt resolves immediately;
// the result is revealed by editing the "Fishing..." message after ReelDelay.
func FishCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fish",
		Description: "Cast your line",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		res, err := d.Service.Cast(ctx, getInteractionUser(i).ID)
		if err != nil {
			return respondFriendlyError(s, i, err)
		}

		if err := respondEmbed(s, i, fishingEmbed(res), false); err != nil {
			return fmt.Errorf("failed to send fishing message: %w", err)
		}

		reveal := func(_ context.Context) {
			if err := editEmbed(s, i, resultEmbed(res)); err != nil {
				logger.FromContext(ctx).Warn("Failed to reveal catch", "error", err)
			}
		}
		if err := d.Scheduler.Schedule("reel:"+i.ID, d.ReelDelay, reveal); err != nil {
			reveal(ctx)
		}
		return nil
	}

	return cmd, handler
}

// FishItemCommand returns the rod equip command
func FishItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fish_item",
		Description: "Equip a rod you own",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "rod_name",
				Description:  "Rod to equip",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		p, err := d.Service.Equip(ctx, getInteractionUser(i).ID, getStringOption(i, "rod_name"))
		if err != nil {
			return respondFriendlyError(s, i, err)
		}
		return respond(s, i, &discordgo.InteractionResponseData{
			Content: fmt.Sprintf(MsgEquippedFmt, p.CurrentRod),
		}, true)
	}

	return cmd, handler
}

// BuyCommand returns the purchase command
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item_name",
				Description:  "Item to buy",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		res, err := d.Service.Buy(ctx, getInteractionUser(i).ID, getStringOption(i, "item_name"))
		if err != nil {
			return respondFriendlyError(s, i, err)
		}
		return respond(s, i, &discordgo.InteractionResponseData{
			Content: fmt.Sprintf(MsgBoughtFormat, res.Item, res.Money),
		}, true)
	}

	return cmd, handler
}
