package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// GameCommand returns the help command
func GameCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "game",
		Description: "How to play the fishing game",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		return respondEmbed(s, i, helpEmbed(), true)
	}

	return cmd, handler
}

// ShopCommand returns the shop listing command
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse rods and bait",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		return respondEmbed(s, i, shopEmbed(d.Service.Shop(ctx)), true)
	}

	return cmd, handler
}

// BagCommand returns the inventory command
func BagCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bag",
		Description: "Show your money, items and catches",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		p, err := d.Service.Bag(ctx, getInteractionUser(i).ID)
		if err != nil {
			return respondFriendlyError(s, i, err)
		}
		return respondEmbed(s, i, bagEmbed(displayName(i), p, d.Service.Catalog()), true)
	}

	return cmd, handler
}
