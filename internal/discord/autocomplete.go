package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// Discord rejects more than 25 choices.
const maxAutocompleteChoices = 25

// HandleAutocomplete suggests shop items for /buy and owned rods for /fish_item.
func HandleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
	data := i.ApplicationCommandData()

	var focused string
	for _, opt := range data.Options {
		if opt.Focused && opt.Type == discordgo.ApplicationCommandOptionString {
			focused = opt.StringValue()
		}
	}

	var candidates []string
	switch data.Name {
	case "buy":
		for _, it := range d.Service.Shop(ctx) {
			candidates = append(candidates, it.Name)
		}
	case "fish_item":
		p, err := d.Service.Bag(ctx, getInteractionUser(i).ID)
		if err != nil {
			logger.FromContext(ctx).Warn("Autocomplete lookup failed", "error", err)
			break
		}
		for _, it := range d.Service.Catalog().Items() {
			if it.IsRod() && p.Count(it.Name) > 0 {
				candidates = append(candidates, it.Name)
			}
		}
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: filterChoices(candidates, focused)},
	})
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to send autocomplete", "command", data.Name, "error", err)
	}
}

// filterChoices keeps names containing the typed text, compared normalized.
func filterChoices(names []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	needle := catalog.NormalizeName(typed)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		if needle != "" && !strings.Contains(catalog.NormalizeName(name), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) == maxAutocompleteChoices {
			break
		}
	}
	return choices
}
