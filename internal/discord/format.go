package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

var rarityColors = map[domain.Rarity]int{
	domain.RarityCommon:    0x808080,
	domain.RarityRare:      0x0080ff,
	domain.RarityEpic:      0x8000ff,
	domain.RarityLegendary: 0xffd700,
	domain.RarityJunk:      0x404040,
}

var rarityEmojis = map[domain.Rarity]string{
	domain.RarityCommon:    "🟢",
	domain.RarityRare:      "🔵",
	domain.RarityEpic:      "🟣",
	domain.RarityLegendary: "🟡",
	domain.RarityJunk:      "⚫",
}

// rarityLabel renders a tier as "🔵 Rare".
func rarityLabel(r domain.Rarity) string {
	name := string(r)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return rarityEmojis[r] + " " + name
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterFishingBot},
	}
}

func inlineField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

func helpEmbed() *discordgo.MessageEmbed {
	e := createEmbed(TitleHelp, "Cast your line, sell your catch, upgrade your gear.", ColorGreen)
	e.Fields = []*discordgo.MessageEmbedField{
		{Name: "/fish", Value: "Go fishing with your equipped rod. Bait is used automatically."},
		{Name: "/shop", Value: "Browse rods and bait."},
		{Name: "/buy <item_name>", Value: "Buy an item from the shop."},
		{Name: "/fish_item <rod_name>", Value: "Equip a rod you own."},
		{Name: "/bag", Value: "Show your money, items and catches."},
		{Name: "/save", Value: "Download your progress as a file."},
		{Name: "/load <file>", Value: "Restore progress from a save file."},
		{Name: "/new_game", Value: "Start over from scratch."},
	}
	return e
}

// fishingEmbed is shown while the line is in the water.
func fishingEmbed(res *domain.CastResult) *discordgo.MessageEmbed {
	bait := MsgNoItems
	if res.UsedBait {
		bait = fmt.Sprintf("%s (%d left)", res.Bait, res.BaitRemaining)
	}
	e := createEmbed(TitleFishing, DescFishing, ColorYellow)
	e.Fields = []*discordgo.MessageEmbedField{
		inlineField("Rod", res.Rod),
		inlineField("Bait", bait),
		inlineField("Success Rate", fmt.Sprintf("%.0f%%", res.SuccessRate*100)),
	}
	return e
}

func resultEmbed(res *domain.CastResult) *discordgo.MessageEmbed {
	if !res.Success || res.Catch == nil {
		e := createEmbed(TitleFishFailed, DescFishFailed, ColorRed)
		e.Fields = []*discordgo.MessageEmbedField{inlineField("Money", fmt.Sprintf("💰%d", res.Money))}
		return e
	}

	c := res.Catch
	desc := fmt.Sprintf("You caught a %s **%s**!", c.Species.Emoji, c.Species.Name)
	e := createEmbed(TitleFishSuccess, desc, rarityColors[c.Rarity])
	e.Fields = []*discordgo.MessageEmbedField{
		inlineField("Rarity", rarityLabel(c.Rarity)),
		inlineField("Weight", fmt.Sprintf("%.2f kg", c.Weight)),
		inlineField("Value", fmt.Sprintf("💰%d", c.Price)),
		inlineField("Money", fmt.Sprintf("💰%d", res.Money)),
		inlineField("Total Catches", fmt.Sprintf("%d", res.TotalCatches)),
	}
	return e
}

func shopEmbed(items []domain.Item) *discordgo.MessageEmbed {
	e := createEmbed(TitleShop, "", ColorOrange)
	for _, it := range items {
		value := fmt.Sprintf("💰%d\n%s", it.Price, it.Description)
		if it.IsRod() {
			value += fmt.Sprintf("\nCatch ×%.1f, rare +%.0f%%", it.CatchBonus, it.RareBonus*100)
		}
		e.Fields = append(e.Fields, inlineField(it.Name, value))
	}
	e.Footer.Text = FooterShop
	return e
}

// bagEmbed lists items in catalog order and fish by species in catalog order
// so the layout is stable between calls.
func bagEmbed(name string, p *domain.Player, cat *catalog.Catalog) *discordgo.MessageEmbed {
	e := createEmbed(fmt.Sprintf(TitleBagFormat, name), "", ColorPurple)

	var items []string
	seen := make(map[string]bool)
	for _, it := range cat.Items() {
		if n := p.Count(it.Name); n > 0 {
			seen[it.Name] = true
			line := fmt.Sprintf("%s ×%d", it.Name, n)
			if it.Name == p.CurrentRod {
				line += " (equipped)"
			}
			items = append(items, line)
		}
	}
	items = append(items, leftovers(p.Items, seen)...)
	if len(items) == 0 {
		items = []string{MsgNoItems}
	}

	var fish []string
	seen = make(map[string]bool)
	for _, r := range domain.Rarities {
		for _, sp := range cat.Species(r) {
			if n := p.FishCaught[sp.Name]; n > 0 {
				seen[sp.Name] = true
				fish = append(fish, fmt.Sprintf("%s %s ×%d", sp.Emoji, sp.Name, n))
			}
		}
	}
	fish = append(fish, leftovers(p.FishCaught, seen)...)
	if len(fish) == 0 {
		fish = []string{MsgNoFish}
	}

	e.Fields = []*discordgo.MessageEmbedField{
		inlineField("Money", fmt.Sprintf("💰%d", p.Money)),
		inlineField("Total Catches", fmt.Sprintf("%d", p.TotalCatches)),
		{Name: "Items", Value: strings.Join(items, "\n")},
		{Name: "Fish Caught", Value: strings.Join(fish, "\n")},
	}
	return e
}

// leftovers renders entries the catalog no longer knows, sorted by name.
func leftovers(counts map[string]int, seen map[string]bool) []string {
	var names []string
	for name, n := range counts {
		if n > 0 && !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, fmt.Sprintf("%s ×%d", name, counts[name]))
	}
	return out
}

func resetPromptEmbed(seconds int) *discordgo.MessageEmbed {
	e := createEmbed(TitleResetPrompt, DescResetPrompt, ColorOrange)
	e.Footer.Text = fmt.Sprintf(FooterResetFmt, seconds)
	return e
}

func resetButtons(token string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    ButtonConfirmReset,
					Style:    discordgo.DangerButton,
					CustomID: CustomIDResetConfirm + token,
				},
				discordgo.Button{
					Label:    ButtonCancel,
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDResetCancel + token,
				},
			},
		},
	}
}
