package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

func TestDefaultRegistry_Definitions(t *testing.T) {
	r := DefaultRegistry()

	var names []string
	for _, cmd := range r.Definitions() {
		names = append(names, cmd.Name)
		assert.NotEmpty(t, cmd.Description, cmd.Name)
		assert.Contains(t, r.Handlers, cmd.Name)
	}
	assert.Equal(t, []string{"game", "fish", "fish_item", "shop", "buy", "bag", "new_game", "save", "load"}, names)
}

func TestCommandRegistry_RegisterReplaces(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(GameCommand())
	r.Register(GameCommand())
	assert.Len(t, r.Definitions(), 1)
}

func TestCommandRegistry_UnknownCommand(t *testing.T) {
	tc := SetupTestContext(t, 0)
	r := NewCommandRegistry()

	r.Dispatch(context.Background(), tc.Session, commandInteraction("nope", "u1"), tc.Deps)
	assert.Empty(t, tc.Responses())
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		cmd, _ := BuyCommand()
		other, _ := BagCommand()
		return []*discordgo.ApplicationCommand{cmd, other}
	}

	assert.True(t, commandsEqual(base(), base()))

	reordered := base()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.True(t, commandsEqual(reordered, base()), "order of commands does not matter")

	assert.False(t, commandsEqual(base()[:1], base()))

	changed := base()
	changed[0].Description = "something else"
	assert.False(t, commandsEqual(changed, base()))

	optChanged := base()
	optChanged[0].Options[0].Required = false
	assert.False(t, commandsEqual(optChanged, base()))

	renamed := base()
	renamed[1].Name = "inventory"
	assert.False(t, commandsEqual(renamed, base()))
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{"insufficient funds", fmt.Errorf("%w: Advanced Rod costs 1500, you have 100", domain.ErrInsufficientFunds),
			[]string{MsgInsufficientFunds, "costs 1500, you have 100"}},
		{"item suggestion", fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrItemNotFound, "Advancd Rod", "Advanced Rod"),
			[]string{MsgItemNotFound, `did you mean "Advanced Rod"`}},
		{"item no suggestion", fmt.Errorf("%w: %q", domain.ErrItemNotFound, "zzz"), []string{MsgItemNotFound}},
		{"rod suggestion", fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrRodNotFound, "basic", "Basic Rod"),
			[]string{MsgRodNotFound, "Basic Rod"}},
		{"not a rod", fmt.Errorf("%w: Bait", domain.ErrNotARod), []string{MsgNotARod}},
		{"not purchasable", fmt.Errorf("%w: Basic Rod", domain.ErrNotPurchasable), []string{MsgNotPurchasable}},
		{"no rod", domain.ErrRodNotEquipped, []string{MsgNoRod}},
		{"malformed", fmt.Errorf("%w: unexpected EOF", domain.ErrMalformedSnapshot), []string{MsgInvalidSaveFile}},
		{"missing player", domain.ErrSnapshotMissingPlayer, []string{MsgSaveNotYours}},
		{"incomplete", fmt.Errorf("%w: money is required", domain.ErrSnapshotIncomplete),
			[]string{MsgSaveIncomplete, "money is required"}},
		{"expired", domain.ErrConfirmationExpired, []string{MsgResetExpired}},
		{"storage wrapped", fmt.Errorf("failed to save player: %w", domain.ErrStorageUnavailable), []string{MsgStorageUnavailable}},
		{"unknown", errors.New("boom"), []string{MsgGenericError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFriendlyError(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFormatFriendlyError_HidesInternalDetail(t *testing.T) {
	got := formatFriendlyError(errors.New("pq: connection refused at 10.0.0.3"))
	assert.NotContains(t, got, "10.0.0.3")
}

func TestGetInteractionUser(t *testing.T) {
	guild := commandInteraction("bag", "guild-user")
	assert.Equal(t, "guild-user", getInteractionUser(guild).ID)

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "dm-user"}}}
	assert.Equal(t, "dm-user", getInteractionUser(dm).ID)

	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	assert.Equal(t, "", getInteractionUser(empty).ID)
}

func TestDisplayName(t *testing.T) {
	i := commandInteraction("bag", "u1")
	assert.Equal(t, "Tester", displayName(i))

	i.Member.User.GlobalName = "Global"
	assert.Equal(t, "Global", displayName(i))

	i.Member.Nick = "Nick"
	assert.Equal(t, "Nick", displayName(i))
}
