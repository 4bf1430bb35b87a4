package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("p1", "Basic Rod")

	assert.Equal(t, StartingMoney, p.Money)
	assert.Equal(t, map[string]int{"Basic Rod": 1}, p.Items)
	assert.Equal(t, "Basic Rod", p.CurrentRod)
	assert.Empty(t, p.FishCaught)
	assert.NotNil(t, p.FishCaught)
	assert.True(t, p.HasEquippedRod())
}

func TestPlayer_ConsumeItem(t *testing.T) {
	p := NewPlayer("p1", "Basic Rod")
	p.AddItem("Bait", 2)

	assert.True(t, p.ConsumeItem("Bait"))
	assert.Equal(t, 1, p.Count("Bait"))

	assert.True(t, p.ConsumeItem("Bait"))
	_, present := p.Items["Bait"]
	assert.False(t, present, "zero counts are removed")

	assert.False(t, p.ConsumeItem("Bait"))
	assert.Equal(t, 1, p.ItemTotal())
}

func TestPlayer_Clone(t *testing.T) {
	p := NewPlayer("p1", "Basic Rod")
	p.FishCaught["Carp"] = 3

	c := p.Clone()
	c.Items["Bait"] = 5
	c.FishCaught["Carp"] = 0
	c.Money = 1

	assert.Zero(t, p.Count("Bait"))
	assert.Equal(t, 3, p.FishCaught["Carp"])
	assert.Equal(t, StartingMoney, p.Money)

	var nilPlayer *Player
	assert.Nil(t, nilPlayer.Clone())
}

func TestPlayer_HasEquippedRod(t *testing.T) {
	p := NewPlayer("p1", "Basic Rod")
	p.CurrentRod = "Advanced Rod"
	assert.False(t, p.HasEquippedRod())

	p.AddItem("Advanced Rod", 1)
	assert.True(t, p.HasEquippedRod())

	p.CurrentRod = ""
	assert.False(t, p.HasEquippedRod())
}

func TestParseRarity(t *testing.T) {
	for _, r := range Rarities {
		got, err := ParseRarity(string(r))
		assert.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRarity("mythic")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, Rarity("Common").Valid())
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(fmt.Errorf("%w: Bait", ErrInsufficientFunds)))
	assert.True(t, IsUserError(ErrConfirmationExpired))
	assert.False(t, IsUserError(ErrStorageUnavailable))
	assert.False(t, IsUserError(errors.New("boom")))
}
