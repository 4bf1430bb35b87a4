package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Money!**"
	MsgNotPurchasable    = "🏪 **Not For Sale**\nThat item isn't sold in the shop."

	// Items & rods
	MsgItemNotFound = "❓ **Item Not Found**\nThe shop doesn't carry that. Check `/shop` for the list."
	MsgRodNotFound  = "🎣 **Rod Not Found**\nYou don't own a rod by that name. Check `/bag` for the rods you own."
	MsgNotARod      = "🎣 **That's Not a Rod**\nOnly rods can be equipped."
	MsgNoRod        = "❌ **No Rod Equipped**\nYour equipped rod isn't in your bag. Use `/fish_item` to pick one you own, or buy one in `/shop`."

	// Save files
	MsgNotJSONFile     = "❌ Please upload a **.json** file."
	MsgInvalidSaveFile = "❌ **Invalid Save File**\nThe file isn't valid JSON. Make sure it isn't damaged."
	MsgSaveNotYours    = "❌ **Not Your Save File**\nThis file doesn't contain your progress. Upload the file `/save` gave you."
	MsgSaveIncomplete  = "❌ **Incomplete Save File**"
	MsgMissingFile     = "❌ Attach your save file to `/load`."
	MsgDownloadFailed  = "❌ Couldn't download the attachment. Please try again."

	// Reset
	MsgResetExpired = "⏰ **Confirmation Expired**\nRun `/new_game` again if you still want to start over."

	MsgStorageUnavailable = "🛠️ **Storage Unavailable**\nYour progress is safe, please try again in a moment."
	MsgGenericError       = "❌ Something went wrong."
)

// Embed text
const (
	FooterFishingBot = "FishingBot"

	TitleHelp           = "🎣 Fishing Game Commands"
	TitleFishing        = "🎣 Fishing..."
	TitleFishFailed     = "💔 It Got Away"
	TitleFishSuccess    = "🎉 Nice Catch!"
	TitleShop           = "🏪 Fishing Supply Shop"
	TitleBagFormat      = "🎒 %s's Bag"
	TitleResetPrompt    = "⚠️ Start a New Game?"
	TitleResetDone      = "🎉 New Game Started!"
	TitleResetCancelled = "❌ New Game Cancelled"
	TitleResetTimeout   = "⏰ Timed Out"

	DescFishing        = "Getting the rod and bait ready..."
	DescFishFailed     = "Nothing bit this time..."
	DescResetPrompt    = "This resets all of your game data. **This cannot be undone!**"
	DescResetDone      = "Your game data is back to the starting state."
	DescResetCancelled = "Your game data is unchanged."
	DescResetTimeout   = "New game cancelled, your data is unchanged."

	FooterShop      = "Use /buy <item name> to buy equipment."
	FooterResetFmt  = "You have %d seconds to respond."
	MsgNoItems      = "Nothing"
	MsgNoFish       = "You haven't caught any fish yet."
	MsgSaveAttached = "%s here is your save file. Keep it safe!\n**Important:** progress is not saved automatically. Use `/load` to restore it."
	MsgLoadedFormat = "✅ %s your progress has been loaded!\nYou now have **💰%d**, **🎣 %d** items and have caught **🐟 %d** kinds of fish."
	MsgBoughtFormat = "✅ Bought **%s**! You now have 💰%d."
	MsgEquippedFmt  = "✅ Switched to **%s**!"
)

// Button labels and custom id prefixes
const (
	ButtonConfirmReset = "Confirm reset"
	ButtonCancel       = "Cancel"

	CustomIDResetConfirm = "reset_confirm:"
	CustomIDResetCancel  = "reset_cancel:"
)

// Embed colors
const (
	ColorGreen  = 0x00ff00
	ColorYellow = 0xffff00
	ColorRed    = 0xff0000
	ColorOrange = 0xff6600
	ColorGray   = 0x808080
	ColorPurple = 0x9932cc
)
