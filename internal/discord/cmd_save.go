package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	attachmentTimeout  = 15 * time.Second
	maxAttachmentBytes = 1 << 20
	saveFileNameFormat = "fishing_data_%s.json"
)

// SaveCommand returns the export command
func SaveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "save",
		Description: "Download your progress as a file",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		user := getInteractionUser(i)
		data, err := d.Service.Export(ctx, user.ID)
		if err != nil {
			return respondFriendlyError(s, i, err)
		}

		return respond(s, i, &discordgo.InteractionResponseData{
			Content: fmt.Sprintf(MsgSaveAttached, user.Mention()),
			Files: []*discordgo.File{{
				Name:        fmt.Sprintf(saveFileNameFormat, user.ID),
				ContentType: "application/json",
				Reader:      bytes.NewReader(data),
			}},
		}, true)
	}

	return cmd, handler
}

// LoadCommand returns the import command. The attachment is downloaded before
// the player's record is touched.
func LoadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "load",
		Description: "Restore progress from a save file",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "file",
				Description: "Save file from /save",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) error {
		att := getAttachment(i, "file")
		if att == nil {
			return respond(s, i, &discordgo.InteractionResponseData{Content: MsgMissingFile}, true)
		}
		if !strings.HasSuffix(strings.ToLower(att.Filename), ".json") {
			return respond(s, i, &discordgo.InteractionResponseData{Content: MsgNotJSONFile}, true)
		}

		if err := deferResponse(s, i, true); err != nil {
			return err
		}

		data, err := download(ctx, d.HTTPClient, att.URL)
		if err != nil {
			msg := MsgDownloadFailed
			if eerr := editResponse(s, i, &discordgo.WebhookEdit{Content: &msg}); eerr != nil {
				return errors.Join(err, eerr)
			}
			return err
		}

		user := getInteractionUser(i)
		p, err := d.Service.Import(ctx, user.ID, data)
		if err != nil {
			return editFriendlyError(s, i, err)
		}

		msg := fmt.Sprintf(MsgLoadedFormat, user.Mention(), p.Money, p.ItemTotal(), len(p.FishCaught))
		return editResponse(s, i, &discordgo.WebhookEdit{Content: &msg})
	}

	return cmd, handler
}

// getAttachment resolves an attachment option to its metadata.
func getAttachment(i *discordgo.InteractionCreate, name string) *discordgo.MessageAttachment {
	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range data.Options {
		if opt.Name != name || opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, _ := opt.Value.(string)
		return data.Resolved.Attachments[id]
	}
	return nil
}

func download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, attachmentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(data) > maxAttachmentBytes {
		return nil, fmt.Errorf("attachment larger than %d bytes", maxAttachmentBytes)
	}
	return data, nil
}
