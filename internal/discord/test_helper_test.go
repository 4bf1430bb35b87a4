package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/fishing"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/worker"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// Components are kept raw since discordgo cannot decode them into interfaces.
type capturedData struct {
	Content    string                                      `json:"content"`
	Flags      discordgo.MessageFlags                      `json:"flags"`
	Embeds     []*discordgo.MessageEmbed                   `json:"embeds"`
	Components []json.RawMessage                           `json:"components"`
	Choices    []*discordgo.ApplicationCommandOptionChoice `json:"choices"`
}

type capturedResponse struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data *capturedData                     `json:"data"`
}

type capturedEdit struct {
	Content    *string                    `json:"content"`
	Embeds     *[]*discordgo.MessageEmbed `json:"embeds"`
	Components *[]json.RawMessage         `json:"components"`
}

// TestContext is a Discord session wired to an in-memory game.
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper
	Deps         *Deps
	Scheduler    *worker.Scheduler

	mu        sync.Mutex
	responses []capturedResponse
	edits     []capturedEdit
	files     map[string][]byte
}

// SetupTestContext builds a session whose HTTP calls are captured and a
// service whose rolls always return r.
func SetupTestContext(t *testing.T, r float64) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	cat := catalog.Default()
	svc := fishing.NewService(cat, ledger.NewMemoryStore(cat.Starter().Name),
		fishing.WithRandom(func() float64 { return r }))
	sched := worker.NewScheduler("discord-test")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = sched.Shutdown(ctx)
	})

	tc := &TestContext{
		Session:   session,
		Scheduler: sched,
		files:     make(map[string][]byte),
		Deps: &Deps{
			Service:    svc,
			Confirms:   confirm.NewManager(sched, time.Minute),
			Scheduler:  sched,
			ReelDelay:  10 * time.Millisecond,
			HTTPClient: http.DefaultClient,
		},
	}
	tc.DiscordMocks = &MockRoundTripper{RoundTripFunc: tc.capture}
	session.Client = &http.Client{Transport: tc.DiscordMocks}
	return tc
}

func (tc *TestContext) capture(req *http.Request) (*http.Response, error) {
	payload, files := readPayload(req)

	tc.mu.Lock()
	switch {
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
		var resp capturedResponse
		_ = json.Unmarshal(payload, &resp)
		tc.responses = append(tc.responses, resp)
	case req.Method == http.MethodPatch:
		var edit capturedEdit
		_ = json.Unmarshal(payload, &edit)
		tc.edits = append(tc.edits, edit)
	}
	for name, data := range files {
		tc.files[name] = data
	}
	tc.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// readPayload returns the JSON payload and any uploaded files of a request.
func readPayload(req *http.Request) ([]byte, map[string][]byte) {
	if req.Body == nil {
		return nil, nil
	}
	mediaType, params, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		body, _ := io.ReadAll(req.Body)
		return body, nil
	}

	var payload []byte
	files := make(map[string][]byte)
	mr := multipart.NewReader(req.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		data, _ := io.ReadAll(part)
		if part.FormName() == "payload_json" {
			payload = data
		} else {
			files[part.FileName()] = data
		}
	}
	return payload, files
}

// Responses returns the interaction callbacks sent so far.
func (tc *TestContext) Responses() []capturedResponse {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]capturedResponse(nil), tc.responses...)
}

// Edits returns the original-response edits sent so far.
func (tc *TestContext) Edits() []capturedEdit {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]capturedEdit(nil), tc.edits...)
}

// File returns an uploaded attachment by name.
func (tc *TestContext) File(name string) ([]byte, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	data, ok := tc.files[name]
	return data, ok
}

func (tc *TestContext) lastResponse(t *testing.T) capturedResponse {
	t.Helper()
	resps := tc.Responses()
	require.NotEmpty(t, resps, "no interaction response sent")
	return resps[len(resps)-1]
}

func commandInteraction(name, userID string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-" + name,
			Token: "token-" + name,
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func componentInteraction(customID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "component-" + customID,
			Token: "token-component",
			Type:  discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

// customIDs lists button ids inside raw action rows.
func customIDs(t *testing.T, rows []json.RawMessage) []string {
	t.Helper()
	var ids []string
	for _, raw := range rows {
		var row struct {
			Components []struct {
				CustomID string `json:"custom_id"`
			} `json:"components"`
		}
		require.NoError(t, json.Unmarshal(raw, &row))
		for _, c := range row.Components {
			ids = append(ids, c.CustomID)
		}
	}
	return ids
}
