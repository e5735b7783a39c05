package notify

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/umputun/politrend/pkg/domain"
)

// TelegramConfig holds bot settings
type TelegramConfig struct {
	Token    string
	Endpoint string // api endpoint format, tgbotapi.APIEndpoint if empty
	Timeout  time.Duration
}

// Telegram delivers alerts as bot messages to a numeric chat id taken from settings.Recipient
type Telegram struct {
	cfg TelegramConfig

	mu  sync.Mutex
	api *tgbotapi.BotAPI
}

// NewTelegram creates a telegram notifier. The bot is connected lazily on first delivery.
func NewTelegram(cfg TelegramConfig) *Telegram {
	if cfg.Endpoint == "" {
		cfg.Endpoint = tgbotapi.APIEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Telegram{cfg: cfg}
}

// Deliver sends one message for all entities and returns the telegram message id
func (t *Telegram) Deliver(ctx context.Context, entities []*domain.TrackedEntity, settings domain.Settings) (string, error) {
	if t.cfg.Token == "" {
		return "", ErrNotConfigured
	}
	chatID, err := strconv.ParseInt(strings.TrimSpace(settings.Recipient), 10, 64)
	if err != nil {
		return "", ErrNotConfigured
	}
	if len(entities) == 0 {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	api, err := t.bot()
	if err != nil {
		return "", err
	}

	m := render(entities)
	msg := tgbotapi.NewMessage(chatID, "<b>"+html.EscapeString(m.Subject)+"</b>\n\n"+html.EscapeString(m.Plain))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	sent, err := api.Send(msg)
	if err != nil {
		return "", fmt.Errorf("send telegram message to %d: %w", chatID, err)
	}
	lgr.Printf("[DEBUG] telegram message %d sent to %d", sent.MessageID, chatID)
	return strconv.Itoa(sent.MessageID), nil
}

// bot returns the connected bot api, connecting on first call
func (t *Telegram) bot() (*tgbotapi.BotAPI, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.api != nil {
		return t.api, nil
	}
	api, err := tgbotapi.NewBotAPIWithClient(t.cfg.Token, t.cfg.Endpoint, &http.Client{Timeout: t.cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	lgr.Printf("[INFO] telegram bot authorized as %s", api.Self.UserName)
	t.api = api
	return api, nil
}
