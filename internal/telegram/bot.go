package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"applicant-bot/internal/actions"
	"applicant-bot/internal/analytics"
	"applicant-bot/internal/config"
	"applicant-bot/internal/session"
	"applicant-bot/internal/users"
)

// Bot drives the scripted applicant conversation. One update is handled at a
// time, so handlers run to completion before the next turn of the same chat.
type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	files    fileClient
	journal  actions.Journal
	registry users.Registry
	sessions *session.Store

	adminUserID       int64
	managerVideoDir   string
	applicantVideoDir string
	botType           string
	maxVideoDuration  int

	// pacing between scripted steps; replaced in tests
	pause func(d time.Duration)
}

func New(cfg *config.Config, journal actions.Journal, registry users.Registry) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:               api,
		s:                 botAPISender{api: api},
		files:             botAPIFiles{api: api},
		journal:           journal,
		registry:          registry,
		sessions:          session.NewStore(),
		adminUserID:       cfg.AdminUserID,
		managerVideoDir:   cfg.ManagerVideoDir,
		applicantVideoDir: cfg.ApplicantVideoDir,
		botType:           cfg.BotType,
		maxVideoDuration:  cfg.MaxVideoDuration,
		pause:             time.Sleep,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message != nil {
			b.handleMessage(update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}
	if hasVideoPayload(msg) {
		b.handleVideo(msg)
	}
	// free-form text is outside the script and ignored
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "funnel":
		b.handleFunnelCommand(msg)
	}
}

// handleFunnelCommand sends the funnel report on demand (admin only).
func (b *Bot) handleFunnelCommand(msg *tgbotapi.Message) {
	if b.adminUserID == 0 || msg.From.ID != b.adminUserID {
		return
	}
	b.sendText(msg.Chat.ID, b.funnelReport())
}

// SendFunnelReport delivers the funnel report to the admin chat. Wired into
// the daily scheduler job.
func (b *Bot) SendFunnelReport(ctx context.Context) error {
	if b.adminUserID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(b.adminUserID, b.funnelReport())
	_, err := b.s.Send(msg)
	return err
}

func (b *Bot) funnelReport() string {
	var events []actions.Event
	if b.journal != nil {
		events = b.journal.All()
	}
	return analytics.BuildFunnel(events).Report()
}

// record is nil-tolerant: a bot without a working journal still converses.
func (b *Bot) record(ev actions.Event) {
	if b.journal != nil {
		b.journal.Record(ev)
	}
}

func (b *Bot) register(u users.User) {
	if b.registry != nil {
		b.registry.RegisterIfNew(u)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

// removeKeyboard detaches the inline buttons from an answered prompt. A stale
// or already-edited message is not an error worth surfacing.
func (b *Bot) removeKeyboard(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	_, _ = b.s.Request(edit)
}

func (b *Bot) callbackChatID(cb *tgbotapi.CallbackQuery) int64 {
	if cb.Message != nil && cb.Message.Chat != nil {
		return cb.Message.Chat.ID
	}
	return cb.From.ID
}

func hasVideoPayload(msg *tgbotapi.Message) bool {
	if msg.Video != nil || msg.VideoNote != nil {
		return true
	}
	return msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "video/")
}
