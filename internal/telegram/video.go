package telegram

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"applicant-bot/internal/actions"
	"applicant-bot/internal/media"
	"applicant-bot/internal/session"
)

// handleVideo stages an inbound video as the pending submission. A qualifying
// video silently replaces any previously staged one.
func (b *Bot) handleVideo(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	// the user may have skipped /start by sending a video straight away
	b.collectUser(chatID, msg.From)

	var (
		fileID   string
		kind     string
		duration int
		fileSize int64
	)
	switch {
	case msg.Video != nil:
		fileID = msg.Video.FileID
		kind = "video"
		duration = msg.Video.Duration
		fileSize = int64(msg.Video.FileSize)
	case msg.VideoNote != nil:
		fileID = msg.VideoNote.FileID
		kind = "video_note"
		duration = msg.VideoNote.Duration
		fileSize = int64(msg.VideoNote.FileSize)
	case msg.Document != nil:
		fileID = msg.Document.FileID
		kind = "document_video"
		fileSize = int64(msg.Document.FileSize)
	}

	if fileID == "" {
		b.sendText(chatID, notAVideoText)
		return
	}

	if err := media.ValidateIncoming(fileSize, duration, b.maxVideoDuration); err != nil {
		switch {
		case errors.Is(err, media.ErrVideoTooLong):
			b.sendText(chatID, tooLongText)
		case errors.Is(err, media.ErrVideoTooLarge):
			b.sendText(chatID, tooLargeText)
		}
		return
	}

	b.sessions.SetPending(chatID, session.PendingVideo{FileID: fileID, Kind: kind, Duration: duration})
	b.record(actions.Event{
		ActionType: actions.SentVideo,
		UserID:     userID,
		Kind:       kind,
		Duration:   duration,
		FileSize:   fileSize,
	})

	b.askToConfirmSending(chatID, userID)
}

func (b *Bot) askToConfirmSending(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AskedToConfirmSending, UserID: userID})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Да", cbConfirmYes)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Нет", cbConfirmNo)),
	)
	b.sendWithKeyboard(chatID, confirmText, kb)
}

// finishSubmission resolves the pending submission: a privacy-confirmed yes
// downloads the video locally, anything else drops the candidate and invites
// another take. A failed download preserves the pending slot so the user can
// retry the confirmation.
func (b *Bot) finishSubmission(cb *tgbotapi.CallbackQuery, chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AnsweredConfirmSending, UserID: userID, Answer: cb.Data})
	b.removeKeyboard(cb)

	if cb.Data != cbPrivacyYes {
		b.sessions.ClearPending(chatID)
		b.sendText(chatID, rerecordText)
		return
	}

	pending, ok := b.sessions.Pending(chatID)
	if !ok {
		b.sendText(chatID, noPendingText)
		return
	}

	file, err := b.files.GetFile(tgbotapi.FileConfig{FileID: pending.FileID})
	if err != nil {
		log.Printf("failed to fetch file %s: %v", pending.FileID, err)
		b.sendText(chatID, downloadFailedText)
		return
	}

	if err := os.MkdirAll(b.applicantVideoDir, 0o755); err != nil {
		log.Printf("failed to ensure download dir: %v", err)
		b.sendText(chatID, downloadFailedText)
		return
	}
	dst := filepath.Join(b.applicantVideoDir, media.SubmissionFilename(b.botType, userID, pending.Kind, time.Now()))
	if err := b.files.Download(file, dst); err != nil {
		log.Printf("failed to download %s: %v", pending.FileID, err)
		b.sendText(chatID, downloadFailedText)
		return
	}

	b.sessions.ClearPending(chatID)
	b.sendText(chatID, videoSavedText)
}
