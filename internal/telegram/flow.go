package telegram

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"applicant-bot/internal/actions"
	"applicant-bot/internal/media"
	"applicant-bot/internal/users"
)

// handleStart runs the entry step: collect the user, replay detection, intro
// text, manager video, then the first survey question.
func (b *Bot) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	seenBefore := b.collectUser(chatID, msg.From)
	if seenBefore {
		b.record(actions.Event{ActionType: actions.StartTriggeredAgain, UserID: userID})
	} else {
		b.record(actions.Event{ActionType: actions.Start, UserID: userID})
	}

	b.sendText(chatID, introText)
	b.pause(time.Second)
	b.sendManagerVideo(chatID, userID)
	b.pause(3 * time.Second)
	b.askAboutWatchedVideo(chatID, userID)
}

// collectUser registers the sender and snapshots the record into the session.
// It reports whether a snapshot already existed, i.e. whether this is a
// restarted session.
func (b *Bot) collectUser(chatID int64, from *tgbotapi.User) bool {
	_, seen := b.sessions.Collected(chatID)
	u := users.User{
		UserID:       from.ID,
		Username:     from.UserName,
		FirstName:    from.FirstName,
		LastName:     from.LastName,
		LanguageCode: from.LanguageCode,
	}
	b.register(u)
	b.sessions.SetCollected(chatID, u)
	return seen
}

// sendManagerVideo delivers the pre-provisioned greeting. Configuration and
// delivery errors are reported to the user once; the flow continues either way.
func (b *Bot) sendManagerVideo(chatID, userID int64) {
	path, err := media.FindManagerVideo(b.managerVideoDir)
	if err != nil {
		b.sendText(chatID, fmt.Sprintf("Ошибка видео от менеджера: %v", err))
		return
	}

	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.Caption = managerVideoCaption
	if _, err := b.s.Send(video); err != nil {
		log.Printf("failed to send manager video: %v", err)
		b.sendText(chatID, fmt.Sprintf("Упс. Не могу отправить видео от менеджера. Ошибка: %v. Уже пошли чинить.", err))
		return
	}

	b.record(actions.Event{ActionType: actions.GotVideo, UserID: userID})
	b.pause(2 * time.Second)
}

func (b *Bot) askAboutWatchedVideo(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AskedAboutWatchedVideo, UserID: userID})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Да", cbVideoYes)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Нет", cbVideoNo)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Не вижу видео", cbVideoNotSeen)),
	)
	b.sendWithKeyboard(chatID, watchedQuestionText, kb)
}

// handleCallback acknowledges the button press (stopping the client-side
// spinner) and dispatches to the transition defined for the current token.
func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}
	if _, err := b.s.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}

	chatID := b.callbackChatID(cb)
	userID := cb.From.ID

	switch cb.Data {
	case cbVideoYes, cbVideoNo, cbVideoNotSeen:
		b.feedbackAboutWatchedVideo(cb, chatID, userID)
	case cbShootYes, cbShootMaybe, cbShootNo:
		b.feedbackToShootVideo(cb, chatID, userID)
	case cbConfirmYes:
		b.askToConfirmPrivacy(chatID, userID)
	case cbConfirmNo:
		b.finishSubmission(cb, chatID, userID)
	case cbPrivacyYes:
		b.record(actions.Event{ActionType: actions.AnsweredConfirmPrivacy, UserID: userID, Answer: "yes"})
		b.finishSubmission(cb, chatID, userID)
	case cbPrivacyNo:
		b.record(actions.Event{ActionType: actions.AnsweredConfirmPrivacy, UserID: userID, Answer: "no"})
		b.removeKeyboard(cb)
		b.askWhyHesitantOrReject(chatID, userID)
	case cbReasonCompany, cbReasonAwkward, cbReasonDontKnow, cbReasonPrivacy, cbReasonOther:
		b.feedbackWhyHesitantOrReject(cb, chatID, userID)
	default:
		// tokens outside the script are acknowledged and dropped
	}
}

func (b *Bot) feedbackAboutWatchedVideo(cb *tgbotapi.CallbackQuery, chatID, userID int64) {
	answers := map[string]string{
		cbVideoYes:     "yes",
		cbVideoNo:      "no",
		cbVideoNotSeen: "not_seen",
	}
	b.record(actions.Event{ActionType: actions.AnsweredAboutWatchedVideo, UserID: userID, Answer: answers[cb.Data]})
	b.removeKeyboard(cb)

	switch cb.Data {
	case cbVideoYes:
		b.sendText(chatID, likedText)
	case cbVideoNo:
		b.sendText(chatID, dislikedText)
	case cbVideoNotSeen:
		b.sendText(chatID, notSeenText)
	}
	b.pause(time.Second)

	// every answer proceeds to the shoot question
	b.askToShootVideo(chatID, userID)
}

func (b *Bot) askToShootVideo(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AskedToShootVideo, UserID: userID})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Кончено, Да", cbShootYes)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Возможно, надо подумать", cbShootMaybe)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Нет, не хочу", cbShootNo)),
	)
	b.sendWithKeyboard(chatID, shootQuestionText, kb)
}

func (b *Bot) feedbackToShootVideo(cb *tgbotapi.CallbackQuery, chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AnsweredToShootVideo, UserID: userID, Answer: cb.Data})
	b.removeKeyboard(cb)

	if cb.Data == cbShootYes {
		b.sendInstructions(chatID, userID)
		return
	}
	b.askWhyHesitantOrReject(chatID, userID)
}

func (b *Bot) sendInstructions(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.GotInstructions, UserID: userID})
	b.sendText(chatID, instructionsText)
}

func (b *Bot) askWhyHesitantOrReject(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AskedWhyHesitantOrReject, UserID: userID})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Не хочу устраиваться в эту компанию", cbReasonCompany)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Неловко записывать видео", cbReasonAwkward)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Не знаю как или что записать", cbReasonDontKnow)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Переживаю за персональные данные", cbReasonPrivacy)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Другое", cbReasonOther)),
	)
	b.sendWithKeyboard(chatID, whyQuestionText, kb)
}

func (b *Bot) feedbackWhyHesitantOrReject(cb *tgbotapi.CallbackQuery, chatID, userID int64) {
	reasons := map[string]string{
		cbReasonCompany:  "no_company",
		cbReasonAwkward:  "awkward",
		cbReasonDontKnow: "dont_know",
		cbReasonPrivacy:  "privacy",
		cbReasonOther:    "other",
	}
	b.record(actions.Event{ActionType: actions.AnsweredWhyHesitantOrReject, UserID: userID, Reason: reasons[cb.Data]})
	b.removeKeyboard(cb)
	b.sendText(chatID, thanksText)
}

func (b *Bot) askToConfirmPrivacy(chatID, userID int64) {
	b.record(actions.Event{ActionType: actions.AskedToConfirmPrivacy, UserID: userID})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Отправить", cbPrivacyYes)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Не отправлять", cbPrivacyNo)),
	)
	b.sendWithKeyboard(chatID, privacyText, kb)
}
