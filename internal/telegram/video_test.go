package telegram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"applicant-bot/internal/actions"
)

func TestHandleVideo_TooLongRejected(t *testing.T) {
	b, fs, _ := newTestBot(t)

	b.handleMessage(videoMessage(42, 95, 10*1024*1024))

	if got := lastText(t, fs); got != tooLongText {
		t.Fatalf("want too-long message, got %q", got)
	}
	if _, ok := b.sessions.Pending(42); ok {
		t.Fatalf("rejected video must not be staged")
	}
	if n := len(eventsOfType(b.journal.ActionsFor(42), actions.SentVideo)); n != 0 {
		t.Fatalf("rejected video must not be logged as sent")
	}
}

func TestHandleVideo_TooLargeRejected(t *testing.T) {
	b, fs, _ := newTestBot(t)

	b.handleMessage(videoMessage(42, 30, 60*1024*1024))

	if got := lastText(t, fs); got != tooLargeText {
		t.Fatalf("want too-large message, got %q", got)
	}
	if _, ok := b.sessions.Pending(42); ok {
		t.Fatalf("rejected video must not be staged")
	}
}

func TestHandleVideo_StagesPendingAndAsksToConfirm(t *testing.T) {
	b, fs, _ := newTestBot(t)

	b.handleMessage(videoMessage(42, 40, 5*1024*1024))

	pending, ok := b.sessions.Pending(42)
	if !ok || pending.FileID != "file-1" || pending.Kind != "video" || pending.Duration != 40 {
		t.Fatalf("pending not staged: %+v ok=%v", pending, ok)
	}

	sent := eventsOfType(b.journal.ActionsFor(42), actions.SentVideo)
	if len(sent) != 1 {
		t.Fatalf("want one sent_video event, got %d", len(sent))
	}
	if sent[0].Kind != "video" || sent[0].Duration != 40 || sent[0].FileSize != 5*1024*1024 {
		t.Fatalf("video metadata lost: %+v", sent[0])
	}

	kb := keyboardFor(t, fs, confirmText)
	tokens := buttonTokens(kb)
	if len(tokens) != 2 || tokens[0] != cbConfirmYes || tokens[1] != cbConfirmNo {
		t.Fatalf("confirm keyboard: %v", tokens)
	}
}

func TestHandleVideo_VideoNote(t *testing.T) {
	b, _, _ := newTestBot(t)

	msg := &tgbotapi.Message{
		From:      &tgbotapi.User{ID: 42},
		Chat:      &tgbotapi.Chat{ID: 42},
		VideoNote: &tgbotapi.VideoNote{FileID: "note-1", Duration: 20, FileSize: 1024},
	}
	b.handleMessage(msg)

	pending, ok := b.sessions.Pending(42)
	if !ok || pending.Kind != "video_note" {
		t.Fatalf("video note not staged: %+v", pending)
	}
}

func TestHandleVideo_DocumentWithVideoMime(t *testing.T) {
	b, _, _ := newTestBot(t)

	msg := &tgbotapi.Message{
		From:     &tgbotapi.User{ID: 42},
		Chat:     &tgbotapi.Chat{ID: 42},
		Document: &tgbotapi.Document{FileID: "doc-1", MimeType: "video/mp4", FileSize: 2048},
	}
	b.handleMessage(msg)

	pending, ok := b.sessions.Pending(42)
	if !ok || pending.Kind != "document_video" {
		t.Fatalf("video document not staged: %+v", pending)
	}
}

func TestHandleVideo_NewSubmissionReplacesPending(t *testing.T) {
	b, _, _ := newTestBot(t)

	b.handleMessage(videoMessage(42, 40, 1024))
	second := videoMessage(42, 20, 1024)
	second.Video.FileID = "file-2"
	b.handleMessage(second)

	pending, _ := b.sessions.Pending(42)
	if pending.FileID != "file-2" || pending.Duration != 20 {
		t.Fatalf("pending not replaced: %+v", pending)
	}
}

func TestConfirmNo_DropsPendingAndInvitesRetake(t *testing.T) {
	b, fs, _ := newTestBot(t)
	b.handleMessage(videoMessage(42, 40, 1024))

	b.handleCallback(callback(42, cbConfirmNo))

	answered := eventsOfType(b.journal.ActionsFor(42), actions.AnsweredConfirmSending)
	if len(answered) != 1 || answered[0].Answer != cbConfirmNo {
		t.Fatalf("confirm answer not logged: %+v", answered)
	}
	if _, ok := b.sessions.Pending(42); ok {
		t.Fatalf("pending must be cleared on reject")
	}
	if got := lastText(t, fs); got != rerecordText {
		t.Fatalf("retake prompt missing: %q", got)
	}
}

func TestConfirmYes_AsksPrivacy(t *testing.T) {
	b, fs, _ := newTestBot(t)
	b.handleMessage(videoMessage(42, 40, 1024))

	b.handleCallback(callback(42, cbConfirmYes))

	if n := len(eventsOfType(b.journal.ActionsFor(42), actions.AskedToConfirmPrivacy)); n != 1 {
		t.Fatalf("privacy ask not logged")
	}
	kb := keyboardFor(t, fs, privacyText)
	tokens := buttonTokens(kb)
	if len(tokens) != 2 || tokens[0] != cbPrivacyYes || tokens[1] != cbPrivacyNo {
		t.Fatalf("privacy keyboard: %v", tokens)
	}
}

func TestPrivacyDeclined_AsksWhy(t *testing.T) {
	b, fs, _ := newTestBot(t)
	b.handleMessage(videoMessage(42, 40, 1024))
	b.handleCallback(callback(42, cbConfirmYes))

	b.handleCallback(callback(42, cbPrivacyNo))

	answered := eventsOfType(b.journal.ActionsFor(42), actions.AnsweredConfirmPrivacy)
	if len(answered) != 1 || answered[0].Answer != "no" {
		t.Fatalf("privacy answer not logged: %+v", answered)
	}
	keyboardFor(t, fs, whyQuestionText)
}

func TestPrivacyConfirmed_NoPending(t *testing.T) {
	b, fs, _ := newTestBot(t)

	b.handleCallback(callback(42, cbPrivacyYes))

	if got := lastText(t, fs); got != noPendingText {
		t.Fatalf("want no-pending message, got %q", got)
	}
}

func TestDownloadFailure_KeepsPendingForRetry(t *testing.T) {
	b, fs, ff := newTestBot(t)
	ff.downloadErr = errors.New("network down")
	b.handleMessage(videoMessage(42, 40, 1024))
	b.handleCallback(callback(42, cbConfirmYes))

	b.handleCallback(callback(42, cbPrivacyYes))

	if got := lastText(t, fs); got != downloadFailedText {
		t.Fatalf("want download error message, got %q", got)
	}
	if _, ok := b.sessions.Pending(42); !ok {
		t.Fatalf("pending must survive a failed download")
	}
}

func TestEndToEnd_HappyPath(t *testing.T) {
	b, fs, ff := newTestBot(t)

	b.handleMessage(startMessage(42))
	b.handleCallback(callback(42, cbVideoYes))
	b.handleCallback(callback(42, cbShootYes))
	b.handleMessage(videoMessage(42, 40, 5*1024*1024))
	b.handleCallback(callback(42, cbConfirmYes))
	b.handleCallback(callback(42, cbPrivacyYes))

	events := b.journal.ActionsFor(42)
	if n := len(eventsOfType(events, actions.SentVideo)); n != 1 {
		t.Fatalf("want exactly one sent_video, got %d", n)
	}
	confirming := eventsOfType(events, actions.AnsweredConfirmSending)
	if len(confirming) != 1 || confirming[0].Answer != cbPrivacyYes {
		t.Fatalf("confirm event: %+v", confirming)
	}

	if len(ff.downloaded) != 1 {
		t.Fatalf("want one downloaded file, got %v", ff.downloaded)
	}
	dst := ff.downloaded[0]
	if filepath.Dir(dst) != b.applicantVideoDir {
		t.Fatalf("file written outside applicant dir: %s", dst)
	}
	name := filepath.Base(dst)
	if !strings.HasPrefix(name, "applicant_42_") || !strings.HasSuffix(name, ".mp4") {
		t.Fatalf("unexpected submission name: %s", name)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}

	if got := lastText(t, fs); got != videoSavedText {
		t.Fatalf("saved confirmation missing: %q", got)
	}
	if _, ok := b.sessions.Pending(42); ok {
		t.Fatalf("pending must be cleared after save")
	}
}
