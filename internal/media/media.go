package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultMaxDuration is the enforced ceiling for inbound submissions, in
	// seconds. The on-screen instructions ask for 60; the validator allows 90.
	DefaultMaxDuration = 90

	maxSizeMB = 50
)

var (
	ErrVideoTooLong  = errors.New("video exceeds maximum duration")
	ErrVideoTooLarge = errors.New("video exceeds maximum file size")
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// ValidateIncoming checks an inbound video candidate against the submission
// policy. Zero size or duration means the platform did not report the value
// and passes.
func ValidateIncoming(fileSize int64, duration, maxDuration int) error {
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	if duration > maxDuration {
		return ErrVideoTooLong
	}
	if fileSize > 0 && float64(fileSize)/(1024*1024) > maxSizeMB {
		return ErrVideoTooLarge
	}
	return nil
}

// FindManagerVideo locates the pre-provisioned manager greeting. Exactly one
// video file must exist in the directory and it must fit the platform's 50MB
// send limit; anything else is a configuration error.
func FindManagerVideo(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("видео-директория %q не найдена: %w", dir, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if videoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	if len(found) != 1 {
		return "", fmt.Errorf("в директории %q должен быть ровно один видеофайл, найдено %d", dir, len(found))
	}
	st, err := os.Stat(found[0])
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", found[0], err)
	}
	if sizeMB := float64(st.Size()) / (1024 * 1024); sizeMB > maxSizeMB {
		return "", fmt.Errorf("видео %q слишком большое: %.1fMB, максимум %dMB", filepath.Base(found[0]), sizeMB, maxSizeMB)
	}
	return found[0], nil
}

// SubmissionFilename builds the local name for a confirmed download:
// {bot_type}_{user_id}_{timestamp}.mp4, with a _note marker for video notes.
func SubmissionFilename(botType string, userID int64, kind string, now time.Time) string {
	ts := now.UTC().Format("20060102_150405")
	if kind == "video_note" {
		return fmt.Sprintf("%s_%d_%s_note.mp4", botType, userID, ts)
	}
	return fmt.Sprintf("%s_%d_%s.mp4", botType, userID, ts)
}
