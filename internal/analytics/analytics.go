package analytics

import (
	"fmt"
	"sort"
	"time"

	"applicant-bot/internal/actions"
)

// FunnelStats aggregates the action journal for drop-off analysis.
type FunnelStats struct {
	TotalActions int                        `json:"total_actions"`
	UniqueUsers  int                        `json:"unique_users"`
	Completed    int                        `json:"completed"`
	ActionCounts map[actions.ActionType]int `json:"action_counts"`
	UserStats    map[int64]UserStats        `json:"user_stats"`
}

// UserStats is one user's journey through the funnel.
type UserStats struct {
	UserID      int64  `json:"user_id"`
	Actions     int    `json:"actions"`
	FirstAction string `json:"first_action"`
	LastAction  string `json:"last_action"`
	Completed   bool   `json:"completed"`
}

// BuildFunnel folds the journal into per-type and per-user statistics. A user
// counts as completed once a video was submitted and its sending confirmed
// through the privacy step.
func BuildFunnel(events []actions.Event) *FunnelStats {
	stats := &FunnelStats{
		ActionCounts: make(map[actions.ActionType]int),
		UserStats:    make(map[int64]UserStats),
	}

	for _, ev := range events {
		if ev.UserID == 0 {
			continue
		}
		stats.TotalActions++
		stats.ActionCounts[ev.ActionType]++

		us, ok := stats.UserStats[ev.UserID]
		if !ok {
			us = UserStats{UserID: ev.UserID}
		}
		us.Actions++
		ts := ev.Timestamp.Format(time.RFC3339)
		if us.FirstAction == "" || ts < us.FirstAction {
			us.FirstAction = ts
		}
		if ts > us.LastAction {
			us.LastAction = ts
		}
		stats.UserStats[ev.UserID] = us
	}

	for userID := range stats.UserStats {
		if isCompleted(events, userID) {
			us := stats.UserStats[userID]
			us.Completed = true
			stats.UserStats[userID] = us
			stats.Completed++
		}
	}

	stats.UniqueUsers = len(stats.UserStats)
	return stats
}

func isCompleted(events []actions.Event, userID int64) bool {
	sent := false
	confirmed := false
	for _, ev := range events {
		if ev.UserID != userID {
			continue
		}
		switch ev.ActionType {
		case actions.SentVideo:
			sent = true
		case actions.AnsweredConfirmSending:
			if ev.Answer == "privacy_confirm_yes" || ev.Answer == "confirm_yes" {
				confirmed = true
			}
		}
	}
	return sent && confirmed
}

// Report renders a plain-text summary for the admin chat.
func (fs *FunnelStats) Report() string {
	out := fmt.Sprintf(`Воронка кандидатов:

- Всего действий: %d
- Уникальных пользователей: %d
- Дошли до отправки видео: %d

`, fs.TotalActions, fs.UniqueUsers, fs.Completed)

	if len(fs.ActionCounts) > 0 {
		out += "Действия по типам:\n"
		types := make([]string, 0, len(fs.ActionCounts))
		for at := range fs.ActionCounts {
			types = append(types, string(at))
		}
		sort.Strings(types)
		for _, at := range types {
			out += fmt.Sprintf("- %s: %d\n", at, fs.ActionCounts[actions.ActionType(at)])
		}
		out += "\n"
	}

	userIDs := make([]int64, 0, len(fs.UserStats))
	for id := range fs.UserStats {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	out += fmt.Sprintf("Пользователи (%d):\n", len(userIDs))
	for _, id := range userIDs {
		us := fs.UserStats[id]
		status := "не завершил"
		if us.Completed {
			status = "завершил"
		}
		out += fmt.Sprintf("- %d: %d действий, %s\n", us.UserID, us.Actions, status)
	}
	return out
}
