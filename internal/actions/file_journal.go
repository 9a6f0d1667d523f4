package actions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FileJournal is an append-only JSONL journal, one event per line. Writes are
// serialized with a mutex so concurrent sessions never lose an append. Lines
// that fail to decode are skipped on read: a corrupt journal degrades to
// whatever is still parseable instead of failing the caller.
type FileJournal struct {
	path string
	mu   sync.Mutex
}

func NewFileJournal(path string) (*FileJournal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure journal dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to init journal file: %w", err)
	}
	_ = f.Close()
	return &FileJournal{path: path}, nil
}

// Record appends one event with the current UTC timestamp. Events without a
// user id are dropped: every journal line must be attributable.
func (j *FileJournal) Record(ev Event) {
	if ev.UserID == 0 {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("failed to open action journal: %v", err)
		return
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	if err := json.NewEncoder(f).Encode(ev); err != nil {
		log.Printf("failed to append action: %v", err)
	}
}

// All returns every event in journal order. Any read failure yields an empty
// result.
func (j *FileJournal) All() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.loadUnlocked()
}

// ActionsFor returns all events for the user in journal order.
func (j *FileJournal) ActionsFor(userID int64) []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []Event
	for _, ev := range j.loadUnlocked() {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out
}

// SummaryFor derives per-user totals. First/last timestamps are picked by
// sorting the RFC3339 representations, which compare the same as the instants
// they encode.
func (j *FileJournal) SummaryFor(userID int64) Summary {
	events := j.ActionsFor(userID)
	s := Summary{UserID: userID, TotalActions: len(events)}
	if len(events) == 0 {
		return s
	}
	s.ActionCounts = make(map[ActionType]int)
	timestamps := make([]string, 0, len(events))
	for _, ev := range events {
		s.ActionCounts[ev.ActionType]++
		timestamps = append(timestamps, ev.Timestamp.Format(time.RFC3339))
	}
	sort.Strings(timestamps)
	s.FirstAction = timestamps[0]
	s.LastAction = timestamps[len(timestamps)-1]
	return s
}

func (j *FileJournal) loadUnlocked() []Event {
	f, err := os.Open(j.path)
	if err != nil {
		return nil
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	s := bufio.NewScanner(f)
	buf := make([]byte, 0, 1024*1024)
	s.Buffer(buf, 10*1024*1024)
	var events []Event
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	if err := s.Err(); err != nil {
		return events
	}
	return events
}
