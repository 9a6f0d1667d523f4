package users

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

type FileRegistry struct {
	path string
	mu   sync.Mutex
}

func NewFileRegistry(path string) (*FileRegistry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	// Touch file if not exists
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	return &FileRegistry{path: path}, nil
}

// RegisterIfNew appends the user unless a record with the same id already
// exists. First occurrence wins.
func (r *FileRegistry) RegisterIfNew(u User) {
	if u.UserID == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.loadUnlocked()
	for _, known := range existing {
		if known.UserID == u.UserID {
			return
		}
	}
	existing = append(existing, u)
	if err := r.saveUnlocked(existing); err != nil {
		log.Printf("failed to register user %d: %v", u.UserID, err)
	}
}

func (r *FileRegistry) LoadAll() ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadUnlocked(), nil
}

func (r *FileRegistry) loadUnlocked() []User {
	f, err := os.Open(r.path)
	if err != nil {
		return []User{}
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	var users []User
	dec := json.NewDecoder(f)
	if err := dec.Decode(&users); err != nil {
		if err == io.EOF {
			return []User{}
		}
		// empty or malformed -> start fresh
		return []User{}
	}
	return users
}

func (r *FileRegistry) saveUnlocked(users []User) error {
	f, err := os.OpenFile(r.path, os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(users)
}
