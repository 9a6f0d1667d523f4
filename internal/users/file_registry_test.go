package users

import (
	"path/filepath"
	"testing"
)

func TestFileRegistry_FirstWriteWins(t *testing.T) {
	p := filepath.Join(t.TempDir(), "applicant_users.json")
	reg, err := NewFileRegistry(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	reg.RegisterIfNew(User{UserID: 1, Username: "alice", FirstName: "A"})
	reg.RegisterIfNew(User{UserID: 1, Username: "renamed", FirstName: "B"})
	reg.RegisterIfNew(User{UserID: 2, Username: "bob"})

	all, err := reg.LoadAll()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 users, got %d", len(all))
	}
	if all[0].UserID != 1 || all[0].Username != "alice" {
		t.Fatalf("first record overwritten: %+v", all[0])
	}
	if all[1].UserID != 2 || all[1].Username != "bob" {
		t.Fatalf("unexpected second record: %+v", all[1])
	}
}

func TestFileRegistry_IgnoresZeroUserID(t *testing.T) {
	p := filepath.Join(t.TempDir(), "applicant_users.json")
	reg, err := NewFileRegistry(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	reg.RegisterIfNew(User{Username: "ghost"})

	all, _ := reg.LoadAll()
	if len(all) != 0 {
		t.Fatalf("want empty registry, got %+v", all)
	}
}

func TestFileRegistry_SurvivesReopen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "applicant_users.json")
	reg, err := NewFileRegistry(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	reg.RegisterIfNew(User{UserID: 9, Username: "carol", LanguageCode: "ru"})

	reopened, err := NewFileRegistry(p)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	all, _ := reopened.LoadAll()
	if len(all) != 1 || all[0].LanguageCode != "ru" {
		t.Fatalf("persisted record lost: %+v", all)
	}
}
