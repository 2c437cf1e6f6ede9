package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestSessionOptionsWithoutStore(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig(), logger: log.New(io.Discard)}
	opts := srv.sessionOptions("bob", 100, 40)

	if opts.Owner != "bob" || opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 40 {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.Store != nil || opts.Runs != nil {
		t.Fatal("no database should leave store and runs unset")
	}
	if _, ok := opts.Audio.(audio.Nop); !ok {
		t.Fatalf("remote sessions must be silent, got %T", opts.Audio)
	}
}

func TestSessionOptionsSeparateUsers(t *testing.T) {
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "flappy.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	srv := &SSHServer{config: DefaultSSHServerConfig(), store: store, logger: log.New(io.Discard)}
	alice := srv.sessionOptions("alice", 80, 24)
	bob := srv.sessionOptions("bob", 80, 24)

	if err := alice.Store.Set("highScore", "12"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := bob.Store.Get("highScore"); err == nil {
		t.Fatal("bob sees alice's high score")
	}
	if got, err := store.Get("user/alice/highScore"); err != nil || got != "12" {
		t.Fatalf("namespaced key = %q, %v", got, err)
	}

	m, err := NewModel(bob)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m.Session().Close()
}
