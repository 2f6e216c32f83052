package client

import (
	"context"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ra3zac/Siebenschraem/pkg/game"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/server"
	"github.com/ra3zac/Siebenschraem/pkg/table"
)

func TestMain(m *testing.M) {
	log.SetLevel("warn")
	os.Exit(m.Run())
}

type recorder struct {
	mu      sync.Mutex
	last    game.Snapshot
	notices []string
	asked   []int
}

func (r *recorder) Render(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = s
}
func (r *recorder) Notify(msg string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, msg)
}
func (r *recorder) ClearNotice() {}
func (r *recorder) AskMitgehen(klopfer, seat int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.asked = append(r.asked, seat)
}
func (r *recorder) ConfirmRestart(string) {}

func (r *recorder) snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func TestServerTypeFromFlag(t *testing.T) {
	tests := []struct {
		flag    string
		want    ServerType
		wantErr bool
	}{
		{"local", LocalServer, false},
		{"lan", LanServer, false},
		{"hosted", LocalServer, true},
	}
	for _, tc := range tests {
		got, err := ServerTypeFromFlag(tc.flag)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ServerTypeFromFlag(%s)=%v,%v, want %v", tc.flag, got, err, tc.want)
		}
	}
}

func TestRemoteTable(t *testing.T) {
	svc := server.NewTableService(server.Options{Table: table.DefaultOptions()})
	srv := httptest.NewServer(svc.Handler())
	defer svc.Close()
	defer srv.Close()

	ctx := context.Background()
	addr := strings.TrimPrefix(srv.URL, "http://")
	c, err := Connect(ctx, addr, "")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, []string{c.TableId()}, svc.TableIds())
	assert.NotEmpty(t, c.SessionId())

	r := &recorder{}
	done := make(chan error, 1)
	go func() { done <- c.Listen(r, r) }()

	assert.Eventually(t, func() bool { return r.snapshot().Id == c.TableId() }, 2*time.Second, 10*time.Millisecond)
	c.PlayCard(0, 0)
	assert.Eventually(t, func() bool { return r.snapshot().Trick[0] != nil }, 2*time.Second, 10*time.Millisecond)

	// Seat 1 is on turn now and knocks; seat 0 is asked first.
	c.Klopfen()
	assert.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return len(r.asked) == 1 && r.asked[0] == 0
	}, 2*time.Second, 10*time.Millisecond)

	other, err := Connect(ctx, addr, c.TableId())
	require.NoError(t, err)
	defer other.Close()
	assert.Equal(t, c.TableId(), other.TableId())

	_, err = Connect(ctx, addr, "missing")
	assert.Error(t, err)
}
