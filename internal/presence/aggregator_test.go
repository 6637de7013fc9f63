package presence

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/envelope"
)

// recordingInvalidator collects invalidated keys.
type recordingInvalidator struct {
	mu   sync.Mutex
	keys []cache.Key
}

func (r *recordingInvalidator) Invalidate(key cache.Key) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
}

func typingEnv(conv, user int64, isTyping bool) *envelope.Envelope {
	return &envelope.Envelope{
		Kind:           envelope.KindTyping,
		ConversationID: conv,
		UserID:         user,
		IsTyping:       isTyping,
	}
}

func TestTypingAddAndExpiry(t *testing.T) {
	a := NewAggregator(40*time.Millisecond, nil, nil, nil)

	a.Handle(typingEnv(1, 9, true))

	if got := a.TypingUsers(1); !slices.Equal(got, []int64{9}) {
		t.Errorf("typing users = %v, want [9]", got)
	}

	// After the TTL fires with no refresh the pair expires.
	time.Sleep(120 * time.Millisecond)
	if got := a.TypingUsers(1); len(got) != 0 {
		t.Errorf("typing users after expiry = %v, want empty", got)
	}
}

func TestTypingStopRemovesImmediately(t *testing.T) {
	a := NewAggregator(time.Minute, nil, nil, nil)

	a.Handle(typingEnv(1, 9, true))
	a.Handle(typingEnv(1, 9, false))

	if got := a.TypingUsers(1); len(got) != 0 {
		t.Errorf("typing users = %v, want empty immediately after stop", got)
	}
}

func TestTypingRefreshRestartsExpiry(t *testing.T) {
	a := NewAggregator(80*time.Millisecond, nil, nil, nil)

	a.Handle(typingEnv(1, 9, true))
	time.Sleep(50 * time.Millisecond)
	// Refresh before expiry; the window restarts.
	a.Handle(typingEnv(1, 9, true))
	time.Sleep(50 * time.Millisecond)

	if got := a.TypingUsers(1); !slices.Equal(got, []int64{9}) {
		t.Errorf("typing users = %v, want [9] (window refreshed)", got)
	}

	time.Sleep(120 * time.Millisecond)
	if got := a.TypingUsers(1); len(got) != 0 {
		t.Errorf("typing users = %v, want empty after refreshed window expired", got)
	}
}

func TestTypingPerConversationIsolation(t *testing.T) {
	a := NewAggregator(time.Minute, nil, nil, nil)

	a.Handle(typingEnv(1, 9, true))
	a.Handle(typingEnv(1, 10, true))
	a.Handle(typingEnv(2, 9, true))

	if got := a.TypingUsers(1); !slices.Equal(got, []int64{9, 10}) {
		t.Errorf("conv 1 typing users = %v, want [9 10]", got)
	}
	if got := a.TypingUsers(2); !slices.Equal(got, []int64{9}) {
		t.Errorf("conv 2 typing users = %v, want [9]", got)
	}

	a.Handle(typingEnv(1, 9, false))
	if got := a.TypingUsers(2); !slices.Equal(got, []int64{9}) {
		t.Errorf("conv 2 typing users = %v, stop in conv 1 must not leak", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	a := NewAggregator(time.Minute, nil, nil, nil)
	a.Handle(typingEnv(1, 9, true))

	snap := a.TypingUsers(1)
	snap[0] = 999

	if got := a.TypingUsers(1); !slices.Equal(got, []int64{9}) {
		t.Errorf("typing users = %v, caller mutation leaked into state", got)
	}
}

func TestReset(t *testing.T) {
	a := NewAggregator(time.Minute, nil, nil, nil)
	a.Handle(typingEnv(1, 9, true))
	a.Handle(typingEnv(2, 10, true))

	a.Reset()

	if got := a.TypingUsers(1); len(got) != 0 {
		t.Errorf("conv 1 typing users after reset = %v", got)
	}
	if got := a.TypingUsers(2); len(got) != 0 {
		t.Errorf("conv 2 typing users after reset = %v", got)
	}
}

func TestOnlineStatusInvalidatesPresence(t *testing.T) {
	inv := &recordingInvalidator{}
	a := NewAggregator(time.Minute, inv, nil, nil)

	a.Handle(&envelope.Envelope{
		Kind:           envelope.KindOnlineStatus,
		ConversationID: 7,
		UserID:         9,
		IsOnline:       true,
	})

	if !slices.Equal(inv.keys, []cache.Key{cache.PresenceKey(7)}) {
		t.Errorf("invalidated keys = %v, want [presence:7]", inv.keys)
	}
	// online_status never touches the typing map.
	if got := a.TypingUsers(7); len(got) != 0 {
		t.Errorf("typing users = %v, want empty", got)
	}
}
