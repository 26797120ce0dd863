package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarrotes/pos/internal/domain"
)

func setupStore(t *testing.T) *SessionStore {
	t.Helper()
	s := NewSessionStore(time.Hour)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func newSession(id string) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID: id,
		Operator: domain.Operator{
			Username:    "cajero1",
			DisplayName: "Ana García",
			Role:        domain.RoleCashier,
		},
		State:      domain.StateCashier,
		CreatedAt:  now,
		LastActive: now,
	}
}

func TestSessionStore_PutAndGet(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	sess, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sess.ID)
	assert.Equal(t, domain.StateCashier, sess.State)
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Get_ReturnsCopy(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	first, err := s.Get("s1")
	require.NoError(t, err)
	first.State = domain.StatePayment
	first.Cart.Add(domain.Product{ID: "1", Name: "Coca Cola 600ml", Price: 25.00})

	second, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCashier, second.State)
	assert.True(t, second.Cart.IsEmpty())
}

func TestSessionStore_Update(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	err := s.Update("s1", func(sess *domain.Session) error {
		sess.State = domain.StatePayment
		return nil
	})
	require.NoError(t, err)

	sess, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatePayment, sess.State)
}

func TestSessionStore_Update_ErrorLeavesSessionUntouched(t *testing.T) {
	s := setupStore(t)
	sess := newSession("s1")
	before := sess.LastActive
	s.Put(sess)

	err := s.Update("s1", func(sess *domain.Session) error {
		return ErrSessionNotFound // any error will do
	})
	require.Error(t, err)

	got, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, before, got.LastActive, "LastActive only moves on successful updates")
}

func TestSessionStore_Update_NotFound(t *testing.T) {
	s := setupStore(t)

	err := s.Update("missing", func(sess *domain.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	require.NoError(t, s.Delete("s1"))

	_, err := s.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.Delete("s1"), ErrSessionNotFound)
}

func TestSessionStore_Schedule_Fires(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	var mu sync.Mutex
	fired := false
	require.NoError(t, s.Schedule("s1", 10*time.Millisecond, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired
	}, time.Second, 5*time.Millisecond)
}

func TestSessionStore_Schedule_ReplacesPendingTimer(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	var mu sync.Mutex
	var fired []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			fired = append(fired, name)
			mu.Unlock()
		}
	}

	require.NoError(t, s.Schedule("s1", 20*time.Millisecond, record("first")))
	require.NoError(t, s.Schedule("s1", 20*time.Millisecond, record("second")))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) > 0
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second"}, fired)
}

func TestSessionStore_Delete_CancelsPendingTimer(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	var mu sync.Mutex
	fired := false
	require.NoError(t, s.Schedule("s1", 20*time.Millisecond, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	}))

	require.NoError(t, s.Delete("s1"))

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired, "timer must not fire after the session is destroyed")
}

func TestSessionStore_Schedule_NotFound(t *testing.T) {
	s := setupStore(t)

	err := s.Schedule("missing", time.Millisecond, func() {})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_CancelTimer(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	var mu sync.Mutex
	fired := false
	require.NoError(t, s.Schedule("s1", 20*time.Millisecond, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	}))
	s.CancelTimer("s1")

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)
}

func TestSessionStore_EvictIdle(t *testing.T) {
	s := NewSessionStore(50 * time.Millisecond)
	t.Cleanup(func() {
		_ = s.Close()
	})

	stale := newSession("stale")
	stale.LastActive = time.Now().Add(-time.Minute)
	s.Put(stale)
	s.Put(newSession("fresh"))

	s.evictIdle()

	_, err := s.Get("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get("fresh")
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_Len(t *testing.T) {
	s := setupStore(t)
	assert.Equal(t, 0, s.Len())

	s.Put(newSession("s1"))
	s.Put(newSession("s2"))
	assert.Equal(t, 2, s.Len())
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s := setupStore(t)
	s.Put(newSession("s1"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Update("s1", func(sess *domain.Session) error {
				sess.Cart.Add(domain.Product{ID: "1", Name: "Coca Cola 600ml", Price: 25.00})
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get("s1")
		}()
	}
	wg.Wait()

	sess, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 20, sess.Cart.TotalItems())
}
