package rendercache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestCache_ServesWithinTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewWithClock(20*time.Second, clock.Now)

	c.Set("/", []byte("rendered"))

	clock.Advance(19 * time.Second)
	body, ok := c.Get("/")
	require.True(t, ok)
	require.Equal(t, []byte("rendered"), body)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewWithClock(20*time.Second, clock.Now)

	c.Set("/", []byte("rendered"))

	clock.Advance(21 * time.Second)
	_, ok := c.Get("/")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	t.Parallel()

	c := New(20 * time.Second)
	_, ok := c.Get("/?page=2")
	require.False(t, ok)
}

func TestCache_CopiesBody(t *testing.T) {
	t.Parallel()

	c := New(20 * time.Second)
	body := []byte("abc")
	c.Set("/", body)
	body[0] = 'x'

	got, ok := c.Get("/")
	require.True(t, ok)
	require.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _ := c.Get("/")
	require.Equal(t, []byte("abc"), again)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("/?page=%d", i%4)
			for j := 0; j < 100; j++ {
				c.Set(key, []byte(key))
				if body, ok := c.Get(key); ok {
					if string(body) != key {
						t.Errorf("got %q for key %q", body, key)
						return
					}
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestCache_Purge(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewWithClock(20*time.Second, clock.Now)

	c.Set("/", []byte("a"))
	clock.Advance(10 * time.Second)
	c.Set("/?page=2", []byte("b"))
	clock.Advance(15 * time.Second)

	c.Purge()
	require.Equal(t, 1, c.Len())

	_, ok := c.Get("/?page=2")
	require.True(t, ok)
}
