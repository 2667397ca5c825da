package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.False(t, s.LoggedIn)
	assert.Empty(t, s.Username)
	assert.Equal(t, AuthLogin, s.AuthChoice)
	assert.Empty(t, s.Wallpaper)
	assert.Equal(t, PageLanguageApp, s.Page)
}

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	id, s := store.New(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, Default(), s)

	s.LoggedIn = true
	s.Username = "admin"
	store.Save(ctx, id, s)

	got, ok := store.Get(ctx, id)
	require.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = store.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemoryStore_ResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	states := []Session{
		Default(),
		{LoggedIn: true, Username: "admin", AuthChoice: AuthSignUp, Wallpaper: "http://x", Page: PageSettings, Language: "French"},
		{LoggedIn: true, Username: "bob", Page: PageLanguageApp},
	}
	for _, st := range states {
		id, _ := store.New(ctx)
		store.Save(ctx, id, st)

		assert.Equal(t, Default(), store.Reset(ctx, id))
		got, ok := store.Get(ctx, id)
		require.True(t, ok)
		assert.Equal(t, Default(), got)
	}
}

func TestMemoryStore_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	a, sa := store.New(ctx)
	b, _ := store.New(ctx)
	require.NotEqual(t, a, b)

	sa.Wallpaper = "http://beach"
	store.Save(ctx, a, sa)

	sb, _ := store.Get(ctx, b)
	assert.Empty(t, sb.Wallpaper)
}

func TestParse(t *testing.T) {
	c, ok := ParseAuthChoice("Sign Up")
	assert.True(t, ok)
	assert.Equal(t, AuthSignUp, c)
	_, ok = ParseAuthChoice("signup")
	assert.False(t, ok)

	p, ok := ParsePage("Settings")
	assert.True(t, ok)
	assert.Equal(t, PageSettings, p)
	_, ok = ParsePage("Admin")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id, s := Load(rec, req, store)
	assert.Equal(t, Default(), s)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)

	// known cookie: same session, no new cookie
	s.Username = "admin"
	store.Save(req.Context(), id, s)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	gotID, got := Load(rec, req, store)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "admin", got.Username)
	assert.Empty(t, rec.Result().Cookies())

	// stale cookie: fresh session
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	newID, _ := Load(rec, req, store)
	assert.NotEqual(t, "stale", newID)
	assert.Len(t, rec.Result().Cookies(), 1)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newClockedStore(ttl time.Duration) (*memoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(ttl).(*memoryStore)
	store.now = clock.now
	return store, clock
}

func TestMemoryStore_IdleSessionExpires(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(30 * time.Minute)

	id, s := store.New(ctx)
	s.LoggedIn = true
	s.Username = "admin"
	store.Save(ctx, id, s)

	// activity keeps it alive
	clock.t = clock.t.Add(20 * time.Minute)
	_, ok := store.Get(ctx, id)
	require.True(t, ok)
	clock.t = clock.t.Add(20 * time.Minute)
	_, ok = store.Get(ctx, id)
	require.True(t, ok)

	clock.t = clock.t.Add(31 * time.Minute)
	_, ok = store.Get(ctx, id)
	assert.False(t, ok)
	assert.NotContains(t, store.sessions, id)
}

func TestMemoryStore_NewSweepsExpired(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(10 * time.Minute)

	for i := 0; i < 500; i++ {
		store.New(ctx)
	}
	require.Len(t, store.sessions, 500)

	clock.t = clock.t.Add(11 * time.Minute)
	id, _ := store.New(ctx)

	assert.Len(t, store.sessions, 1)
	assert.Contains(t, store.sessions, id)
}

func TestMemoryStore_NoTTLKeepsSessions(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(0)

	id, _ := store.New(ctx)
	clock.t = clock.t.Add(1000 * time.Hour)
	store.New(ctx)

	_, ok := store.Get(ctx, id)
	assert.True(t, ok)
}

func TestLoad_ExpiredSessionStartsFresh(t *testing.T) {
	store, clock := newClockedStore(30 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id, s := Load(rec, req, store)
	s.LoggedIn = true
	s.Username = "admin"
	s.Wallpaper = "http://beach"
	store.Save(req.Context(), id, s)

	clock.t = clock.t.Add(time.Hour)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	newID, got := Load(rec, req, store)

	assert.NotEqual(t, id, newID)
	assert.Equal(t, Default(), got)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, newID, cookies[0].Value)
}
