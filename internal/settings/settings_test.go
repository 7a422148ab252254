package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/store"
)

type recordingSetter struct {
	langs []i18n.Lang
}

func (r *recordingSetter) SetLanguage(l i18n.Lang) { r.langs = append(r.langs, l) }

func newTestService(mem *store.Memory, setter LanguageSetter, device i18n.Lang) *Service {
	svc := NewService(store.Quiet(mem, nil), setter)
	svc.detect = func() i18n.Lang { return device }
	return svc
}

func TestLoad_DefaultsToDeviceLanguage(t *testing.T) {
	setter := &recordingSetter{}
	svc := newTestService(store.NewMemory(), setter, i18n.Russian)
	svc.Load(context.Background())

	assert.Equal(t, i18n.Russian, svc.Language())
	assert.Equal(t, []i18n.Lang{i18n.Russian}, setter.langs)
	assert.Equal(t, Defaults(), svc.Settings())
}

func TestLoad_StoredLanguageWins(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Save(context.Background(), store.KeyLanguage, "es"))

	svc := newTestService(mem, nil, i18n.Russian)
	svc.Load(context.Background())
	assert.Equal(t, i18n.Spanish, svc.Language())
}

func TestLoad_MergesToggles(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Save(context.Background(), store.KeySettings, map[string]bool{
		"music":      false,
		"large_text": true,
	}))

	svc := newTestService(mem, nil, i18n.English)
	svc.Load(context.Background())

	st := svc.Settings()
	assert.False(t, st.Music)
	assert.True(t, st.LargeText)
	assert.True(t, st.Sound, "missing fields keep defaults")
}

func TestChangeLanguage_Persists(t *testing.T) {
	mem := store.NewMemory()
	setter := &recordingSetter{}
	svc := newTestService(mem, setter, i18n.English)
	ctx := context.Background()

	svc.ChangeLanguage(ctx, i18n.Spanish)

	var code string
	require.NoError(t, mem.Load(ctx, store.KeyLanguage, &code))
	assert.Equal(t, "es", code)
	assert.Equal(t, []i18n.Lang{i18n.Spanish}, setter.langs)
}

func TestToggle(t *testing.T) {
	mem := store.NewMemory()
	svc := newTestService(mem, nil, i18n.English)
	ctx := context.Background()

	v, err := svc.Toggle(ctx, HighContrast)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = svc.Toggle(ctx, Sound)
	require.NoError(t, err)
	assert.False(t, v)

	var st Settings
	require.NoError(t, mem.Load(ctx, store.KeySettings, &st))
	assert.True(t, st.HighContrast)
	assert.False(t, st.Sound)

	_, err = svc.Toggle(ctx, Name("brightness"))
	assert.True(t, errors.Is(err, ErrUnknownSetting))
}

func TestUpdate(t *testing.T) {
	mem := store.NewMemory()
	svc := newTestService(mem, nil, i18n.English)
	want := Settings{ReducedMotion: true}
	svc.Update(context.Background(), want)

	assert.Equal(t, want, svc.Settings())
	for _, n := range Names() {
		assert.Equal(t, n == ReducedMotion, svc.Settings().Get(n), "%s", n)
	}
}
