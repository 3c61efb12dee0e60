package theme

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/nebula-dashboard/internal/prefs"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPresetColorsAreValidHex(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			for _, v := range p.Vars() {
				if !strings.HasPrefix(v.Name, "--color-") {
					continue
				}
				assert.Regexp(t, hexColorRegex, v.Value, v.Name)
			}
		})
	}
}

func TestPresetNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range PresetNames() {
		assert.False(t, seen[name], "duplicate preset %q", name)
		seen[name] = true
	}
	assert.True(t, seen[DefaultPreset])
}

func TestSetThemeThenReset_YieldsPurePreset(t *testing.T) {
	s := NewStore(prefs.NewMemoryStore())

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetTheme(name))
			require.NoError(t, s.CustomizeTheme(Override{
				Colors:  &ColorsOverride{Primary: String("#000000"), Border: String("#111111")},
				Effects: &EffectsOverride{Glow: String("none")},
				Fonts:   &FontsOverride{Mono: String("Courier")},
			}))
			require.NoError(t, s.ResetTheme())

			want, _ := Preset(name)
			assert.Equal(t, want, s.Active())
			assert.Nil(t, s.Override())
		})
	}
}

func TestCustomizeTheme_ChangesOnlyPrimary(t *testing.T) {
	s := NewStore(prefs.NewMemoryStore())
	require.NoError(t, s.SetTheme("aurora"))

	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Primary: String("#000")}}))

	want, _ := Preset("aurora")
	want.Colors.Primary = "#000"
	assert.Equal(t, want, s.Active())
}

func TestCustomizeTheme_Accumulates(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := NewStore(store)

	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Primary: String("#000000")}}))
	require.NoError(t, s.CustomizeTheme(Override{Fonts: &FontsOverride{Body: String("Roboto")}}))
	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Accent: String("#123456")}}))

	active := s.Active()
	assert.Equal(t, "#000000", active.Colors.Primary)
	assert.Equal(t, "#123456", active.Colors.Accent)
	assert.Equal(t, "Roboto", active.Fonts.Body)

	raw, ok := store.Get(prefs.KeyThemeOverride)
	require.True(t, ok)
	var persisted Override
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "#000000", *persisted.Colors.Primary)
	assert.Equal(t, "#123456", *persisted.Colors.Accent)
	assert.Equal(t, "Roboto", *persisted.Fonts.Body)
	assert.Nil(t, persisted.Effects)
}

func TestSetTheme_ClearsOverrideAndPersists(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := NewStore(store)
	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Primary: String("#000000")}}))

	require.NoError(t, s.SetTheme("solar"))

	want, _ := Preset("solar")
	assert.Equal(t, want, s.Active())
	name, _ := store.Get(prefs.KeyTheme)
	assert.Equal(t, "solar", name)
	_, ok := store.Get(prefs.KeyThemeOverride)
	assert.False(t, ok)
}

func TestSetTheme_Unknown(t *testing.T) {
	s := NewStore(prefs.NewMemoryStore())
	err := s.SetTheme("hotdog-stand")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, DefaultPreset, s.PresetName())
}

var errDiskFull = errors.New("disk full")

// brokenStore is a MemoryStore whose writes can be made to fail.
type brokenStore struct {
	*prefs.MemoryStore
	failSet    bool
	failDelete bool
}

func (b *brokenStore) Set(key, value string) error {
	if b.failSet {
		return errDiskFull
	}
	return b.MemoryStore.Set(key, value)
}

func (b *brokenStore) Delete(key string) error {
	if b.failDelete {
		return errDiskFull
	}
	return b.MemoryStore.Delete(key)
}

func TestPersistFailureLeavesThemeUnchanged(t *testing.T) {
	store := &brokenStore{MemoryStore: prefs.NewMemoryStore()}
	s := NewStore(store)
	require.NoError(t, s.SetTheme("aurora"))
	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Primary: String("#000000")}}))
	before := s.Active()

	notified := 0
	s.Subscribe(func(Spec) { notified++ })

	store.failSet = true
	assert.ErrorIs(t, s.SetTheme("solar"), errDiskFull)
	assert.ErrorIs(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Accent: String("#123456")}}), errDiskFull)
	store.failSet = false

	store.failDelete = true
	assert.ErrorIs(t, s.ResetTheme(), errDiskFull)
	assert.ErrorIs(t, s.SetTheme("solar"), errDiskFull)
	store.failDelete = false

	assert.Equal(t, "aurora", s.PresetName())
	assert.Equal(t, before, s.Active())
	require.NotNil(t, s.Override())
	assert.Zero(t, notified)

	name, _ := store.Get(prefs.KeyTheme)
	assert.Equal(t, "aurora", name, "a half-applied switch is rolled back")
	raw, ok := store.Get(prefs.KeyThemeOverride)
	require.True(t, ok)
	assert.NotContains(t, raw, "#123456")
}

func TestLoad_ReappliesOverrideOnPersistedPreset(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(prefs.KeyTheme, "void"))
	require.NoError(t, store.Set(prefs.KeyThemeOverride, `{"colors":{"accent":"#abcdef"}}`))

	s := NewStore(store)
	s.Load()

	want, _ := Preset("void")
	want.Colors.Accent = "#abcdef"
	assert.Equal(t, "void", s.PresetName())
	assert.Equal(t, want, s.Active())
}

func TestLoad_CorruptOverrideIsDiscarded(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(prefs.KeyTheme, "solar"))
	require.NoError(t, store.Set(prefs.KeyThemeOverride, `{"colors":`))

	s := NewStore(store)
	s.Load()

	want, _ := Preset("solar")
	assert.Equal(t, want, s.Active())
	_, ok := store.Get(prefs.KeyThemeOverride)
	assert.False(t, ok, "corrupt override must be deleted")
}

func TestLoad_UnknownPresetFallsBackToDefault(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(prefs.KeyTheme, "retired"))

	s := NewStore(store)
	s.Load()

	assert.Equal(t, DefaultPreset, s.PresetName())
}

func TestSubscribe(t *testing.T) {
	s := NewStore(prefs.NewMemoryStore())
	var got []string
	unsubscribe := s.Subscribe(func(spec Spec) { got = append(got, spec.Name+":"+spec.Colors.Primary) })

	require.NoError(t, s.SetTheme("aurora"))
	require.NoError(t, s.CustomizeTheme(Override{Colors: &ColorsOverride{Primary: String("#000000")}}))
	unsubscribe()
	require.NoError(t, s.ResetTheme())

	assert.Equal(t, []string{"aurora:#10b981", "aurora:#000000"}, got)
}

func TestCSS(t *testing.T) {
	spec, _ := Preset("nebula")
	css := spec.CSS()

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --color-primary: #8b5cf6;\n")
	assert.Contains(t, css, "  --font-mono: JetBrains Mono;\n")
	assert.Len(t, spec.Vars(), strings.Count(css, ";"))
}
