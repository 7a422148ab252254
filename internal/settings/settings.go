// Package settings holds the user's language and toggle preferences.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/store"
)

// ErrUnknownSetting is returned by Toggle for a name that is not a toggle.
var ErrUnknownSetting = errors.New("unknown setting")

// Name identifies a boolean setting.
type Name string

const (
	Sound         Name = "sound"
	Music         Name = "music"
	SoundEffects  Name = "sound_effects"
	Voice         Name = "voice"
	HighContrast  Name = "high_contrast"
	LargeText     Name = "large_text"
	ReducedMotion Name = "reduced_motion"
)

// Names returns every toggle in display order.
func Names() []Name {
	return []Name{Sound, Music, SoundEffects, Voice, HighContrast, LargeText, ReducedMotion}
}

// Accessibility reports whether n belongs in the accessibility group.
func (n Name) Accessibility() bool {
	return n == HighContrast || n == LargeText || n == ReducedMotion
}

// Settings are the persisted toggles. Language is stored separately.
type Settings struct {
	Sound         bool `json:"sound"`
	Music         bool `json:"music"`
	SoundEffects  bool `json:"sound_effects"`
	Voice         bool `json:"voice"`
	HighContrast  bool `json:"high_contrast"`
	LargeText     bool `json:"large_text"`
	ReducedMotion bool `json:"reduced_motion"`
}

// Defaults returns the settings of a fresh install.
func Defaults() Settings {
	return Settings{
		Sound:        true,
		Music:        true,
		SoundEffects: true,
		Voice:        true,
	}
}

func (s *Settings) field(n Name) *bool {
	switch n {
	case Sound:
		return &s.Sound
	case Music:
		return &s.Music
	case SoundEffects:
		return &s.SoundEffects
	case Voice:
		return &s.Voice
	case HighContrast:
		return &s.HighContrast
	case LargeText:
		return &s.LargeText
	case ReducedMotion:
		return &s.ReducedMotion
	}
	return nil
}

// Get returns the value of toggle n, false for unknown names.
func (s Settings) Get(n Name) bool {
	if f := s.field(n); f != nil {
		return *f
	}
	return false
}

// LanguageSetter receives the active language. *i18n.Translator implements it.
type LanguageSetter interface {
	SetLanguage(i18n.Lang)
}

// Service loads, updates and persists settings.
type Service struct {
	persister store.Persister
	lang      LanguageSetter
	detect    func() i18n.Lang

	language i18n.Lang
	settings Settings
}

// NewService creates a settings service. lang may be nil.
func NewService(p store.Persister, lang LanguageSetter) *Service {
	return &Service{
		persister: p,
		lang:      lang,
		detect:    i18n.DetectLanguage,
		language:  i18n.Default,
		settings:  Defaults(),
	}
}

// Load restores the language (falling back to the device language) and
// merges stored toggles over the defaults.
func (s *Service) Load(ctx context.Context) {
	var code string
	lang := s.detect()
	if s.persister.Load(ctx, store.KeyLanguage, &code) {
		if l, err := i18n.ParseLanguage(code); err == nil {
			lang = l
		}
	}
	s.apply(lang)

	st := Defaults()
	if s.persister.Load(ctx, store.KeySettings, &st) {
		s.settings = st
	}
}

// Language returns the active language.
func (s *Service) Language() i18n.Lang {
	return s.language
}

// Settings returns the current toggles.
func (s *Service) Settings() Settings {
	return s.settings
}

// ChangeLanguage activates and persists lang.
func (s *Service) ChangeLanguage(ctx context.Context, lang i18n.Lang) {
	s.apply(lang)
	s.persister.Save(ctx, store.KeyLanguage, string(lang))
}

func (s *Service) apply(lang i18n.Lang) {
	s.language = lang
	if s.lang != nil {
		s.lang.SetLanguage(lang)
	}
}

// Update replaces all toggles and persists them.
func (s *Service) Update(ctx context.Context, st Settings) {
	s.settings = st
	s.persister.Save(ctx, store.KeySettings, s.settings)
}

// Toggle flips toggle n, persists, and returns its new value.
func (s *Service) Toggle(ctx context.Context, n Name) (bool, error) {
	f := s.settings.field(n)
	if f == nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownSetting, n)
	}
	*f = !*f
	s.persister.Save(ctx, store.KeySettings, s.settings)
	return *f, nil
}
