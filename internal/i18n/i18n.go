// Package i18n provides localized UI strings loaded from embedded YAML
// bundles. Lookups fall back to English, then to the key itself.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// ErrUnsupportedLanguage is returned when a language code has no bundle.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Lang is a supported language code.
type Lang string

const (
	English Lang = "en"
	Russian Lang = "ru"
	Spanish Lang = "es"

	// Default is the fallback language for missing keys.
	Default = English
)

// Languages returns the supported languages in menu order.
func Languages() []Lang {
	return []Lang{English, Russian, Spanish}
}

// DisplayName returns the language's own name for itself.
func (l Lang) DisplayName() string {
	switch l {
	case Russian:
		return "Русский"
	case Spanish:
		return "Español"
	default:
		return "English"
	}
}

// ParseLanguage converts a code such as "ru" or "es_MX.UTF-8" to a Lang.
func ParseLanguage(s string) (Lang, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "_-.@"); i >= 0 {
		code = code[:i]
	}
	for _, l := range Languages() {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// DetectLanguage maps the locale environment to a supported language,
// defaulting to English.
func DetectLanguage() Lang {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if l, err := ParseLanguage(v); err == nil {
			return l
		}
		return Default
	}
	return Default
}

// Translator looks up strings for the active language.
type Translator struct {
	bundles map[Lang]map[string]string
	lang    Lang
}

// New loads the embedded bundles and activates lang. An unsupported lang
// activates the default language.
func New(lang Lang) (*Translator, error) {
	bundles := make(map[Lang]map[string]string, len(Languages()))
	for _, l := range Languages() {
		raw, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s bundle: %w", l, err)
		}
		b, err := parseBundle(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s bundle: %w", l, err)
		}
		bundles[l] = b
	}

	t := &Translator{bundles: bundles, lang: Default}
	t.SetLanguage(lang)
	return t, nil
}

// MustNew is like New but panics on error. The bundles are embedded, so an
// error means the binary was built with broken locale files.
func MustNew(lang Lang) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

func parseBundle(raw []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// SetLanguage activates l. Unsupported languages are ignored.
func (t *Translator) SetLanguage(l Lang) {
	if _, ok := t.bundles[l]; ok {
		t.lang = l
	}
}

// Language returns the active language.
func (t *Translator) Language() Lang {
	return t.lang
}

// T returns the string for key with %{name} placeholders replaced by the
// given name/value pairs, e.g. T("game_ui.score", "score", 3).
func (t *Translator) T(key string, kv ...any) string {
	var values map[string]any
	if len(kv) > 1 {
		values = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			values[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return t.Lookup(key, values)
}

// Lookup is T with a value map. Its method value satisfies
// problemgen.TextLookup.
func (t *Translator) Lookup(key string, values map[string]any) string {
	s, ok := t.bundles[t.lang][key]
	if !ok {
		s, ok = t.bundles[Default][key]
	}
	if !ok {
		return key
	}
	return interpolate(s, values)
}

// Has reports whether lang defines key itself, without fallback.
func (t *Translator) Has(lang Lang, key string) bool {
	_, ok := t.bundles[lang][key]
	return ok
}

// Keys returns every key defined for lang, sorted.
func (t *Translator) Keys(lang Lang) []string {
	keys := make([]string, 0, len(t.bundles[lang]))
	for k := range t.bundles[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func interpolate(s string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(s, "%{") {
		return s
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "%{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
