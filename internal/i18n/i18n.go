package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Table is one language's translation document: nested objects whose leaves
// are strings, arrays or objects.
type Table map[string]any

// Bundle holds the immutable translation tables for every supported language.
type Bundle struct {
	tables    map[string]Table
	fallback  string
	supported []string
	matcher   language.Matcher
	degraded  map[string]error
}

// Load reads <lang>.json for each supported language from fsys. The fallback
// table is required; any other language that fails to load is served from the
// fallback table and reported by Degraded.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	if fallback == "" {
		fallback = "en"
	}
	if len(supported) == 0 {
		supported = []string{"en", "ja"}
	}
	b := &Bundle{
		tables:   map[string]Table{},
		fallback: fallback,
		degraded: map[string]error{},
	}

	seen := map[string]struct{}{}
	langs := []string{fallback}
	for _, l := range supported {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || l == fallback {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		langs = append(langs, l)
	}

	fb, err := readTable(fsys, fallback)
	if err != nil {
		return nil, fmt.Errorf("load fallback locale %s: %w", fallback, err)
	}
	b.tables[fallback] = fb

	for _, l := range langs[1:] {
		t, err := readTable(fsys, l)
		if err != nil {
			b.degraded[l] = err
			b.tables[l] = fb
			continue
		}
		b.tables[l] = t
	}

	// The first tag is the matcher's default, so the fallback leads.
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	b.matcher = language.NewMatcher(tags)
	b.supported = langs
	return b, nil
}

func readTable(fsys fs.FS, lang string) (Table, error) {
	raw, err := fs.ReadFile(fsys, lang+".json")
	if err != nil {
		return nil, err
	}
	var t Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", lang, err)
	}
	return t, nil
}

// Supported returns the supported languages sorted alphabetically.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.supported...)
	sort.Strings(out)
	return out
}

// Degraded lists languages whose table failed to load, keyed to the load error.
func (b *Bundle) Degraded() map[string]error {
	out := make(map[string]error, len(b.degraded))
	for k, v := range b.degraded {
		out[k] = v
	}
	return out
}

// IsSupported reports whether lang has a table.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.tables[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// Normalize maps lang onto a supported language, defaulting to the fallback.
func (b *Bundle) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := b.tables[lang]; ok {
		return lang
	}
	return b.fallback
}

// Value walks the dot-delimited key through lang's table and returns the
// leaf, or nil when the table lacks the key. Tables are swapped whole: a
// language falls back only when its file failed to load.
func (b *Bundle) Value(lang, key string) any {
	return lookup(b.table(lang), key)
}

func lookup(t Table, key string) any {
	if t == nil || key == "" {
		return nil
	}
	var cur any = map[string]any(t)
	for _, seg := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := m[seg]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// T returns the string stored under key. Missing keys and non-string leaves
// return the key itself.
func (b *Bundle) T(lang, key string) string {
	if s, ok := b.Value(lang, key).(string); ok {
		return s
	}
	return key
}

// Strings returns the list stored under key: arrays become string slices, a
// single string becomes a one-element slice, anything else is empty.
func (b *Bundle) Strings(lang, key string) []string {
	switch v := b.Value(lang, key).(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{}
	}
}

func (b *Bundle) table(lang string) Table {
	if t, ok := b.tables[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return t
	}
	return b.tables[b.fallback]
}

// Resolve chooses the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(b.supported) {
		return b.fallback
	}
	return b.supported[idx]
}
