package i18n

import "context"

// Translator binds a Bundle to one language for the lifetime of a request.
type Translator struct {
	bundle *Bundle
	lang   string
}

// Translator returns a Translator for lang, normalised onto a supported language.
func (b *Bundle) Translator(lang string) Translator {
	return Translator{bundle: b, lang: b.Normalize(lang)}
}

// Lang returns the active language code.
func (t Translator) Lang() string { return t.lang }

// Bundle exposes the underlying bundle.
func (t Translator) Bundle() *Bundle { return t.bundle }

func (t Translator) T(key string) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.T(t.lang, key)
}

func (t Translator) Value(key string) any {
	if t.bundle == nil {
		return nil
	}
	return t.bundle.Value(t.lang, key)
}

func (t Translator) Strings(key string) []string {
	if t.bundle == nil {
		return []string{}
	}
	return t.bundle.Strings(t.lang, key)
}

// Other returns the language the toggle switches to.
func (t Translator) Other() string {
	if t.bundle == nil {
		return t.lang
	}
	for _, l := range t.bundle.supported {
		if l != t.lang {
			return l
		}
	}
	return t.lang
}

type ctxKey struct{}

// WithTranslator stores tr in ctx.
func WithTranslator(ctx context.Context, tr Translator) context.Context {
	return context.WithValue(ctx, ctxKey{}, tr)
}

// FromContext returns the request Translator. A zero Translator returns keys verbatim.
func FromContext(ctx context.Context) Translator {
	if ctx == nil {
		return Translator{}
	}
	if tr, ok := ctx.Value(ctxKey{}).(Translator); ok {
		return tr
	}
	return Translator{}
}
