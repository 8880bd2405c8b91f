package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when neither a markdown file nor a translation table
// entry exists for a legal page.
var ErrNotFound = errors.New("content: not found")

// Kind identifies a legal document.
type Kind string

const (
	KindPrivacy Kind = "privacy"
	KindTerms   Kind = "terms"
)

// ParseKind accepts the URL form of a legal kind.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindPrivacy:
		return KindPrivacy, true
	case KindTerms:
		return KindTerms, true
	}
	return "", false
}

// TableKey is the translation table object backing the kind.
func (k Kind) TableKey() string {
	if k == KindTerms {
		return "legal.termsOfService"
	}
	return "legal.privacyPolicy"
}

// Source records where a page body came from.
type Source string

const (
	SourceMarkdown Source = "markdown"
	SourceTable    Source = "table"
)

// Section is one titled block of a table-sourced page.
type Section struct {
	Title      string
	Paragraphs []string
}

// Page is a rendered legal document. Markdown pages carry HTML; table pages
// carry Sections.
type Page struct {
	Kind        Kind
	Lang        string
	Title       string
	LastUpdated string
	UpdatedAt   time.Time
	HTML        string
	Sections    []Section
	Source      Source
}

// Tables is the subset of the translation bundle the store reads.
type Tables interface {
	Value(lang, key string) any
}

type frontMatter struct {
	Title     string `yaml:"title"`
	UpdatedAt string `yaml:"updated_at"`
}

const defaultCacheTTL = 5 * time.Minute

type cacheKey struct {
	kind Kind
	lang string
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// Store loads legal pages from markdown under legal/<lang>/<kind>.md and
// falls back to the translation tables.
type Store struct {
	fsys   fs.FS
	tables Tables
	md     goldmark.Markdown
	policy *bluemonday.Policy
	ttl    time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

// Option customises a Store.
type Option func(*Store)

// WithTTL overrides the cache lifetime. Non-positive values fall back to the default.
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithClock replaces the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore builds a Store. fsys may be nil, in which case every page comes from tables.
func NewStore(fsys fs.FS, tables Tables, opts ...Option) *Store {
	s := &Store{
		fsys:   fsys,
		tables: tables,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: newLegalPolicy(),
		ttl:    defaultCacheTTL,
		now:    time.Now,
		cache:  map[cacheKey]cacheEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newLegalPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Legal returns the page for kind in lang.
func (s *Store) Legal(ctx context.Context, kind Kind, lang string) (Page, error) {
	if _, ok := ParseKind(string(kind)); !ok {
		return Page{}, ErrNotFound
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	key := cacheKey{kind: kind, lang: lang}
	if page, ok := s.cached(key); ok {
		return page, nil
	}

	page, err := s.load(ctx, kind, lang)
	if err != nil {
		return Page{}, err
	}
	s.store(key, page)
	return clonePage(page), nil
}

func (s *Store) load(ctx context.Context, kind Kind, lang string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	page, err := s.readMarkdown(kind, lang)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Page{}, err
	}
	return s.fromTable(kind, lang)
}

func (s *Store) readMarkdown(kind Kind, lang string) (Page, error) {
	if s.fsys == nil || lang == "" || strings.Contains(lang, "..") || strings.ContainsRune(lang, '/') {
		return Page{}, fs.ErrNotExist
	}
	file := path.Join("legal", lang, string(kind)+".md")
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return Page{}, err
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}

	page := Page{
		Kind:      kind,
		Lang:      lang,
		Title:     strings.TrimSpace(front.Title),
		UpdatedAt: parseDate(front.UpdatedAt),
		HTML:      s.policy.Sanitize(buf.String()),
		Source:    SourceMarkdown,
	}
	if page.Title == "" {
		page.Title = s.tableString(lang, kind.TableKey()+".title")
	}
	page.LastUpdated = s.tableString(lang, kind.TableKey()+".lastUpdated")
	return page, nil
}

func (s *Store) fromTable(kind Kind, lang string) (Page, error) {
	if s.tables == nil {
		return Page{}, ErrNotFound
	}
	obj, ok := s.tables.Value(lang, kind.TableKey()).(map[string]any)
	if !ok {
		return Page{}, ErrNotFound
	}
	page := Page{
		Kind:        kind,
		Lang:        lang,
		Title:       stringField(obj, "title"),
		LastUpdated: stringField(obj, "lastUpdated"),
		Source:      SourceTable,
	}
	raw, _ := obj["sections"].([]any)
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		page.Sections = append(page.Sections, Section{
			Title:      stringField(m, "title"),
			Paragraphs: Paragraphs(stringField(m, "content")),
		})
	}
	return page, nil
}

func (s *Store) tableString(lang, key string) string {
	if s.tables == nil {
		return ""
	}
	v, _ := s.tables.Value(lang, key).(string)
	return v
}

// Paragraphs splits newline-separated text into trimmed, non-empty paragraphs.
func Paragraphs(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return strings.TrimSpace(v)
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s *Store) cached(key cacheKey) (Page, bool) {
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return Page{}, false
	}
	return clonePage(entry.page), true
}

func (s *Store) store(key cacheKey, page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{
		page:    clonePage(page),
		expires: s.now().Add(s.ttl),
	}
}

func clonePage(src Page) Page {
	cp := src
	if src.Sections != nil {
		cp.Sections = make([]Section, len(src.Sections))
		for i, sec := range src.Sections {
			cp.Sections[i] = Section{
				Title:      sec.Title,
				Paragraphs: append([]string(nil), sec.Paragraphs...),
			}
		}
	}
	return cp
}
