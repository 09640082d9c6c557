package lang

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var builtin embed.FS

// Fallback is the language every lookup falls back to.
var Fallback = language.AmericanEnglish

// ErrEmptyLanguage is returned when a language file has no entries.
var ErrEmptyLanguage = errors.New("lang: language file has no entries")

// Translator resolves translation keys against YAML language tables.
type Translator struct {
	tables  map[language.Tag]map[string]string
	tags    []language.Tag
	active  language.Tag
	matcher language.Matcher
}

// New returns a translator with the built-in languages loaded and the
// fallback language active.
func New() (*Translator, error) {
	t := &Translator{tables: map[language.Tag]map[string]string{}, active: Fallback}
	entries, err := builtin.ReadDir(".")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := builtin.ReadFile(e.Name())
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if err := t.Load(name, data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ParseTag accepts game-style names such as "en_us" as well as BCP 47 tags.
func ParseTag(name string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("language %q: %w", name, err)
	}
	return tag, nil
}

// Load adds or extends the table of a language from YAML key/template pairs.
func (t *Translator) Load(name string, data []byte) error {
	tag, err := ParseTag(name)
	if err != nil {
		return err
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("language %s: %w", name, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("language %s: %w", name, ErrEmptyLanguage)
	}
	table, ok := t.tables[tag]
	if !ok {
		table = make(map[string]string, len(entries))
		t.tables[tag] = table
		t.tags = append(t.tags, tag)
		sort.Slice(t.tags, func(i, j int) bool { return t.tags[i].String() < t.tags[j].String() })
		t.matcher = nil
	}
	for k, v := range entries {
		table[k] = v
	}
	return nil
}

// Use selects the loaded language closest to name and returns it. Names with
// no reasonable match select the fallback language.
func (t *Translator) Use(name string) language.Tag {
	want, err := ParseTag(name)
	if err != nil || len(t.tags) == 0 {
		t.active = Fallback
		return t.active
	}
	if t.matcher == nil {
		t.matcher = language.NewMatcher(t.tags)
	}
	_, idx, conf := t.matcher.Match(want)
	if conf == language.No {
		t.active = Fallback
		return t.active
	}
	t.active = t.tags[idx]
	return t.active
}

// Active returns the language used for lookups.
func (t *Translator) Active() language.Tag { return t.active }

// Languages lists the loaded languages.
func (t *Translator) Languages() []language.Tag {
	return append([]language.Tag(nil), t.tags...)
}

// Translate resolves key in the active language, then the fallback
// language. Unknown keys render as the key itself.
func (t *Translator) Translate(key string, args ...any) string {
	tmpl, ok := t.lookup(key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Func returns Translate as a plain function value.
func (t *Translator) Func() func(key string, args ...any) string {
	return t.Translate
}

func (t *Translator) lookup(key string) (string, bool) {
	if table, ok := t.tables[t.active]; ok {
		if v, ok := table[key]; ok {
			return v, true
		}
	}
	if table, ok := t.tables[Fallback]; ok {
		if v, ok := table[key]; ok {
			return v, true
		}
	}
	return "", false
}
