// Package i18n looks up translated UI strings by dotted key, e.g.
// "chat_list.empty_chat". Tables are embedded YAML files, one per language.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language is a supported language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// DefaultLanguage is used when a key or language is missing.
const DefaultLanguage = English

// Languages lists the supported languages in switcher order.
var Languages = []Language{English, Spanish}

//go:embed locale/*.yml
var localeFS embed.FS

// ParseLanguage maps codes like "es", "ES" or "es_MX.UTF-8" onto a supported
// language. ok is false when the code was not recognised and the default was
// returned instead.
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_."); i >= 0 {
		code = code[:i]
	}
	for _, lang := range Languages {
		if string(lang) == code {
			return lang, true
		}
	}
	return DefaultLanguage, false
}

// Next returns the language after l in Languages, wrapping around.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return DefaultLanguage
}

// Translator resolves keys for the current language.
type Translator struct {
	lang   Language
	tables map[Language]map[string]string
}

// New loads the embedded tables and selects lang.
func New(lang Language) (*Translator, error) {
	tables := make(map[Language]map[string]string, len(Languages))
	for _, l := range Languages {
		data, err := localeFS.ReadFile(fmt.Sprintf("locale/%s.yml", l))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s locale: %w", l, err)
		}
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s locale: %w", l, err)
		}
		tables[l] = table
	}
	return &Translator{lang: lang, tables: tables}, nil
}

// MustNew is New for the embedded tables, which are known to parse.
func MustNew(lang Language) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTable(data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	table := make(map[string]string)
	flatten("", tree, table)
	return table, nil
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
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func (t *Translator) Language() Language { return t.lang }

// SetLanguage switches languages. Unsupported languages select the default.
func (t *Translator) SetLanguage(lang Language) {
	if _, ok := t.tables[lang]; !ok {
		lang = DefaultLanguage
	}
	t.lang = lang
}

// T returns the translation for key, falling back to the default language
// and then to the key itself.
func (t *Translator) T(key string) string {
	if s, ok := t.tables[t.lang][key]; ok {
		return s
	}
	if s, ok := t.tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Has reports whether key exists in the current language's table.
func (t *Translator) Has(key string) bool {
	_, ok := t.tables[t.lang][key]
	return ok
}
