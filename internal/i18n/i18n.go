// Package i18n resolves the UI language once at startup and serves the
// bilingual string tables and locale-aware formatting built on top of it.
package i18n

import (
	"embed"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

var DefaultLanguage = English

var SupportedLanguages = map[Language]bool{
	English: true,
	Russian: true,
}

func (l Language) Parse() (Language, error) {
	if l == "" {
		return DefaultLanguage, nil
	}
	if _, ok := SupportedLanguages[l]; !ok {
		return "", fmt.Errorf("unsupported language: %s", l)
	}
	return l, nil
}

func (l Language) tag() language.Tag {
	if l == Russian {
		return language.Russian
	}
	return language.AmericanEnglish
}

// envKeys are consulted in POSIX precedence order.
var envKeys = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// Resolve picks the UI language from an explicit override or, failing that,
// from the first non-empty locale variable. Only a Russian base language
// selects Russian; anything else, including C and POSIX, is English.
func Resolve(override string, getenv func(string) string) Language {
	candidates := []string{override}
	if getenv != nil {
		for _, key := range envKeys {
			candidates = append(candidates, getenv(key))
		}
	}

	for _, c := range candidates {
		c = normalizeLocale(c)
		if c == "" {
			continue
		}
		return fromLocale(c)
	}
	return DefaultLanguage
}

// normalizeLocale turns "ru_RU.UTF-8@euro" or "ru:en" into a BCP 47 string.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func fromLocale(s string) Language {
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	if base.String() == string(Russian) {
		return Russian
	}
	return English
}

type table struct {
	Strings        map[string]string `yaml:"strings"`
	Months         []string          `yaml:"months"`
	WeekdaysShort  []string          `yaml:"weekdaysShort"`
	DateLayout     string            `yaml:"dateLayout"`
	LongDateLayout string            `yaml:"longDateLayout"`
}

// Localizer is the explicitly constructed replacement for an ambient
// "current language" global. It is immutable and safe for concurrent use.
type Localizer struct {
	lang    Language
	table   table
	printer *message.Printer
}

func New(lang Language) (*Localizer, error) {
	lang, err := lang.Parse()
	if err != nil {
		return nil, err
	}

	raw, err := localeFS.ReadFile("locales/" + string(lang) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s locale: %w", lang, err)
	}

	var t table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse %s locale: %w", lang, err)
	}
	if len(t.Months) != 12 || len(t.WeekdaysShort) != 7 {
		return nil, fmt.Errorf("locale %s: expected 12 months and 7 weekdays", lang)
	}

	return &Localizer{
		lang:    lang,
		table:   t,
		printer: message.NewPrinter(lang.tag()),
	}, nil
}

// MustNew is New for the embedded tables, which are known to be valid.
func MustNew(lang Language) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Localizer) Language() Language {
	return l.lang
}

// Translate returns the display string for key, or key itself when the
// table has no entry. Category labels are looked up this way.
func (l *Localizer) Translate(key string) string {
	if v, ok := l.table.Strings[key]; ok && v != "" {
		return v
	}
	return key
}

func (l *Localizer) Strings() map[string]string {
	return maps.Clone(l.table.Strings)
}

func (l *Localizer) FormatDate(t time.Time) string {
	return t.Format(l.table.DateLayout)
}

func (l *Localizer) FormatLongDate(t time.Time) string {
	return strings.NewReplacer(
		"{month}", l.table.Months[t.Month()-1],
		"{day}", strconv.Itoa(t.Day()),
		"{year}", strconv.Itoa(t.Year()),
	).Replace(l.table.LongDateLayout)
}

func (l *Localizer) WeekdayShort(t time.Time) string {
	return l.table.WeekdaysShort[t.Weekday()]
}

func (l *Localizer) FormatNumber(n int64) string {
	return l.printer.Sprintf("%d", n)
}
