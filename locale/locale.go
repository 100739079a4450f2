/*
Compiled-in message catalogs for the generated documents and the user facing prompts.

Translation only happens here: the rest of the code works with message keys and typed values
(display modes, placement slots) and asks a Texts instance for the sentence in the configured
language.
*/
package locale

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Japanese is the language of the original test specifications and the default.
var Japanese = language.Japanese

var English = language.English

var catalogs = map[language.Tag]map[string]string{
	Japanese: messagesJa,
	English:  messagesEn,
}

var builder = newCatalog()

// newCatalog registers every message of every language in a single catalog.
func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Japanese))
	for tag, messages := range catalogs {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(errors.Wrapf(err, "register message %s for %s", key, tag))
			}
		}
	}
	return b
}

// Texts renders message keys in one language.
type Texts struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the texts for the given language name ("ja", "en", "ja-JP", ...). An empty name
// selects Japanese.
func New(lang string) (*Texts, error) {
	tag := Japanese
	if strings.TrimSpace(lang) != "" {
		parsed, err := language.Parse(strings.TrimSpace(lang))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale `%s`", lang)
		}
		matcher := language.NewMatcher(Supported())
		matched, _, confidence := matcher.Match(parsed)
		if confidence == language.No {
			return nil, errors.Errorf("unsupported locale `%s`", lang)
		}
		base, _ := matched.Base()
		tag = language.Make(base.String())
	}
	return &Texts{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}, nil
}

// MustNew is New for languages known to be supported.
func MustNew(lang string) *Texts {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

// Supported lists the languages with a catalog, Japanese first.
func Supported() []language.Tag {
	tags := []language.Tag{Japanese}
	for tag := range catalogs {
		if tag != Japanese {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags[1:], func(i, j int) bool { return tags[i+1].String() < tags[j+1].String() })
	return tags
}

// Tag returns the language of the texts.
func (t *Texts) Tag() language.Tag {
	return t.tag
}

// T renders the message with the given key.
func (t *Texts) T(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// Keys returns the sorted message keys of a language, or nil if it has no catalog.
func Keys(tag language.Tag) []string {
	messages, ok := catalogs[tag]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
