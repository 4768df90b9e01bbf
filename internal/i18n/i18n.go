// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var (
	instance *I18n
	once     sync.Once
)

// Initialize loads the embedded locales. The default language is used when a
// key is missing in the requested one.
func Initialize(defaultLang string) error {
	var err error
	once.Do(func() {
		instance, err = New(localeFS, "locales", defaultLang)
	})
	return err
}

func New(fsys fs.FS, dir, defaultLang string) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
	}
	if err := i.LoadTranslations(fsys, dir); err != nil {
		return nil, err
	}
	if _, ok := i.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default locale %q has no translations", defaultLang)
	}
	return i, nil
}

func (i *I18n) LoadTranslations(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list locale files: %w", err)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}

		i.mu.Lock()
		i.translations[lang] = translations
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if text, ok := i.lookup(lang, key); ok {
		return format(text, args)
	}

	// Fallback to default language
	if lang != i.defaultLang {
		if text, ok := i.lookup(i.defaultLang, key); ok {
			return format(text, args)
		}
	}

	// Return key if no translation found
	return key
}

func (i *I18n) lookup(lang, key string) (string, bool) {
	translations, ok := i.translations[lang]
	if !ok {
		return "", false
	}
	text, ok := translations[key]
	return text, ok
}

func (i *I18n) Supports(lang string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.translations[lang]
	return ok
}

func (i *I18n) Languages() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	langs := make([]string, 0, len(i.translations))
	for lang := range i.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func format(text string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

// Supports reports whether lang has a loaded locale.
func Supports(lang string) bool {
	return instance != nil && instance.Supports(lang)
}

func DefaultLanguage() string {
	if instance == nil {
		return "en"
	}
	return instance.defaultLang
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{"en"}
	}
	return instance.Languages()
}
