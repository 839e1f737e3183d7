package internal

import (
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"golang.org/x/text/language"
)

var (
	i18nOnce  sync.Once
	i18nMu    sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Message IDs used by the framework's own components.
const (
	MsgListEmpty     = "list.empty"
	MsgFooterSelect  = "footer.select"
	MsgFooterBack    = "footer.back"
	MsgFooterConfirm = "footer.confirm"
	MsgHelpTitle     = "help.title"
)

func initI18n() {
	i18nOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		bundle.AddMessages(language.English,
			&i18n.Message{ID: MsgListEmpty, Other: "No item found"},
			&i18n.Message{ID: MsgFooterSelect, Other: "Select"},
			&i18n.Message{ID: MsgFooterBack, Other: "Back"},
			&i18n.Message{ID: MsgFooterConfirm, Other: "Confirm"},
			&i18n.Message{ID: MsgHelpTitle, Other: "Help"},
		)

		localizer = i18n.NewLocalizer(bundle, localePreferences()...)
	})
}

func localePreferences() []string {
	var prefs []string
	if lang := os.Getenv(constants.LocaleEnvVar); lang != "" {
		prefs = append(prefs, lang)
	}
	if lang := os.Getenv("LANG"); lang != "" {
		// LANG carries an encoding suffix ("en_US.UTF-8")
		if idx := strings.IndexByte(lang, '.'); idx > 0 {
			lang = lang[:idx]
		}
		prefs = append(prefs, strings.ReplaceAll(lang, "_", "-"))
	}
	return append(prefs, "en")
}

// LoadTranslationBytes registers a TOML message file for a new language.
// The filename must carry the language tag, e.g. "ar.toml".
func LoadTranslationBytes(filename string, data []byte) error {
	initI18n()

	i18nMu.Lock()
	defer i18nMu.Unlock()

	if _, err := bundle.ParseMessageFileBytes(data, filename); err != nil {
		return err
	}
	localizer = i18n.NewLocalizer(bundle, localePreferences()...)
	return nil
}

// Localize returns the translated string for a message ID, falling back to
// the English default. Unknown IDs return the ID itself.
func Localize(id string) string {
	initI18n()

	i18nMu.RLock()
	defer i18nMu.RUnlock()

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
