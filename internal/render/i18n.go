package render

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-ageclock/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

// Renderer formats snapshots for human consumption in a given language.
// It owns the translation bundle and a locale-aware number printer for
// thousands separators.
type Renderer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	printer   *message.Printer

	// SupportedLanguages lists the locales detected in the embedded files.
	SupportedLanguages []string
}

// New builds a Renderer for the requested language, falling back to the
// default language for unknown codes or missing keys.
func New(lang string) *Renderer {
	if lang == "" {
		lang = config.DefaultLanguage
	}

	r := &Renderer{
		bundle: i18n.NewBundle(language.English),
	}
	r.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	r.loadLocales()

	r.localizer = i18n.NewLocalizer(r.bundle, lang, config.DefaultLanguage)

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	r.printer = message.NewPrinter(tag)

	return r
}

// loadLocales registers every embedded active.<lang>.json file.
func (r *Renderer) loadLocales() {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := r.bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		r.SupportedLanguages = append(r.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}
}

// Msg translates a key safely, returning the key itself when no translation
// exists.
func (r *Renderer) Msg(key string) string {
	if r.localizer == nil {
		return key
	}
	msg, err := r.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
