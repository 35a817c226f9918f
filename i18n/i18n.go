// Package i18n resolves user-facing API messages in English and
// Kurdish. It is a flat key lookup over embedded JSON catalogs, not a
// translation framework.
package i18n

import (
	"embed"
	"encoding/json"
	"log"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	LangEnglish = "en"
	LangKurdish = "ku"
)

var catalogs = map[string]map[string]string{}

func init() {
	for _, lang := range []string{LangEnglish, LangKurdish} {
		data, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			log.Printf("i18n: missing catalog for %s: %v", lang, err)
			continue
		}
		catalog := map[string]string{}
		if err := json.Unmarshal(data, &catalog); err != nil {
			log.Printf("i18n: bad catalog for %s: %v", lang, err)
			continue
		}
		catalogs[lang] = catalog
	}
}

// Normalize maps an Accept-Language value or ?lang= parameter onto one
// of the supported language codes, defaulting to English.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, ",;-_"); i > 0 {
		lang = lang[:i]
	}
	switch lang {
	case LangKurdish, "ckb", "kmr":
		return LangKurdish
	default:
		return LangEnglish
	}
}

// T returns the message for key in lang. Unknown keys fall back to the
// English catalog, then to the key itself so a miss is visible.
func T(lang, key string) string {
	lang = Normalize(lang)
	if msg, ok := catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[LangEnglish][key]; ok {
		return msg
	}
	return key
}
