package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Language struct {
	Name string
	Code string
}

const DefaultLanguage = "English"

// order matters: it is the order of the language select
var languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Italian", Code: "it"},
	{Name: "Russian", Code: "ru"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Chinese (Simplified)", Code: "zh-cn"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Arabic", Code: "ar"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Korean", Code: "ko"},
	{Name: "Turkish", Code: "tr"},
	{Name: "Dutch", Code: "nl"},
}

func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func LanguageCode(name string) (string, bool) {
	for _, l := range languages {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}

func LanguageName(code string) (string, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

func IsSupportedCode(code string) bool {
	_, ok := LanguageName(code)
	return ok
}

// LanguageTag parses a table code into a BCP 47 tag ("zh-cn" -> zh-CN).
func LanguageTag(code string) (language.Tag, error) {
	if !IsSupportedCode(code) {
		return language.Und, fmt.Errorf("unsupported language code %q", code)
	}
	return language.Parse(strings.ReplaceAll(code, "_", "-"))
}
