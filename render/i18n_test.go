package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio/render"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	tcs := []struct {
		name       string
		userlang   string
		acceptLang string
		expected   language.Tag
	}{
		{name: "Nothing", expected: language.English},
		{name: "User-Lang", userlang: "fr", expected: language.French},
		{name: "User-Lang-First", userlang: "en", acceptLang: "fr", expected: language.English},
		{name: "Accept-Language", acceptLang: "fr-CA,fr;q=0.9,en;q=0.5", expected: language.French},
		{name: "Unparseable-User-Lang", userlang: "!!", acceptLang: "fr", expected: language.French},
		{name: "Unsupported", userlang: "ja", expected: language.English},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := render.MatchLanguage(tc.userlang, tc.acceptLang)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestLanguageName(t *testing.T) {
	tcs := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "English", code: "en", expected: "English"},
		{name: "French", code: "fr", expected: "français"},
		{name: "German", code: "de", expected: "Deutsch"},
		{name: "Unparseable", code: "!!", expected: "!!"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := render.LanguageName(tc.code)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}
