package template_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio/http/template"
	tt "github.com/xy-planning-network/folio/http/template/templatetest"
)

func TestNewRegistry(t *testing.T) {
	// Arrange + Act
	reg, err := template.NewRegistry()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{
		"error.html",
		"external_blocker.html",
		"no_js_library_page.html",
		"search_result.html",
		"taskbar.html",
	}, reg.Names())
}

func TestRegistryRender(t *testing.T) {
	type page struct{ Name string }

	tcs := []struct {
		name   string
		files  []tt.File
		tmpl   string
		data   any
		assert func(*testing.T, []byte, error)
	}{
		{
			name:  "Unknown-Template",
			files: nil,
			tmpl:  "nope.html",
			assert: func(t *testing.T, b []byte, err error) {
				require.ErrorIs(t, err, template.ErrNotFound)
				require.Nil(t, b)
			},
		},
		{
			name:  "Struct-Data",
			files: []tt.File{tt.NewMockFile("tmpl/hi.html", []byte(`<p>{{ .Name }}</p>`))},
			tmpl:  "hi.html",
			data:  page{Name: "<b>folio</b>"},
			assert: func(t *testing.T, b []byte, err error) {
				require.Nil(t, err)
				require.Equal(t, "<p>&lt;b&gt;folio&lt;/b&gt;</p>", string(b))
			},
		},
		{
			name:  "Missing-Field",
			files: []tt.File{tt.NewMockFile("tmpl/hi.html", []byte(`<p>before</p>{{ .Nope }}<p>after</p>`))},
			tmpl:  "hi.html",
			data:  page{Name: "folio"},
			assert: func(t *testing.T, b []byte, err error) {
				require.ErrorIs(t, err, template.ErrRender)
				require.Nil(t, b)
			},
		},
		{
			name:  "Missing-Key",
			files: []tt.File{tt.NewMockFile("tmpl/hi.html", []byte(`<p>{{ .Nope }}</p>`))},
			tmpl:  "hi.html",
			data:  map[string]any{"Name": "folio"},
			assert: func(t *testing.T, b []byte, err error) {
				require.ErrorIs(t, err, template.ErrRender)
				require.Nil(t, b)
			},
		},
		{
			name: "Partial",
			files: []tt.File{
				tt.NewMockFile("tmpl/hi.html", []byte(`<div>{{ template "greet" . }}</div>`)),
				tt.NewMockFile("tmpl/_greet.html", []byte(`{{ define "greet" }}hi {{ .Name }}{{ end }}`)),
			},
			tmpl: "hi.html",
			data: page{Name: "folio"},
			assert: func(t *testing.T, b []byte, err error) {
				require.Nil(t, err)
				require.Equal(t, "<div>hi folio</div>", string(b))
			},
		},
		{
			name:  "Shadows-Embedded",
			files: []tt.File{tt.NewMockFile("tmpl/error.html", []byte(`oops`))},
			tmpl:  "error.html",
			assert: func(t *testing.T, b []byte, err error) {
				require.Nil(t, err)
				require.Equal(t, "oops", string(b))
			},
		},
		{
			name:  "Nonce",
			files: []tt.File{tt.NewMockFile("tmpl/n.html", []byte(`{{ nonce }}`))},
			tmpl:  "n.html",
			assert: func(t *testing.T, b []byte, err error) {
				require.Nil(t, err)
				require.Len(t, b, 36)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			reg, err := tt.NewRegistry(tc.files...)
			require.Nil(t, err)

			// Act
			b, err := reg.Render(tc.tmpl, tc.data)

			// Assert
			tc.assert(t, b, err)
		})
	}
}

func TestNewRegistryParseError(t *testing.T) {
	_, err := tt.NewRegistry(tt.NewMockFile("tmpl/bad.html", []byte(`{{ if }}`)))
	require.ErrorIs(t, err, template.ErrParse)

	_, err = tt.NewRegistry(tt.NewMockFile("tmpl/fn.html", []byte(`{{ undefinedFn }}`)))
	require.ErrorIs(t, err, template.ErrParse)
}

func TestWithFn(t *testing.T) {
	reg, err := template.NewRegistry(
		template.WithFS(tt.NewMockFS(tt.NewMockFile("tmpl/fn.html", []byte(`{{ shout "hi" }}`)))),
		template.WithFn("shout", func(s string) string { return s + "!" }),
	)
	require.Nil(t, err)

	b, err := reg.Render("fn.html", nil)
	require.Nil(t, err)
	require.Equal(t, "hi!", string(b))
}
