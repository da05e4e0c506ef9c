package render

import (
	"context"
	"html/template"

	"github.com/xy-planning-network/folio"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgAllCategories        = "book-filtering-all-categories"
	msgAllLanguages         = "book-filtering-all-languages"
	msgCountOfMatchingBooks = "count-of-matching-books"
	msgDownload             = "download"
	msgPoweredBy            = "powered-by-html"
	msgPreviewBook          = "preview-book"
	msgSearch               = "search"
	msgWelcome              = "welcome"
)

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)
	messages  = newMessages()
)

// Translations are the localized strings of the catalog listing.
type Translations struct {
	AllCategories        string
	AllLanguages         string
	CountOfMatchingBooks string
	Download             string
	PoweredBy            template.HTML
	PreviewBook          string
	Search               string
	Welcome              string
}

func newMessages() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	set := func(tag language.Tag, strs map[string]string) {
		for key, msg := range strs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	set(language.English, map[string]string{
		msgAllCategories: "All categories",
		msgAllLanguages:  "All languages",
		msgDownload:      "Download",
		msgPoweredBy:     `Powered by <a href="https://github.com/xy-planning-network/folio">folio</a>`,
		msgPreviewBook:   "Preview",
		msgSearch:        "Search",
		msgWelcome:       "Welcome to the library",
	})
	set(language.French, map[string]string{
		msgAllCategories: "Toutes les catégories",
		msgAllLanguages:  "Toutes les langues",
		msgDownload:      "Télécharger",
		msgPoweredBy:     `Propulsé par <a href="https://github.com/xy-planning-network/folio">folio</a>`,
		msgPreviewBook:   "Aperçu",
		msgSearch:        "Rechercher",
		msgWelcome:       "Bienvenue dans la bibliothèque",
	})

	plurals := map[language.Tag]catalog.Message{
		language.English: plural.Selectf(1, "%d",
			"=0", "No book matches",
			"one", "%d book",
			"other", "%d books",
		),
		language.French: plural.Selectf(1, "%d",
			"=0", "Aucun livre ne correspond",
			"one", "%d livre",
			"other", "%d livres",
		),
	}
	for tag, msg := range plurals {
		if err := b.Set(tag, msgCountOfMatchingBooks, msg); err != nil {
			panic(err)
		}
	}

	return b
}

// MatchLanguage picks the supported language best matching userlang,
// falling back to the Accept-Language header value acceptLang, then English.
func MatchLanguage(userlang, acceptLang string) language.Tag {
	var tags []language.Tag
	if userlang != "" {
		if tag, err := language.Parse(userlang); err == nil {
			tags = append(tags, tag)
		}
	}

	if accepted, _, err := language.ParseAcceptLanguage(acceptLang); err == nil {
		tags = append(tags, accepted...)
	}

	_, i, conf := matcher.Match(tags...)
	if conf == language.No {
		return supported[0]
	}

	return supported[i]
}

// LanguageName returns the name of the language code in that language, e.g., "français" for "fr".
// Unknown codes are returned as they are.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	if name := display.Self.Name(tag); name != "" {
		return name
	}

	return code
}

// printer formats for the language stashed in ctx.
func printer(ctx context.Context) *message.Printer {
	return message.NewPrinter(MatchLanguage(folio.UserLangFromContext(ctx), ""), message.Catalog(messages))
}

// translations localizes the listing strings for count matching books.
func translations(p *message.Printer, count int) Translations {
	return Translations{
		AllCategories:        p.Sprintf(msgAllCategories),
		AllLanguages:         p.Sprintf(msgAllLanguages),
		CountOfMatchingBooks: p.Sprintf(msgCountOfMatchingBooks, count),
		Download:             p.Sprintf(msgDownload),
		PoweredBy:            template.HTML(p.Sprintf(msgPoweredBy)),
		PreviewBook:          p.Sprintf(msgPreviewBook),
		Search:               p.Sprintf(msgSearch),
		Welcome:              p.Sprintf(msgWelcome),
	}
}
