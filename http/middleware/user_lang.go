package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/render"
)

// UserLangParam overrides the "Accept-Language" header of a request.
const UserLangParam = "userlang"

// InjectUserLang negotiates the language to render localized pages in
// and stashes it in *http.Request.Context under folio.UserLangKey.
func InjectUserLang() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := render.MatchLanguage(r.URL.Query().Get(UserLangParam), r.Header.Get("Accept-Language"))
			ctx := context.WithValue(r.Context(), folio.UserLangKey, tag.String())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
