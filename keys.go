package folio

import "context"

type Key string

const (
	// BookKey stashes the name of the book an HTTP request addresses.
	BookKey Key = "BookKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by folio.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// UserLangKey stashes the language negotiated for rendering localized pages.
	UserLangKey Key = "UserLangKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "folio context key: " + string(k)
}

// RequestIDFromContext retrieves the request ID stashed by the RequestID middleware, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// UserLangFromContext retrieves the negotiated user language, if any.
func UserLangFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(UserLangKey).(string)
	return lang
}
