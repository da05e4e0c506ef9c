package template

import (
	html "html/template"

	"github.com/google/uuid"
)

// AddFn includes the named function in the Registry function map.
//
// AddFn only affects templates parsed afterwards;
// call it through WithFn when constructing a Registry.
func (reg *Registry) AddFn(name string, fn any) {
	if reg.fns == nil {
		reg.fns = make(html.FuncMap)
	}
	reg.fns[name] = fn
}

// Nonce names "nonce" the function generating a fresh uuid every call,
// for the nonce attribute of inline styles and scripts.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}
