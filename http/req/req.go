package req

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/folio"
)

// A Parser decodes and validates query parameters.
// A Parser is safe for use by multiple goroutines.
type Parser struct {
	decoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		decoder:   newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseQueryParams decodes params into structPtr.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if v := reflect.ValueOf(structPtr); v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("folio/http/req: %w: ParseQueryParams called with %T", folio.ErrBadAny, structPtr)
	}

	if err := p.decoder.Decode(structPtr, params); err != nil {
		return fmt.Errorf("folio/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("folio/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
