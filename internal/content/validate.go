package content

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned when a page fails validation.
var ErrInvalid = errors.New("invalid page content")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every record of the page is well-formed.
func (p *Page) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Sanitize cleans every rich text field in place.
func (p *Page) Sanitize() {
	p.Benefits.Intro = p.Benefits.Intro.Sanitize()
	for i, para := range p.Mentor.Paragraphs {
		p.Mentor.Paragraphs[i] = para.Sanitize()
	}
}
