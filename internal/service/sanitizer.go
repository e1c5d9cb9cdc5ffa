package service

import "github.com/microcosm-cc/bluemonday"

// sanitizer strips markup from user generated text before it is stored.
// A nil *sanitizer leaves text untouched.
type sanitizer struct {
	title   *bluemonday.Policy
	content *bluemonday.Policy
}

func newSanitizer(enabled bool) *sanitizer {
	if !enabled {
		return nil
	}

	return &sanitizer{
		title:   bluemonday.StrictPolicy(),
		content: bluemonday.UGCPolicy(),
	}
}

func (s *sanitizer) Title(text string) string {
	if s == nil {
		return text
	}
	return s.title.Sanitize(text)
}

func (s *sanitizer) Content(text string) string {
	if s == nil {
		return text
	}
	return s.content.Sanitize(text)
}
