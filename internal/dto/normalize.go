package dto

import "strings"

// Normalizer is implemented by requests that clean their own input before
// validation.
type Normalizer interface {
	Normalize()
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func trimPtr(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
