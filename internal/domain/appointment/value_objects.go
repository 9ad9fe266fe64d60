package appointment

import (
	"strings"
	"unicode/utf8"

	"office-hours/internal/pkg/errs"
)

const MaxNotesLength = 500

var ErrNotesTooLong = errs.Mark(errs.New("notes cannot exceed 500 characters"), errs.ErrValidation)

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: value}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

func ReconstructNotes(value string) Notes {
	return Notes{value: value}
}
