// Package validation decides whether a person's full name, age and height are
// acceptable. The rules are applied in a fixed order and the first failing
// rule determines the outcome.
package validation

import (
	"errors"
	"personcheck/internal/config"
	"personcheck/pkg/domain"
	"personcheck/pkg/serrors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Latin or Cyrillic letters (ё/Ё included), whitespace and hyphens.
	namePattern = regexp.MustCompile(`^[A-Za-z\x{0400}-\x{04FF}\s\-]+$`)
	// Same alphabets plus digits and dots.
	heightPattern = regexp.MustCompile(`^[A-Za-z\x{0400}-\x{04FF}0-9\s.\-]+$`)
	numericHeight = regexp.MustCompile(`^[0-9]+$`)
)

// Options holds the inclusive bounds used by the range rules.
type Options struct {
	MinAge    int
	MaxAge    int
	MinHeight int
	MaxHeight int
}

// DefaultOptions returns the bounds used when nothing is configured:
// age 1..120 and numeric height 50..250 cm.
func DefaultOptions() Options {
	return Options{
		MinAge:    1,
		MaxAge:    120,
		MinHeight: 50,
		MaxHeight: 250,
	}
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MinAge:    cfg.Validation.MinAge,
		MaxAge:    cfg.Validation.MaxAge,
		MinHeight: cfg.Validation.MinHeight,
		MaxHeight: cfg.Validation.MaxHeight,
	}
}

type validator struct {
	options Options
}

// New returns a Validator enforcing the given bounds.
func New(options Options) Validator {
	return &validator{options: options}
}

// Validate checks in against DefaultOptions.
func Validate(in domain.PersonInput) (domain.Person, error) {
	return validator{options: DefaultOptions()}.Validate(in)
}

// Validate applies the rules in order:
//  1. full name: non-empty, letters/whitespace/hyphens only
//  2. age: integer, within [MinAge, MaxAge]
//  3. height: non-empty
//  4. height: letters/digits/whitespace/dots/hyphens only
//  5. height: if it is purely digits (ignoring surrounding whitespace), within [MinHeight, MaxHeight]
//
// Free-text heights such as "3 километра" pass rule 4 and are never range checked.
func (v validator) Validate(in domain.PersonInput) (domain.Person, error) {
	if in.FullName == "" || !namePattern.MatchString(in.FullName) {
		return domain.Person{}, serrors.With(ErrInvalidName,
			"Некорректное полное имя: должно содержать только буквы, пробелы и дефисы (латиница или кириллица)")
	}

	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	switch {
	case errors.Is(err, strconv.ErrRange):
		return domain.Person{}, v.ageRangeError()
	case err != nil:
		return domain.Person{}, serrors.With(ErrInvalidAgeFormat, "Некорректный возраст: должен быть целым числом")
	case age < v.options.MinAge || age > v.options.MaxAge:
		return domain.Person{}, v.ageRangeError()
	}

	if in.Height == "" {
		return domain.Person{}, serrors.With(ErrInvalidHeightEmpty, "Некорректный рост: не может быть пустым")
	}
	if !heightPattern.MatchString(in.Height) {
		return domain.Person{}, serrors.With(ErrInvalidHeightChars, "Некорректный рост: содержит недопустимые символы")
	}

	if trimmed := strings.TrimSpace(in.Height); numericHeight.MatchString(trimmed) {
		h, err := strconv.Atoi(trimmed)
		if err != nil || h < v.options.MinHeight || h > v.options.MaxHeight {
			return domain.Person{}, serrors.With(ErrInvalidHeightRange,
				"Некорректный числовой рост: должен быть от %d до %d см", v.options.MinHeight, v.options.MaxHeight)
		}
	}

	return domain.Person{
		FullName: in.FullName,
		Age:      age,
		Height:   in.Height,
	}, nil
}

func (v validator) ageRangeError() error {
	return serrors.With(ErrInvalidAgeRange,
		"Некорректный возраст: должен быть числом от %d до %d", v.options.MinAge, v.options.MaxAge)
}
