package pagehandler

import (
	"personcheck/internal/api/handler"
	"personcheck/pkg/domain"
)

// Example is a prepared request shown as a link on every page.
type Example struct {
	Label string
	Input domain.PersonInput
}

// Href returns the link target with the query properly encoded.
func (e Example) Href() string {
	return "/?" + handler.Query(e.Input).Encode()
}

// Examples returns the static example requests, all of which pass validation
// with the default bounds.
func Examples() []Example {
	return []Example{
		{
			Label: "Артём Зимин 19 лет рост 185",
			Input: domain.PersonInput{FullName: "Артём Зимин", Age: "19", Height: "185"},
		},
		{
			Label: "Елкина Диана 19 лет рост 170",
			Input: domain.PersonInput{FullName: "Елкина Диана", Age: "19", Height: "170"},
		},
		{
			Label: "Шабалов Артём Михайлович рост 176",
			Input: domain.PersonInput{FullName: "Шабалов Артём Михайлович", Age: "25", Height: "176"},
		},
		{
			Label: "Вячеслав Морская Пехота рост 3 километра",
			Input: domain.PersonInput{FullName: "Вячеслав Морская Пехота", Age: "30", Height: "3 километра"},
		},
		{
			Label: "Исаева Влада Евгеньевна рост метр с кепкой",
			Input: domain.PersonInput{FullName: "Исаева Влада Евгеньевна", Age: "22", Height: "метр с кепкой"},
		},
	}
}
