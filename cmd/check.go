package main

import (
	"errors"
	"fmt"
	"io"
	"personcheck/internal/config"
	"personcheck/internal/validation"
	"personcheck/pkg/domain"
	"personcheck/pkg/serrors"

	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("input is invalid")

// samples is the reference table printed by `check --samples`.
var samples = []domain.PersonInput{ //nolint: gochecknoglobals
	{FullName: "Артём Зимин", Age: "19", Height: "185"},
	{FullName: "Елкина Диана", Age: "19", Height: "170"},
	{FullName: "Шабалов Артём Михайлович", Age: "25", Height: "176"},
	{FullName: "Вячеслав Морская Пехота", Age: "30", Height: "3 километра"},
	{FullName: "Исаева Влада Евгеньевна", Age: "22", Height: "метр с кепкой"},
	{FullName: "Анна-Мария", Age: "28", Height: "165"},
	{FullName: "John Smith", Age: "35", Height: "180"},
	{FullName: "Петр", Age: "150", Height: "175"},
	{FullName: "", Age: "25", Height: "180"},
	{FullName: "Иван123", Age: "25", Height: "180"},
	{FullName: "Мария", Age: "25", Height: ""},
	{FullName: "Олег", Age: "abc", Height: "175"},
	{FullName: "Сергей", Age: "25", Height: "45"},
	{FullName: "Дмитрий", Age: "25", Height: "300"},
}

// report validates in and writes a single line describing the outcome.
func report(w io.Writer, v validation.Validator, in domain.PersonInput) (bool, error) {
	person, err := v.Validate(in)
	if err != nil && validation.ReasonOf(err) == nil {
		return false, fmt.Errorf("could not validate input: %w", err)
	}

	var line string
	if err != nil {
		line = fmt.Sprintf("Тест: %s, %s лет, рост %s -> ❌ %s [%s]",
			in.FullName, in.Age, in.Height, serrors.PublicMessage(err), validation.ReasonOf(err))
	} else {
		line = fmt.Sprintf("Тест: %s, %s лет, рост %s -> ✅ Все данные валидны: %s, %d лет, рост %s",
			in.FullName, in.Age, in.Height, person.FullName, person.Age, person.Height)
	}
	if _, werr := fmt.Fprintln(w, line); werr != nil {
		return false, fmt.Errorf("could not write result: %w", werr)
	}

	return err == nil, nil
}

func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validates the given fields, or the sample table, without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validation.New(validation.NewOptions(cfg))
			out := cmd.OutOrStdout()

			if all, _ := cmd.Flags().GetBool("samples"); all {
				_, _ = fmt.Fprintln(out, "=== ТЕСТИРОВАНИЕ ВАЛИДАЦИИ ===")
				for _, in := range samples {
					if _, err := report(out, v, in); err != nil {
						return err
					}
				}

				return nil
			}

			var in domain.PersonInput
			in.FullName, _ = cmd.Flags().GetString("full-name")
			in.Age, _ = cmd.Flags().GetString("age")
			in.Height, _ = cmd.Flags().GetString("height")

			valid, err := report(out, v, in)
			if err != nil {
				return err
			}
			if !valid {
				return errInvalidInput
			}

			return nil
		},
	}

	cmd.Flags().String("full-name", "", "Full name (letters, spaces and hyphens)")
	cmd.Flags().String("age", "", "Age in years")
	cmd.Flags().String("height", "", "Height in centimetres or a free-text description")
	cmd.Flags().Bool("samples", false, "Validate the built-in sample table instead")

	return cmd
}
