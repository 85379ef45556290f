// Package prompt implements the interactive terminal side of a narrowing
// session.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"class-finder/internal/domain"
)

var ErrInvalidChoice = errors.New("choice is not one of the options")

type selectFunc func(text string, options []string) (string, error)

type confirmFunc func(text string) (bool, error)

// Terminal asks questions with pterm interactive selects.
type Terminal struct {
	selectOption selectFunc
	confirm      confirmFunc
}

// NewTerminal builds a pterm-backed terminal. pterm captures Ctrl+C while a
// prompt is open; onInterrupt runs instead of its default os.Exit, so pass
// the cancel func of the session context.
func NewTerminal(onInterrupt func()) *Terminal {
	if onInterrupt == nil {
		onInterrupt = func() {}
	}
	return &Terminal{
		selectOption: func(text string, options []string) (string, error) {
			return pterm.DefaultInteractiveSelect.
				WithOptions(options).
				WithMaxHeight(len(options)).
				WithOnInterruptFunc(onInterrupt).
				Show(text)
		},
		confirm: func(text string) (bool, error) {
			return pterm.DefaultInteractiveConfirm.
				WithDefaultValue(true).
				WithOnInterruptFunc(onInterrupt).
				Show(text)
		},
	}
}

// Choose shows text with labels as options and returns the picked label.
func (t *Terminal) Choose(ctx context.Context, text string, labels []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: no options for %q", ErrInvalidChoice, text)
	}
	choice, err := t.selectOption(text, labels)
	if err != nil {
		return "", err
	}
	// Tras un Ctrl+C pterm devuelve la opcion resaltada; se descarta.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !slices.Contains(labels, choice) {
		return "", fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	return choice, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := t.confirm(text)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return ok, nil
}

// PrintEntity prints every trait that applies to c.
func PrintEntity(c domain.Character) {
	pterm.DefaultSection.Println(c.Name)
	if desc := strings.TrimSpace(c.Description); desc != "" {
		pterm.Println(pterm.Gray(desc))
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(entityRows(c)).Render()
}

func entityRows(c domain.Character) pterm.TableData {
	rows := pterm.TableData{{"Trait", "Value"}}
	for _, trait := range domain.Traits() {
		if trait == domain.TraitName || trait == domain.TraitDescription {
			continue
		}
		v := c.Value(trait)
		if v.IsNull() {
			continue
		}
		rows = append(rows, []string{string(trait), formatValue(v)})
	}
	return rows
}

func formatValue(v domain.TraitValue) string {
	switch v.Kind {
	case domain.ValueBool:
		if v.Bool {
			return "Yes"
		}
		return "No"
	case domain.ValueStrings:
		if len(v.Strings) == 0 {
			return "-"
		}
		return strings.Join(v.Strings, ", ")
	default:
		return v.String
	}
}

// PrintResult muestra el personaje encontrado.
func PrintResult(c domain.Character, questions int) {
	pterm.Println()
	pterm.Success.Printfln("You're looking for: %s", c.Name)
	if desc := strings.TrimSpace(c.Description); desc != "" {
		pterm.Printfln("  %s", pterm.Gray(desc))
	}
	pterm.Info.Printfln("Found after %d questions", questions)
	pterm.Println()
}
