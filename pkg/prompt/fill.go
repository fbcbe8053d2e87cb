package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hgrecco/mdform/pkg/form"
)

// Fill walks the definition in document order and prompts for each field.
// Fields inside a collapse block whose controlling select answered the
// closing option are skipped. Optional fields answered with an empty string
// are left out of the result.
func Fill(ctx context.Context, definition *form.Definition, driver Driver) (map[string]any, error) {
	if driver == nil {
		driver = NewSurveyDriver()
	}

	blockFor := make(map[string]form.Block)
	for _, block := range definition.Blocks() {
		for _, name := range block.Fields {
			blockFor[name] = block
		}
	}

	values := make(map[string]any, definition.Len())
	for _, name := range definition.Names() {
		if block, ok := blockFor[name]; ok && blockClosed(definition, values, block) {
			continue
		}
		field, _ := definition.Get(name)
		value, answered, err := ask(ctx, driver, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", name, err)
		}
		if answered {
			values[name] = value
		}
	}
	return values, nil
}

// blockClosed evaluates the collapse state of a block from the answers
// gathered so far. Blocks without a wired controller stay open.
func blockClosed(definition *form.Definition, values map[string]any, block form.Block) bool {
	control, ok := definition.Get(block.Control)
	if !ok {
		return false
	}
	sel, ok := control.Specific.(form.Select)
	if !ok || sel.Collapse == nil {
		return false
	}
	answer, ok := values[block.Control].(string)
	if !ok {
		return false
	}
	if sel.Collapse.Action == form.CollapseClose {
		return answer == sel.Collapse.Key
	}
	return answer != sel.Collapse.Key
}

func ask(ctx context.Context, driver Driver, field form.Field) (any, bool, error) {
	message := field.Label()

	switch spec := field.Specific.(type) {
	case form.String:
		return textAnswer(driver.Input(ctx, InputConfig{
			Message:  message,
			Validate: lengthValidator(field.Required, spec.MaxLength),
		}))
	case form.TextArea:
		return textAnswer(driver.Multiline(ctx, InputConfig{
			Message:  message,
			Validate: lengthValidator(field.Required, spec.MaxLength),
		}))
	case form.Email:
		return textAnswer(driver.Input(ctx, InputConfig{
			Message:  message,
			Validate: emailValidator(field.Required),
		}))
	case form.Date:
		return textAnswer(driver.Input(ctx, InputConfig{
			Message:  message,
			Help:     "YYYY-MM-DD",
			Validate: timeValidator(field.Required, "2006-01-02"),
		}))
	case form.Time:
		return textAnswer(driver.Input(ctx, InputConfig{
			Message:  message,
			Help:     "HH:MM",
			Validate: timeValidator(field.Required, "15:04"),
		}))
	case form.File:
		return textAnswer(driver.Input(ctx, InputConfig{Message: message}))
	case form.Integer:
		answer, err := driver.Input(ctx, InputConfig{
			Message:  message,
			Validate: intValidator(field.Required, spec),
		})
		if err != nil {
			return nil, false, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil, false, nil
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case form.Float, form.Decimal:
		answer, err := driver.Input(ctx, InputConfig{
			Message:  message,
			Validate: floatValidator(field.Required),
		})
		if err != nil {
			return nil, false, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil, false, nil
		}
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case form.Radio:
		return choiceAnswer(ctx, driver, message, spec.Choices, spec.Default)
	case form.Select:
		return choiceAnswer(ctx, driver, message, spec.Choices, spec.Default)
	case form.Checkbox:
		options := make([]string, len(spec.Choices))
		defaults := make([]int, 0, len(spec.Defaults))
		for i, choice := range spec.Choices {
			options[i] = choice.Label
			for _, key := range spec.Defaults {
				if key == choice.Key {
					defaults = append(defaults, i)
				}
			}
		}
		picked, err := driver.MultiSelect(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: -1,
			Defaults:     defaults,
		})
		if err != nil {
			return nil, false, err
		}
		keys := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx >= 0 && idx < len(spec.Choices) {
				keys = append(keys, spec.Choices[idx].Key)
			}
		}
		return keys, true, nil
	default:
		return nil, false, fmt.Errorf("unsupported field kind %q", field.Kind())
	}
}

func textAnswer(answer string, err error) (any, bool, error) {
	if err != nil {
		return nil, false, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, false, nil
	}
	return answer, true, nil
}

func choiceAnswer(ctx context.Context, driver Driver, message string, choices []form.Choice, defaultKey string) (any, bool, error) {
	options := make([]string, len(choices))
	defaultIndex := -1
	for i, choice := range choices {
		options[i] = choice.Label
		if defaultKey != "" && choice.Key == defaultKey {
			defaultIndex = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, false, fmt.Errorf("choice index %d out of range", idx)
	}
	return choices[idx].Key, true, nil
}

func requireAnswer(required bool, answer string) error {
	if required && strings.TrimSpace(answer) == "" {
		return fmt.Errorf("an answer is required")
	}
	return nil
}

func lengthValidator(required bool, max *int) func(string) error {
	return func(answer string) error {
		if err := requireAnswer(required, answer); err != nil {
			return err
		}
		if max != nil && len(answer) > *max {
			return fmt.Errorf("answer exceeds %d characters", *max)
		}
		return nil
	}
}

func emailValidator(required bool) func(string) error {
	return func(answer string) error {
		if err := requireAnswer(required, answer); err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer != "" && !strings.Contains(answer, "@") {
			return fmt.Errorf("%q is not an email address", answer)
		}
		return nil
	}
}

func timeValidator(required bool, layout string) func(string) error {
	return func(answer string) error {
		if err := requireAnswer(required, answer); err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil
		}
		if _, err := time.Parse(layout, answer); err != nil {
			return fmt.Errorf("%q does not match %s", answer, layout)
		}
		return nil
	}
}

func intValidator(required bool, spec form.Integer) func(string) error {
	return func(answer string) error {
		if err := requireAnswer(required, answer); err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("%q is not an integer", answer)
		}
		if spec.Min != nil && value < *spec.Min {
			return fmt.Errorf("minimum is %d", *spec.Min)
		}
		if spec.Max != nil && value > *spec.Max {
			return fmt.Errorf("maximum is %d", *spec.Max)
		}
		return nil
	}
}

func floatValidator(required bool) func(string) error {
	return func(answer string) error {
		if err := requireAnswer(required, answer); err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(answer, 64); err != nil {
			return fmt.Errorf("%q is not a number", answer)
		}
		return nil
	}
}
