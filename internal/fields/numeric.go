package fields

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptyModifier = errors.New("empty numeric modifier")

// splitSlots splits a colon-separated modifier into at most max slots.
// Empty content and slot overflow are both reported as errors; individual
// empty slots are legal and mean "unset".
func splitSlots(content string, max int) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errEmptyModifier
	}
	slots := strings.Split(content, ":")
	if len(slots) > max {
		return nil, fmt.Errorf("expected at most %d values, got %d", max, len(slots))
	}
	for i, slot := range slots {
		slots[i] = strings.TrimSpace(slot)
	}
	return slots, nil
}

func intSlot(slot string) (*int, error) {
	if slot == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(slot)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", slot)
	}
	return &value, nil
}

func floatSlot(slot string) (*float64, error) {
	if slot == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(slot, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", slot)
	}
	return &value, nil
}

// intRange parses `min:max:step`. A single value sets the maximum.
func intRange(content string) (min, max, step *int, err error) {
	slots, err := splitSlots(content, 3)
	if err != nil {
		return nil, nil, nil, err
	}
	values := make([]*int, len(slots))
	for i, slot := range slots {
		if values[i], err = intSlot(slot); err != nil {
			return nil, nil, nil, err
		}
	}
	switch len(values) {
	case 1:
		return nil, values[0], nil, nil
	case 2:
		return values[0], values[1], nil, nil
	default:
		return values[0], values[1], values[2], nil
	}
}

// floatRange parses `min:max:step`. A single value sets the maximum.
func floatRange(content string) (min, max, step *float64, err error) {
	slots, err := splitSlots(content, 3)
	if err != nil {
		return nil, nil, nil, err
	}
	values := make([]*float64, len(slots))
	for i, slot := range slots {
		if values[i], err = floatSlot(slot); err != nil {
			return nil, nil, nil, err
		}
	}
	switch len(values) {
	case 1:
		return nil, values[0], nil, nil
	case 2:
		return values[0], values[1], nil, nil
	default:
		return values[0], values[1], values[2], nil
	}
}

// decimalRange parses `min:max:step:places`. The fourth slot, when present,
// must be a non-empty integer; places defaults to 2 otherwise.
func decimalRange(content string) (min, max, step *float64, places int, err error) {
	places = 2
	slots, err := splitSlots(content, 4)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	if len(slots) == 4 {
		value, err := strconv.Atoi(slots[3])
		if err != nil {
			return nil, nil, nil, 0, fmt.Errorf("invalid decimal places %q", slots[3])
		}
		places = value
		slots = slots[:3]
	}
	values := make([]*float64, len(slots))
	for i, slot := range slots {
		if values[i], err = floatSlot(slot); err != nil {
			return nil, nil, nil, 0, err
		}
	}
	switch len(values) {
	case 1:
		return nil, values[0], nil, places, nil
	case 2:
		return values[0], values[1], nil, places, nil
	default:
		return values[0], values[1], values[2], places, nil
	}
}

// bracketLength parses the `[n]` modifier of string-like fields. Empty
// brackets mean unlimited.
func bracketLength(content string) (*int, error) {
	if content == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(content)
	if err != nil {
		return nil, fmt.Errorf("invalid length %q", content)
	}
	return &value, nil
}
