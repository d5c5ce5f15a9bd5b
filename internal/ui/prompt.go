package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question. Declining is not an
// error: it returns (false, nil).
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	return strings.EqualFold(result, "y"), nil
}

// InputPrompt asks for text input with optional validation
func InputPrompt(label string, defaultValue string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return "", fmt.Errorf("input cancelled by user")
		}
		return "", err
	}

	return result, nil
}

// SelectPrompt presents a fuzzy-searchable list of options
func SelectPrompt(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  minInt(10, len(items)),
		Searcher: func(input string, index int) bool {
			if index < 0 || index >= len(items) {
				return false
			}
			if input == "" {
				return true
			}
			return fuzzy.MatchNormalizedFold(strings.TrimSpace(input), items[index])
		},
	}

	index, result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return -1, "", fmt.Errorf("selection cancelled by user")
		}
		return -1, "", err
	}

	return index, result, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ValidateNonEmpty validates that input is not empty
func ValidateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// ValidateEmail validates a minimally plausible email address
func ValidateEmail(input string) error {
	input = strings.TrimSpace(input)
	at := strings.Index(input, "@")
	if at <= 0 || at == len(input)-1 {
		return errors.New("enter a valid email address")
	}
	return nil
}

// ValidateHostname validates an RFC-952-ish hostname: letters, digits,
// hyphens, no leading/trailing hyphen, at most 63 characters.
func ValidateHostname(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || len(input) > 63 {
		return errors.New("hostname must be 1-63 characters")
	}
	if strings.HasPrefix(input, "-") || strings.HasSuffix(input, "-") {
		return errors.New("hostname cannot start or end with a hyphen")
	}
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return fmt.Errorf("hostname cannot contain %q", r)
		}
	}
	return nil
}
