package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// SelectPrompt presents a list of options for selection with fuzzy search
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
		StartInSearchMode: false,
	}

	index, result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return -1, "", ErrMenuQuit
		}
		return -1, "", err
	}

	return index, result, nil
}

// ConfirmPrompt asks a yes/no confirmation question
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, fmt.Errorf("operation cancelled by user")
		}
		return false, err
	}

	// promptui returns "y" for yes
	return result == "y", nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
