// Package prompt provides interactive prompt functionality for prflow.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"prflow/pkg/catalog"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// SelectAction prompts the user to pick one of the catalog choices.
	// Returns ErrCancelled when the user picks cancel or quits.
	SelectAction(choices catalog.Choices) (*catalog.StateAction, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForDescription prompts the user for a change description.
	PromptForDescription() (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// SelectAction prompts the user to pick one of the catalog choices.
func (p *realPrompt) SelectAction(choices catalog.Choices) (*catalog.StateAction, error) {
	if len(choices.Choices) == 0 {
		return nil, ErrNoChoices
	}
	return selectActionBubbleTea(choices)
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptForDescription prompts the user for a change description.
func (p *realPrompt) PromptForDescription() (string, error) {
	fmt.Print("Describe the change: ")

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	description := strings.TrimSpace(input)
	if description == "" {
		return "", ErrEmptyDescription
	}

	return description, nil
}
