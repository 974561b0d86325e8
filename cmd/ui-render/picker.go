package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("prompt aborted")

type picker interface {
	Pick(message string, options []string, def string) (string, error)
}

type surveyPicker struct{}

func (surveyPicker) Pick(message string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("manifest has no element types")
	}
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	for _, option := range options {
		if option == def {
			prompt.Default = def
			break
		}
	}

	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}
