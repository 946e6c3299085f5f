package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("selection aborted")

// sectionPrompter asks which document sections to keep.
type sectionPrompter interface {
	SelectSections(ctx context.Context, names []string) ([]string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) SelectSections(ctx context.Context, names []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []string
	prompt := &survey.MultiSelect{
		Message: "Sections to render",
		Options: names,
		Default: names,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, errAborted
		}
		return nil, err
	}
	return out, nil
}
