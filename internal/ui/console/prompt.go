package console

import (
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
)

// AskText prompts for the text to identify.
func AskText() (string, error) {
	var s string
	q := &survey.Input{Message: "Text to identify:"}
	if err := survey.AskOne(q, &s, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}
