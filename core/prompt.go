package core

import (
	"strings"
)

// RenderPrompt expands the prompt template: \w becomes the absolute working
// directory and \$ becomes "$".
func (s *Shell) RenderPrompt() string {
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	if strings.Contains(prompt, `\w`) {
		wd, err := s.VirtualOS.Getwd()
		if err != nil {
			s.Log.Printf("prompt: %v", err)
			wd = "?"
		}
		prompt = strings.ReplaceAll(prompt, `\w`, s.colorize(colorBoldBlue, wd))
	}

	return strings.ReplaceAll(prompt, `\$`, "$")
}
