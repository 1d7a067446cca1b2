package term

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
)

// confirm asks yes/no `question` until a valid answer is given.
// Interrupt or closed input count as "no".
var confirm = func(question string) bool {
	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Templates: &promptui.PromptTemplates{
			Confirm: "❓ {{ . }} [Y/n]: ",
		},
		HideEntered: true,
		Default:     "y",
	}

	for {
		answer, err := prompt.Run()
		if err != nil && len(answer) == 0 {
			return false
		}

		switch answer {
		case "y", "Y", "yes":
			return true
		case "n", "N", "no":
			return false
		}

		prompt.Label = question + " Type 'y' (yes) or 'n' (no)"
		prompt.Templates.Confirm = "❓ {{ . }}: "
	}
}

// PromptStderrView asks whether captured `stderr` of the failed binary should be viewed,
// copying it to `out` on confirmation.
func PromptStderrView(stderr io.Reader, out io.Writer) bool {
	if !confirm("View full error log?") {
		return false
	}

	_, _ = io.Copy(out, stderr)

	return true
}

// WrapWithStderrViewPrompt prints `err` of the failed command
// and offers to view its captured stderr output.
// Returns <nil> when user declined, meaning that error was already reported.
func WrapWithStderrViewPrompt(err error, stderr io.Reader, printErrPriorPrompt bool) error {
	var buffer bytes.Buffer

	if err == nil || stderr == nil {
		return err
	}

	if size, cpErr := io.Copy(&buffer, stderr); size == 0 || cpErr != nil {
		return err
	}

	if printErrPriorPrompt {
		fmt.Fprintln(os.Stderr, viper.GetString("cli.error_emoji"), "Error:", err)
	}

	if PromptStderrView(&buffer, os.Stderr) {
		return err
	}

	return nil
}
