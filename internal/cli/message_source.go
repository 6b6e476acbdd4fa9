package cli

import (
	"fmt"
	"os"

	"commitmsg.dev/commitmsg/internal/utils"
)

// resolveMessage picks the commit message source: the positional argument,
// then --file, then piped stdin.
func resolveMessage(args []string, file string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil
	}

	message, err := utils.ReadFromStdin()
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	if message == "" {
		return "", fmt.Errorf("no commit message given: pass it as an argument, with --file, or on stdin")
	}
	return message, nil
}
