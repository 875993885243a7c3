// Command decisionctl evaluates profiles and runs the calculators offline
// against a local artifact manifest.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bibbank/decisioning/internal/domain/model"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitInput   = 1 // rejected input: validation or encoding
	ExitError   = 2 // configuration, artifact or runtime error
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrEncoding) {
			os.Exit(ExitInput)
		}
		os.Exit(ExitError)
	}
}
