package main

import (
	"fmt"
	"os"

	"github.com/davetashner/promptgate/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		ece := classify(err)
		if ece.msg != "" {
			fmt.Fprintln(os.Stderr, redact.String(ece.msg))
		}
		os.Exit(ece.code)
	}
}
