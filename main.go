// ABOUTME: Entry point for the cipher-strength CLI
// ABOUTME: Command-line tool for crack-time estimation and algorithm recommendation

package main

import (
	"fmt"
	"os"

	"github.com/tlawson/cipher-strength-analyzer/cmd"
	"github.com/tlawson/cipher-strength-analyzer/logger"
)

func main() {
	logger.Init()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
