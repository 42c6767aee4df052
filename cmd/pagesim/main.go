// Command pagesim replays visitor input against an interactive landing page
// and reports the state of its components.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		code = 1
	}

	atexit.Exit(code)
}
