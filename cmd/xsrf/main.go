package main

import (
	"os"

	"xsrftoken/cmd/xsrf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
