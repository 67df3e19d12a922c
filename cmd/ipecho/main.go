package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/ipecho/cmd/ipecho/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
