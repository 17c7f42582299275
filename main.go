package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/cadefarragut/PortfolioV2/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
