package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campusgig/campusgig/cmd/cli/commands"
)

func main() {
	// Load .env if present so CAMPUSGIG_* variables can live there
	_ = godotenv.Load()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
