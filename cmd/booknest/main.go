package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/cli"
)

// @title Book Nest view shell
// @version 1.0
// @description Role-gated view models over the local library session.
// @BasePath /
func main() {
	// .env is optional here; flags and the environment still apply.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
