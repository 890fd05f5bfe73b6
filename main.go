package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mosamy007/TrendyRepo/cmd"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := cmd.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
