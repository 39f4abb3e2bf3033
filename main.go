package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/cmd"
)

func main() {
	// Optional .env for local development; real environments set variables
	// directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
