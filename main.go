package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/secmon-lab/trendchat/pkg/cli"
)

func main() {
	// .env is optional, ignore load failure
	_ = godotenv.Load()

	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
