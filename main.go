package main

import (
	"log"

	"github.com/fleetsimhq/fleetsim/cmd"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	cmd.Execute()
}
