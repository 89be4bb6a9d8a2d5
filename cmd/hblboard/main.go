package main

import (
	"log"

	"github.com/hblboard/hblboard/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ hblboard failed to start: %v", err)
	}
}
