package main

import (
	"log"

	"github.com/nyankohost/dctw/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ dctw failed to start: %v", err)
	}
}
