package main

import (
	"log"

	"github.com/harishnemade100/fitness-studio-booking/internal/app"
	"github.com/harishnemade100/fitness-studio-booking/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
