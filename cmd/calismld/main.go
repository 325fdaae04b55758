package main

import (
	"context"
	"log"

	"github.com/smartcalis/ml-service/pkg/api"
	"github.com/smartcalis/ml-service/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := api.Serve(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}
