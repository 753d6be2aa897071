package main

import (
	"context"
	"log"

	"postboard/internal/bootstrap"
	"postboard/internal/config"
	"postboard/internal/server"
	"postboard/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap application: %v", err)
	}
	defer container.Logger.Sync()

	// 3. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Unable to start event consumer: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
