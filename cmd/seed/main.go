package main

import (
	"context"
	"log"

	"postboard/internal/bootstrap"
	"postboard/internal/config"
	"postboard/internal/dto"
	"postboard/internal/pkg/logger"
	"postboard/internal/service"

	"github.com/fatih/color"
)

// Seeds a handful of demo posts into the configured store. Safe to run on
// an empty store only; it does not deduplicate.
func main() {
	cfg := config.Load()

	store, err := bootstrap.NewBlobStore(cfg)
	if err != nil {
		log.Fatalf("Error: failed to open store: %v", err)
	}

	sysLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)
	postService, err := service.NewPostService(store, sysLogger, nil)
	if err != nil {
		log.Fatalf("Error: failed to restore posts: %v", err)
	}

	posts := []dto.CreatePostRequest{
		{
			Title:   "Welcome to Postboard",
			Content: "This is your board.\nCreate, edit and tag short posts; everything is saved locally.",
			Tags:    []string{"meta"},
		},
		{
			Title:   "Reading list",
			Content: "The Go Programming Language\nDesigning Data-Intensive Applications",
			Tags:    []string{"books", "todo"},
		},
		{
			Title:   "Groceries",
			Content: "Coffee\nOatmeal\nApples",
			Tags:    []string{"todo"},
		},
	}

	green := color.New(color.FgGreen)
	for _, req := range posts {
		created, err := postService.Create(context.Background(), &req)
		if err != nil {
			color.Red("Failed to seed %q: %v", req.Title, err)
			continue
		}
		green.Printf("Seeded post %d: %s\n", created.Id, created.Title)
	}

	color.Cyan("Done.")
}
