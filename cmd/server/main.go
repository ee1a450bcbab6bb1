package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"triviaBackend/internal/config"
	"triviaBackend/internal/db"
	"triviaBackend/internal/httpapi"
	"triviaBackend/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	d, err := db.Open(cfg.Database.Path, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	srv := &httpapi.Server{
		Users:        repository.NewUserRepository(d),
		Sessions:     repository.NewSessionRepository(d),
		Questions:    repository.NewQuestionRepository(d),
		Tags:         repository.NewTagRepository(d),
		QuestionTags: repository.NewQuestionTagRepository(d),
		Statistics:   repository.NewStatisticsRepository(d),
	}

	shutdown, err := httpapi.StartHTTP(cfg, srv)
	if err != nil {
		log.Fatalf("start http: %v", err)
	}
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
