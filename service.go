package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"learntube/curator"
	"learntube/handler"
	"learntube/storage"
)

func main() {

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	postgres, err := storage.NewPostgres(storage.PostgresInfo{
		Host:     getParam("POSTGRES_HOST", "localhost"),
		Port:     getParam("POSTGRES_PORT", "5432"),
		User:     getParam("POSTGRES_USER", "learntube"),
		Password: getParam("POSTGRES_PASSWORD", "learntube"),
		Database: getParam("POSTGRES_DB", "learntube"),
	})
	if err != nil {
		logger.Error("unable to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	playlistRepo := storage.NewPostgresPlaylistRepository(postgres)
	historyRepo := storage.NewPostgresHistoryRepository(postgres)
	searchRepo := storage.NewPostgresSearchRepository(postgres)
	interviewRepo := storage.NewPostgresInterviewRepository(postgres)

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(getParam("YOUTUBE_API_KEY", "")))
	if err != nil {
		logger.Error("unable to create youtube service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	yt := curator.NewYoutube(ytClient)

	openAIClient := curator.NewOpenAI(getParam("OPENAI_API_KEY", ""))

	cur := curator.NewCurator(yt, openAIClient, logger)

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", slog.String("error", err.Error()))
		os.Exit(1)
	}

	apis := handler.APIs{
		"search":    handler.NewSearchAPI(cur, playlistRepo, searchRepo, logger),
		"playlist":  handler.NewPlaylistAPI(playlistRepo, logger),
		"history":   handler.NewHistoryAPI(historyRepo, logger),
		"stats":     handler.NewStatsAPI(historyRepo, playlistRepo, logger),
		"summary":   handler.NewSummaryAPI(openAIClient, logger),
		"interview": handler.NewInterviewAPI(openAIClient, interviewRepo, logger),
	}
	go http.ListenAndServe(fmt.Sprintf(":%d", port), handler.NewServer(apis, logger))
	logger.Info("http server started")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
