package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if cfg.CLI.ResumePath == "" {
		log.Fatal("❌ RESUME_PATH is not set")
	}
	if cfg.CLI.TargetRole == "" {
		log.Fatal("❌ TARGET_ROLE is not set")
	}

	chatClient, err := services.NewOpenAIService(cfg.OpenAI)
	if err != nil {
		log.Fatalf("❌ Failed to initialize chat model client: %v", err)
	}

	pipeline := services.NewPipeline(
		services.NewExtractor(cfg),
		services.NewAnalyzerService(chatClient),
	)

	analysis, err := pipeline.AnalyzeResume(context.Background(), cfg.CLI.ResumePath, cfg.CLI.TargetRole)
	if err != nil {
		log.Printf("❌ Error: %v", err)
		os.Exit(1)
	}

	fmt.Println(services.FormatTextReport(analysis, cfg.CLI.TargetRole))
}
