package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/marchelxyz/calendar/internal/profile"
	"github.com/marchelxyz/calendar/plugin/ai"
	"github.com/marchelxyz/calendar/plugin/ai/event"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional, environment variables win.
	_ = godotenv.Load()

	log.Println("loading profile...")
	p := &profile.Profile{Mode: "dev"}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		log.Fatalf("invalid profile: %v", err)
	}

	log.Println("creating LLM service...")
	llm, err := ai.NewLLMService(ai.NewLLMConfigFromProfile(p))
	if err != nil {
		log.Fatalf("failed to create LLM service: %v", err)
	}

	log.Println("creating extractor...")
	extractor, err := event.NewExtractor(llm, p.Timezone)
	if err != nil {
		log.Fatalf("failed to create extractor: %v", err)
	}

	ctx := context.Background()

	inputs := []string{
		"Поставь встречу с клиентом на завтра в 15:00",
		"Созвон с командой послезавтра в 10 утра на час",
		"Напомни мне про презентацию через 2 дня в 14:30",
		"Удали встречу с клиентом",
	}

	fmt.Println("\n========================================")
	fmt.Println("  event extractor test program")
	fmt.Println("========================================")

	for i, input := range inputs {
		fmt.Printf("\n[%d/%d] input: %s\n", i+1, len(inputs), input)

		start := time.Now()
		result, err := extractor.ExtractEventInfo(ctx, input)
		duration := time.Since(start)

		if err != nil {
			log.Printf("extraction failed: %v\n", err)
			continue
		}

		fmt.Printf("action:   %s\n", result.Action)
		fmt.Printf("summary:  %s\n", result.Summary)
		fmt.Printf("start:    %s\n", result.StartDatetime.Format(time.RFC3339))
		fmt.Printf("duration: %d min\n", result.DurationMinutes)
		if result.Description != nil {
			fmt.Printf("description: %s\n", *result.Description)
		}
		fmt.Printf("took: %v\n", duration)
		fmt.Println("------------------------------------------------")
	}
}
