package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"art-historian/internal/model"
	"art-historian/internal/terminal"
)

func main() {
	server := flag.String("server", envOr("ART_HISTORIAN_URL", "http://localhost:5000"), "API base URL")
	lang := flag.String("lang", "en", "Reply language (en, hi, es, fr)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := terminal.NewSession(
		terminal.NewClient(*server, nil),
		terminal.NewDisplay(),
		os.Stdin,
		model.ParseLanguage(*lang),
	)

	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nGoodbye!")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
