package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
	"github.com/telquery/churnform/pkg/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		apiFlag    = flag.String("api", "", "prediction endpoint base URL (defaults to $CHURN_API_URL or "+predict.DefaultBaseURL+")")
		fieldsFlag = flag.String("fields", "", "YAML catalog overrides file")
		checkFlag  = flag.Bool("check", false, "probe the prediction service's health endpoint and exit")
		outputFlag = flag.String("output", "text", "result output format: text or json")
	)
	flag.Parse()

	var clientOptions []predict.Option
	if *apiFlag != "" {
		clientOptions = append(clientOptions, predict.WithBaseURL(*apiFlag))
	}
	client := predict.New(clientOptions...)

	ctx := context.Background()

	if *checkFlag {
		if err := client.Health(ctx); err != nil {
			log.Fatalf("health: %v", err)
		}
		fmt.Printf("%s is healthy\n", client.BaseURL())
		return
	}

	catalog := schema.Default()
	if path := strings.TrimSpace(*fieldsFlag); path != "" {
		file, err := os.Open(path)
		if err != nil {
			log.Fatalf("fields: %v", err)
		}
		overridden, err := schema.ApplyOverrides(catalog, file)
		file.Close()
		if err != nil {
			log.Fatalf("fields: %v", err)
		}
		catalog = overridden
	}

	session := tui.NewSession(catalog, client)
	result, err := session.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("session: %v", err)
	}

	if *outputFlag == "json" {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("encode result: %v", err)
		}
		fmt.Println(string(encoded))
	}

	if result.Status == predict.StatusError {
		os.Exit(1)
	}
}
