package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/telquery/churnform/internal/webapp"
	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

func main() {
	// Optional .env; absence is fine.
	_ = godotenv.Load()

	var (
		addrFlag      = flag.String("addr", ":8383", "HTTP listen address")
		apiFlag       = flag.String("api", "", "prediction endpoint base URL (defaults to $CHURN_API_URL or "+predict.DefaultBaseURL+")")
		fieldsFlag    = flag.String("fields", "", "YAML catalog overrides file")
		schemaFlag    = flag.String("schema", "", "OpenAPI document (file path or URL) to derive the field catalog from")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "shutdown grace period")
	)
	flag.Parse()

	catalog, err := buildCatalog(context.Background(), *schemaFlag, *fieldsFlag)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	var clientOptions []predict.Option
	if *apiFlag != "" {
		clientOptions = append(clientOptions, predict.WithBaseURL(*apiFlag))
	}
	client := predict.New(clientOptions...)

	server := webapp.New(catalog, client)

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: server.Handler(),
	}

	log.Printf("listening on %s (prediction endpoint %s)", *addrFlag, client.BaseURL())

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func buildCatalog(ctx context.Context, schemaSource, fieldsPath string) (schema.Catalog, error) {
	catalog := schema.Default()

	if source := strings.TrimSpace(schemaSource); source != "" {
		raw, err := readSource(source)
		if err != nil {
			return nil, err
		}
		catalog, err = schema.FromOpenAPI(ctx, raw)
		if err != nil {
			return nil, err
		}
	}

	if path := strings.TrimSpace(fieldsPath); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return schema.ApplyOverrides(catalog, file)
	}

	return catalog, nil
}

func readSource(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: %s", source, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}
