// Minimal example for jejak demonstrating the explicit operations plus an
// implicit-customer client with a static provider, zap debug logging and
// Prometheus metrics. Credentials come from the environment (optionally a
// .env file); nothing is sent unless CUSTOMERIO_SITE_ID is set.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ambiyansyah-risyal/jejak"
)

func main() {
	_ = godotenv.Load()

	siteID := os.Getenv("CUSTOMERIO_SITE_ID")
	apiKey := os.Getenv("CUSTOMERIO_API_KEY")
	if siteID == "" || apiKey == "" {
		log.Fatal("set CUSTOMERIO_SITE_ID and CUSTOMERIO_API_KEY (env or .env)")
	}

	ctx := context.Background()

	// --- Basic client (explicit customer IDs) ---
	basic := jejak.New(siteID, apiKey)
	if !basic.IsValid() {
		log.Fatalf("invalid client config: %v", basic.ValidationError())
	}

	if err := basic.Identify(ctx, "cust_1", map[string]interface{}{
		"email": "user@example.com",
		"plan":  "pro",
	}); err != nil {
		log.Fatalf("identify failed: %v", err)
	}

	yesterday := time.Now().Add(-24 * time.Hour)
	if err := basic.Track(ctx, "cust_1", "signed_up", jejak.TrackOptions{
		Data:      map[string]interface{}{"plan": "pro", "source": "example"},
		Timestamp: &yesterday,
	}); err != nil {
		log.Fatalf("track failed: %v", err)
	}

	// --- Implicit-customer client: provider + zap debug logs + metrics ---
	zlog, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	current := jejak.New(siteID, apiKey,
		jejak.WithCustomerProvider(&jejak.StaticCustomerProvider{
			ID:      "cust_1",
			Details: map[string]interface{}{"plan": "pro"},
		}),
		jejak.WithLogger(jejak.NewZapLogger(zlog)),
		jejak.WithDebug(),
		jejak.WithMetrics(),
	)
	if !current.IsValid() {
		log.Fatalf("invalid client config: %v", current.ValidationError())
	}

	if err := current.IdentifyCurrent(ctx); err != nil {
		log.Fatalf("identify current failed: %v", err)
	}
	if err := current.TrackCurrent(ctx, "page_viewed", jejak.TrackOptions{
		Data: map[string]interface{}{"path": "/pricing"},
	}); err != nil {
		log.Fatalf("track current failed: %v", err)
	}

	if err := basic.Delete(ctx, "cust_1"); err != nil {
		log.Fatalf("delete failed: %v", err)
	}

	log.Println("done:", jejak.GetVersion())
}
