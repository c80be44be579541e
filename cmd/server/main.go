package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mercantile/cmd/server/api"
	"mercantile/pkg/env"
	"mercantile/pkg/geocode"
	"mercantile/pkg/logger"
	"mercantile/pkg/shipping"
	"mercantile/pkg/square"
	"mercantile/pkg/store"
	"mercantile/pkg/whttp"
)

const ServiceName = "server"

// Approximate coordinate used when no geocoding credential is configured.
const fallbackLat, fallbackLng = 35.0, -97.0

func init() {
	logger.InitGlobalSlog(ServiceName)
}

func main() {
	_ = godotenv.Load()

	db := store.New(
		env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		env.GetString("MONGO_DB", "mercantile"),
	)

	origin := shipping.Origin{
		Latitude:  env.GetFloat("STORE_LAT", 35.8456),
		Longitude: env.GetFloat("STORE_LNG", -103.3181),
		Address:   env.GetString("STORE_ADDRESS", "1200 Route 66, Logan, NM 88426"),
	}

	policy := shipping.Policy{
		BaseRate:              env.GetFloat("SHIPPING_BASE_RATE", 5.00),
		CostPerMile:           env.GetFloat("SHIPPING_COST_PER_MILE", 0.50),
		MaxRate:               env.GetFloat("SHIPPING_MAX_RATE", 50.00),
		FreeShippingThreshold: env.GetFloat("FREE_SHIPPING_THRESHOLD", 150.00),
	}

	estimator := shipping.NewEstimator(newGeocoder(), origin, policy)

	payments := square.NewClient(
		whttp.NewLoggingClient(),
		env.GetString("SQUARE_ACCESS_TOKEN", ""),
		env.GetString("SQUARE_LOCATION_ID", ""),
		env.GetString("SQUARE_ENVIRONMENT", "sandbox"),
	)

	r := api.NewRouter(api.Deps{
		Products:            store.NewProductsRepository(db),
		Orders:              store.NewOrdersRepository(db),
		Settings:            store.NewSettingsRepository(db),
		Estimator:           estimator,
		Payments:            payments,
		DB:                  db,
		SquareApplicationID: env.GetString("SQUARE_APPLICATION_ID", ""),
		SquareLocationID:    env.GetString("SQUARE_LOCATION_ID", ""),
		WebDir:              env.GetString("WEB_DIR", "web"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store connects after listen on purpose: a down database keeps
	// store-backed endpoints answering 503 but never blocks startup.
	go func() {
		if err := db.Connect(context.Background()); err != nil {
			slog.Error("database connection failed, store-backed endpoints will answer 503", "error", err.Error())
			return
		}

		slog.Info("connected to the database successfully")
	}()

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			slog.Error("error closing db connection", "error", err.Error())
		}
	}()

	port := env.GetString("PORT", "8080")

	srv := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: r}
	go func() {
		slog.Info(fmt.Sprintf("serving HTTP on :%s", port))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server shutdown abruptly", "error", err.Error())
		} else {
			slog.Info("server shutdown gracefully")
		}

		stop()
	}()

	// Listen for OS interrupt
	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 5*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err.Error())
	}

	slog.Info("server exited")
}

func newGeocoder() geocode.Client {
	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		return geocode.NewGoogleClient(apiKey)
	}

	return geocode.NewStaticClient(fallbackLat, fallbackLng)
}
