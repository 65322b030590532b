// Command siscan-server provides a REST API for breakpoint scanning.
//
// Usage:
//
//	siscan-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/recseq/siscan-go/api/handlers"
	"github.com/recseq/siscan-go/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/scan", handlers.ScanHandler)
		r.Post("/distance", handlers.DistanceHandler)
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>SiScan API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>SiScan API</h1>
    <p>A REST API for sister-scanning recombination detection.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/scan</code>
        <p>Scan an alignment for recombination breakpoints.</p>
        <pre>{"sequences": [{"name": "a", "bases": "ACGT..."}, ...], "options": {"win_size": "200"}}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/distance</code>
        <p>Compute pairwise p and Jukes-Cantor distances.</p>
        <pre>{"sequence1": "ACGTACGT", "sequence2": "ACGAACGT"}</pre>
    </div>

    <p>For more information, see the <a href="https://github.com/recseq/siscan-go">documentation</a>.</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logrus.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logrus.Fatalf("Could not gracefully shutdown: %v", err)
		}
		close(done)
	}()

	logrus.Infof("SiScan API server starting on http://%s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("Could not listen on %s: %v", addr, err)
	}

	<-done
	logrus.Info("Server stopped")
}
