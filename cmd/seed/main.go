package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/swashington/snas/internal/seeder"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL       = flag.String("url", "http://localhost:8080", "Base URL of the service")
		clearExisting = flag.Bool("clear-existing", false, "Delete stored records before importing")
		validateOnly  = flag.Bool("validate-only", false, "Validate the dataset without writing")
		timeout       = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seeder.Config{
		BaseURL:       *baseURL,
		ClearExisting: *clearExisting,
		ValidateOnly:  *validateOnly,
		Timeout:       *timeout,
		Verbose:       *verbose,
	}

	if err := seeder.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
