package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

// newDiscardLogger keeps test output quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Order: &config.OrderConfig{
			AddPrecedence:    "incoming",
			UpdatePrecedence: "stored",
			PatchableFields:  []string{"status", "products"},
		},
	}
}
