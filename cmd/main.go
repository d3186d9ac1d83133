package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title NjiaSafe Drive API
// @version 1.0
// @description Road safety backend: incidents, weather, V2V messaging, SOS, navigation and community.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "njiasafe",
		Short:         "NjiaSafe Drive road safety API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}
