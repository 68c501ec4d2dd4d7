package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and
	// register themselves.
	_ "github.com/siyabongabrilliantmabuza/local-connect-sa/database/migrations"
	_ "github.com/siyabongabrilliantmabuza/local-connect-sa/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "localconnect",
	Short: "LocalConnect SA — marketplace backend CLI",
	Long:  "LocalConnect SA connects South African businesses with local suppliers. Use this CLI to run and manage the backend.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(chartPreviewCmd)
}
