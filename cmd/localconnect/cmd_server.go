package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/routes"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/internal/server"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/router"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/workerpool"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/ws"
)

// localconnect serve — start the backend.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// localconnect route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Stores: store.NewManager(config.SessionSlot(), storage.NewMemory()),
			Pool:   workerpool.New(1),
			Hub:    ws.NewHub(),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		// Sort by path then method.
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
