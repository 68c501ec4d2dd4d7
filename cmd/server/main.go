// cmd/server is the bare server entry point for container images that
// only ever run the backend. The localconnect CLI wraps the same boot
// path plus the database and chart tooling.
package main

import (
	"log"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/internal/server"

	_ "github.com/siyabongabrilliantmabuza/local-connect-sa/database/migrations"
	_ "github.com/siyabongabrilliantmabuza/local-connect-sa/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
