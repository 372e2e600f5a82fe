package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	r := routes.SetupRouter(cfg, db)

	log.Infof("LifeLine API listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
