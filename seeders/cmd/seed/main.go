package main

import (
	"context"
	"log"

	"maintenance-system/migrations"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"
)

func main() {
	cfg := config.New()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	if err := seeders.Run(context.Background(), db); err != nil {
		log.Fatalf("Ошибка выполнения сидеров: %v", err)
	}
}
