package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователя 'Администратор'...")

	const email = "admin@maintenance.local"

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования администратора: %w", err)
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (name, email, password, phone, role) VALUES ($1, $2, $3, $4, $5)`,
		"Администратор", email, hash, "+992000000000", constants.RoleAdmin)
	if err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	log.Println("    - Администратор создан (admin@maintenance.local / admin123).")
	return nil
}
