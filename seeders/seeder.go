// Пакет seeders заполняет пустую базу стартовыми данными.
// Все сидеры идемпотентны: повторный запуск ничего не дублирует.
package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Run(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("Запуск сидеров...")

	steps := []func(context.Context, *pgxpool.Pool) error{
		seedAdminUser,
		seedTeams,
		seedUsers,
		seedEquipments,
		seedRequests,
	}

	for _, step := range steps {
		if err := step(ctx, db); err != nil {
			return err
		}
	}

	log.Println("Сидеры выполнены успешно.")
	return nil
}
