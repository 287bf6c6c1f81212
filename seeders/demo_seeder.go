package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/pkg/utils"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание команд...")

	for _, t := range teamsData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM teams WHERE name = $1", t.Name).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке команды %q: %w", t.Name, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO teams (name, description, icon, specialization) VALUES ($1, $2, $3, $4)`,
			t.Name, t.Description, t.Icon, t.Specialization)
		if err != nil {
			return fmt.Errorf("не удалось создать команду %q: %w", t.Name, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание демонстрационных пользователей...")

	for _, u := range usersData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", u.Email).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке пользователя %q: %w", u.Email, err)
		}

		hash, err := utils.HashPassword("password123")
		if err != nil {
			return err
		}

		err = db.QueryRow(ctx,
			`INSERT INTO users (name, email, password, phone, role) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			u.Name, u.Email, hash, u.Phone, u.Role).Scan(&id)
		if err != nil {
			return fmt.Errorf("не удалось создать пользователя %q: %w", u.Email, err)
		}

		if u.Team != "" {
			_, err = db.Exec(ctx,
				`INSERT INTO team_members (team_id, user_id)
				 SELECT t.id, $1 FROM teams t WHERE t.name = $2
				 ON CONFLICT ON CONSTRAINT team_members_pkey DO NOTHING`,
				id, u.Team)
			if err != nil {
				return fmt.Errorf("не удалось добавить %q в команду %q: %w", u.Email, u.Team, err)
			}
		}
	}
	return nil
}

func seedRequests(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание заявок...")

	for _, r := range requestsData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM requests WHERE subject = $1", r.Subject).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке заявки %q: %w", r.Subject, err)
		}

		var scheduled interface{}
		if r.ScheduledDate != "" {
			scheduled = r.ScheduledDate
		}

		_, err = db.Exec(ctx,
			`INSERT INTO requests (type, subject, description, equipment_id, team_id, priority, scheduled_date, created_by)
			 VALUES ($1, $2, $3,
				(SELECT id FROM equipments WHERE serial_number = $4),
				(SELECT id FROM teams WHERE name = $5),
				$6, $7,
				(SELECT id FROM users WHERE email = $8))`,
			r.Type, r.Subject, r.Description, r.Serial, r.Team, r.Priority, scheduled, r.Creator)
		if err != nil {
			return fmt.Errorf("не удалось создать заявку %q: %w", r.Subject, err)
		}
	}
	return nil
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание оборудования...")

	for _, e := range equipmentsData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipments WHERE serial_number = $1", e.SerialNumber).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке оборудования %q: %w", e.SerialNumber, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipments (name, serial_number, category, department, location, team_id)
			 VALUES ($1, $2, $3, $4, $5, (SELECT id FROM teams WHERE name = $6))`,
			e.Name, e.SerialNumber, e.Category, e.Department, e.Location, e.Team)
		if err != nil {
			return fmt.Errorf("не удалось создать оборудование %q: %w", e.SerialNumber, err)
		}
	}
	return nil
}
