package lifecycle

import (
	"time"

	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

// Пакет lifecycle владеет машиной состояний заявки и побочными эффектами
// переходов. Он ничего не знает ни о транспорте, ни о хранилище: сервис
// отдаёт ему текущее состояние и желаемый переход, а обратно получает
// готовый набор изменений, который остаётся атомарно записать.

// transitions — граф допустимых переходов.
// new → in_progress → repaired, new|in_progress → scrap.
// Из repaired и scrap переходов нет.
var transitions = map[string][]string{
	constants.RequestStatusNew: {
		constants.RequestStatusInProgress,
		constants.RequestStatusScrap,
	},
	constants.RequestStatusInProgress: {
		constants.RequestStatusRepaired,
		constants.RequestStatusScrap,
	},
	constants.RequestStatusRepaired: {},
	constants.RequestStatusScrap:    {},
}

// CanTransition сообщает, достижим ли целевой статус из текущего.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Change — вычисленный результат перехода: что именно нужно записать.
type Change struct {
	Status string

	// Заполняются только при переходе в repaired.
	Duration      *float64
	CompletedDate *time.Time

	// Каскад: при переходе в scrap оборудование заявки становится scrapped.
	ScrapEquipment bool
}

// ComputeChange проверяет переход currentStatus → targetStatus и вычисляет
// побочные эффекты. duration обязателен и положителен только для repaired,
// для остальных переходов игнорируется.
func ComputeChange(currentStatus, targetStatus string, duration *float64, now time.Time) (*Change, error) {
	if !isKnownStatus(targetStatus) {
		return nil, apperrors.NewInvalidInputError("неизвестный статус заявки: %q", targetStatus)
	}

	if !CanTransition(currentStatus, targetStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	change := &Change{Status: targetStatus}

	switch targetStatus {
	case constants.RequestStatusRepaired:
		if duration == nil || *duration <= 0 {
			return nil, apperrors.NewInvalidInputError("для статуса 'repaired' требуется положительная длительность работ")
		}
		d := *duration
		completedAt := now
		change.Duration = &d
		change.CompletedDate = &completedAt
	case constants.RequestStatusScrap:
		change.ScrapEquipment = true
	}

	return change, nil
}

func isKnownStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}
