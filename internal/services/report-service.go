package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/types"
)

type ReportServiceInterface interface {
	GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error)
	ExportRequests(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error)
}

type ReportService struct {
	reportRepo  repositories.ReportRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, requestRepo: requestRepo, logger: logger}
}

func (s *ReportService) GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error) {
	return s.reportRepo.GetSummary(ctx)
}

var exportHeaders = []string{
	"ID", "Тип", "Тема", "Оборудование", "Серийный номер", "Команда",
	"Исполнитель", "Приоритет", "Статус", "Плановая дата",
	"Длительность (ч)", "Дата завершения", "Создана",
}

// ExportRequests выгружает заявки в xlsx с учётом переданных фильтров.
func (s *ReportService) ExportRequests(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error) {
	// Выгрузка всегда полная, пагинация списка здесь не действует.
	filter.WithPagination = false

	requests, _, err := s.requestRepo.GetRequests(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Не удалось закрыть xlsx-файл", zap.Error(err))
		}
	}()

	const sheet = "Заявки"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i, req := range requests {
		row := exportRow(req)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func exportRow(req entities.RequestWithRelations) []interface{} {
	var equipmentName, serialNumber, teamName, assignedName string
	if req.Equipment != nil {
		equipmentName = req.Equipment.Name
		serialNumber = req.Equipment.SerialNumber
	}
	if req.Team != nil {
		teamName = req.Team.Name
	}
	if req.AssignedUser != nil {
		assignedName = req.AssignedUser.Name
	}

	var scheduled, completed, duration interface{}
	if req.ScheduledDate.Valid {
		scheduled = req.ScheduledDate.Time.Format("2006-01-02")
	}
	if req.CompletedDate.Valid {
		completed = req.CompletedDate.Time.Format("2006-01-02 15:04")
	}
	if req.Duration.Valid {
		duration = req.Duration.Float64
	}

	return []interface{}{
		req.ID, req.Type, req.Subject, equipmentName, serialNumber, teamName,
		assignedName, req.Priority, req.Status, scheduled,
		duration, completed, req.CreatedAt.Format("2006-01-02 15:04"),
	}
}
