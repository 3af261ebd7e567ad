package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const reportListKey = "reports"

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	CreateOrUpdate(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context) ([]*entity.Report, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbReport struct {
	client *redis.Client
}

func NewReportRepository(client *redis.Client) ReportRepository {
	return &dbReport{
		client: client,
	}
}

func reportKey(id string) string {
	return "report:" + id
}

func (that *dbReport) CreateOrUpdate(ctx context.Context, report *entity.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}

	// the id is listed once, even when the report is updated
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, reportKey(report.ID), reportJSON, 0)
		pipe.LRem(ctx, reportListKey, 0, report.ID)
		pipe.RPush(ctx, reportListKey, report.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set report: %w", err)
	}

	return nil
}

func (that *dbReport) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	response, err := that.client.Get(ctx, reportKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Report{}, ErrReportNotFound
	}

	if err != nil {
		return &entity.Report{}, fmt.Errorf("failed to get report by id: %w", err)
	}

	var existingReport entity.Report
	if err = json.Unmarshal([]byte(response), &existingReport); err != nil {
		return &entity.Report{}, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &existingReport, nil
}

// List returns all stored reports in the order they were first saved.
func (that *dbReport) List(ctx context.Context) ([]*entity.Report, error) {
	ids, err := that.client.LRange(ctx, reportListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*entity.Report, 0, len(ids))
	for _, id := range ids {
		report, err := that.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get listed report %s: %w", id, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (that *dbReport) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, reportKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete report by ID: %w", err)
	}

	if deleted == 0 {
		return ErrReportNotFound
	}

	if err = that.client.LRem(ctx, reportListKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to unlist report: %w", err)
	}

	return nil
}
