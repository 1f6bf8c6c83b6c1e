package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/campaignai/campaign-planner-go/internal/config"
)

// ErrUsageDisabled 는 사용량 DB가 비활성일 때 반환된다.
var ErrUsageDisabled = errors.New("usage db disabled")

// Repository 는 usage DB 접근을 담당한다.
// 연결은 첫 사용 시점에 지연 생성한다.
type Repository struct {
	cfg    *config.Config
	logger *slog.Logger
	mu     sync.Mutex
	db     *gorm.DB
	sqlDB  *sql.DB
}

// NewRepository 는 usage 저장소를 생성한다.
func NewRepository(cfg *config.Config, logger *slog.Logger) *Repository {
	return &Repository{
		cfg:    cfg,
		logger: logger,
	}
}

// IsEnabled 는 사용량 DB 활성화 여부를 반환한다.
func (r *Repository) IsEnabled() bool {
	return r != nil && r.cfg != nil && r.cfg.Database.UsageEnabled
}

// RecordUsage 는 지정한 날짜(또는 오늘)의 토큰 사용량을 누적 저장한다.
func (r *Repository) RecordUsage(
	ctx context.Context,
	inputTokens int64,
	outputTokens int64,
	requestCount int64,
	usageDate time.Time,
) error {
	if requestCount <= 0 && inputTokens <= 0 && outputTokens <= 0 {
		return nil
	}

	db, err := r.getDB(ctx)
	if err != nil {
		return err
	}

	targetDate := usageDate
	if targetDate.IsZero() {
		targetDate = todayDate()
	}

	row := TokenUsage{
		UsageDate:    targetDate,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		RequestCount: requestCount,
		Version:      0,
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "usage_date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"input_tokens":  gorm.Expr("token_usage.input_tokens + EXCLUDED.input_tokens"),
			"output_tokens": gorm.Expr("token_usage.output_tokens + EXCLUDED.output_tokens"),
			"request_count": gorm.Expr("token_usage.request_count + EXCLUDED.request_count"),
			"version":       gorm.Expr("token_usage.version + 1"),
		}),
	}).Create(&row).Error
}

// GetDailyUsage 는 특정 날짜(또는 오늘)의 사용량을 조회한다.
func (r *Repository) GetDailyUsage(ctx context.Context, usageDate time.Time) (*DailyUsage, error) {
	db, err := r.getDB(ctx)
	if err != nil {
		return nil, err
	}

	targetDate := usageDate
	if targetDate.IsZero() {
		targetDate = todayDate()
	}

	var row TokenUsage
	result := db.WithContext(ctx).Where("usage_date = ?", targetDate).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &DailyUsage{
		UsageDate:    row.UsageDate,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		RequestCount: row.RequestCount,
	}, nil
}

// GetRecentUsage 는 최근 N일 사용량을 조회한다.
func (r *Repository) GetRecentUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	db, err := r.getDB(ctx)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}

	since := todayDate().AddDate(0, 0, -(days - 1))
	var rows []TokenUsage
	result := db.WithContext(ctx).
		Where("usage_date >= ?", since).
		Order("usage_date DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	usages := make([]DailyUsage, 0, len(rows))
	for _, row := range rows {
		usages = append(usages, DailyUsage{
			UsageDate:    row.UsageDate,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			RequestCount: row.RequestCount,
		})
	}
	return usages, nil
}

// Close 는 DB 연결을 종료한다.
func (r *Repository) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sqlDB != nil {
		_ = r.sqlDB.Close()
		r.sqlDB = nil
		r.db = nil
	}
}

func (r *Repository) getDB(ctx context.Context) (*gorm.DB, error) {
	if !r.IsEnabled() {
		return nil, ErrUsageDisabled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db != nil {
		return r.db, nil
	}

	db, err := gorm.Open(postgres.Open(r.cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("usage db handle: %w", err)
	}

	sqlDB.SetMaxIdleConns(r.cfg.Database.MinPool)
	sqlDB.SetMaxOpenConns(r.cfg.Database.MaxPool)
	sqlDB.SetConnMaxLifetime(time.Duration(r.cfg.Database.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(r.cfg.Database.ConnMaxIdleTimeMinutes) * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping usage db: %w", err)
	}

	r.db = db
	r.sqlDB = sqlDB
	return r.db, nil
}

func todayDate() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
