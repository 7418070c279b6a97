package engine

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chinmayanaik123/lifeOS/internal/logging"
	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// Service is the application core: task resolution, streaks, calendar
// aggregation, and the CRUD operations behind them. It holds no state of its
// own between calls; everything durable lives in the store.
type Service struct {
	db       *sql.DB
	tasks    *storage.TaskRepo
	records  *storage.RecordRepo
	wellness *storage.WellnessRepo
	finance  *storage.FinanceRepo
	settings *storage.SettingsRepo
	log      *zap.Logger
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		tasks:    storage.NewTaskRepo(db),
		records:  storage.NewRecordRepo(db),
		wellness: storage.NewWellnessRepo(db),
		finance:  storage.NewFinanceRepo(db),
		settings: storage.NewSettingsRepo(db),
		log:      logging.Named("engine"),
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo         { return s.tasks }
func (s *Service) RecordRepo() *storage.RecordRepo     { return s.records }
func (s *Service) WellnessRepo() *storage.WellnessRepo { return s.wellness }
func (s *Service) FinanceRepo() *storage.FinanceRepo   { return s.finance }
func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }
