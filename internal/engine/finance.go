package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// FinanceKind distinguishes income from expense lines.
type FinanceKind string

const (
	FinanceIncome  FinanceKind = "income"
	FinanceExpense FinanceKind = "expense"
)

func (k FinanceKind) IsValid() bool {
	return k == FinanceIncome || k == FinanceExpense
}

func ParseFinanceKind(input string) (FinanceKind, error) {
	k := FinanceKind(strings.TrimSpace(strings.ToLower(input)))
	switch k {
	case FinanceIncome, FinanceExpense:
		return k, nil
	case "in":
		return FinanceIncome, nil
	case "out":
		return FinanceExpense, nil
	default:
		return "", ValidationError{Field: "finance kind", Reason: "must be income or expense"}
	}
}

type AddFinanceInput struct {
	Date        time.Time
	Kind        FinanceKind
	AmountCents int64
	Category    string
	Note        *string
}

func (s *Service) AddFinanceEntry(ctx context.Context, in AddFinanceInput) (*storage.FinanceEntry, error) {
	if !in.Kind.IsValid() {
		return nil, ValidationError{Field: "finance kind", Reason: "must be income or expense"}
	}
	if in.AmountCents <= 0 {
		return nil, ValidationError{Field: "amount", Reason: "must be positive"}
	}

	entry := storage.FinanceEntry{
		ID:          uuid.NewString(),
		Date:        DateOf(in.Date),
		Kind:        string(in.Kind),
		AmountCents: in.AmountCents,
		Category:    strings.TrimSpace(in.Category),
		Note:        in.Note,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.finance.Insert(ctx, entry); err != nil {
		return nil, err
	}
	s.log.Debug("finance entry added",
		zap.String("id", entry.ID),
		zap.String("kind", entry.Kind),
		zap.Int64("amount_cents", entry.AmountCents))
	return &entry, nil
}

func (s *Service) ListFinance(ctx context.Context, start, end time.Time) ([]storage.FinanceEntry, error) {
	return s.finance.ListByRange(ctx, DateOf(start), DateOf(end))
}

// FinanceTotals returns income, expense, and net over [start, end], in cents.
func (s *Service) FinanceTotals(ctx context.Context, start, end time.Time) (income, expense, net int64, err error) {
	income, expense, err = s.finance.Totals(ctx, DateOf(start), DateOf(end))
	if err != nil {
		return 0, 0, 0, err
	}
	return income, expense, income - expense, nil
}
