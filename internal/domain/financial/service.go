package financial

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a manual ledger entry. Mirrored collection entries never go
// through here; they are written by the collections ledger.
func (s *Service) Create(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	exists, err := s.repo.EventExists(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if input.Type != TypeIncome && input.Type != TypeExpense {
		return nil, ErrInvalidType
	}

	if input.CategoryID != nil {
		ok, err := s.repo.CategoryExists(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCategoryNotFound
		}
	}

	status := StatusPlanned
	if input.Status == StatusSettled {
		status = StatusSettled
	}

	paidAt := input.PaidAt
	if paidAt == nil {
		now := time.Now().UTC()
		paidAt = &now
	}

	created := Transaction{
		EventID:     input.EventID,
		Type:        input.Type,
		Description: description,
		Amount:      input.Amount,
		Status:      status,
		PaidAt:      paidAt,
		CategoryID:  input.CategoryID,
		SourceType:  SourceManual,
		SourceID:    nil,
	}

	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) List(ctx context.Context, eventID uint) ([]TransactionWithCategory, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// Cashflow buckets settled transactions by the UTC date of paidAt, summing
// income and expense separately. The underlying query is paidAt-ascending, so
// accumulating in input order yields date-ordered points.
func (s *Service) Cashflow(ctx context.Context, eventID uint) ([]CashflowPoint, error) {
	settled, err := s.repo.ListSettledByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	points := make([]CashflowPoint, 0)
	index := make(map[string]int)

	for _, transaction := range settled {
		if transaction.PaidAt == nil {
			continue
		}
		date := transaction.PaidAt.UTC().Format("2006-01-02")

		i, ok := index[date]
		if !ok {
			points = append(points, CashflowPoint{Date: date})
			i = len(points) - 1
			index[date] = i
		}

		if transaction.Type == TypeIncome {
			points[i].Income += transaction.Amount
		} else {
			points[i].Expense += transaction.Amount
		}
	}

	return points, nil
}
