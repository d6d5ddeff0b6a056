package financial

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeFinancialRepo struct {
	transactions map[uint]*Transaction
	events       map[uint]bool
	categories   map[uint]string
	nextID       uint
}

func newFakeFinancialRepo() *fakeFinancialRepo {
	return &fakeFinancialRepo{
		transactions: make(map[uint]*Transaction),
		events:       make(map[uint]bool),
		categories:   make(map[uint]string),
		nextID:       1,
	}
}

func (r *fakeFinancialRepo) Create(ctx context.Context, transaction *Transaction) error {
	transaction.ID = r.nextID
	r.nextID++
	transaction.CreatedAt = time.Now()
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeFinancialRepo) ListByEvent(ctx context.Context, eventID uint) ([]TransactionWithCategory, error) {
	result := make([]TransactionWithCategory, 0)
	for _, transaction := range r.transactions {
		if transaction.EventID != eventID {
			continue
		}
		item := TransactionWithCategory{Transaction: *transaction}
		if transaction.CategoryID != nil {
			if name, ok := r.categories[*transaction.CategoryID]; ok {
				item.CategoryName = &name
			}
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *fakeFinancialRepo) ListSettledByEvent(ctx context.Context, eventID uint) ([]Transaction, error) {
	result := make([]Transaction, 0)
	for _, transaction := range r.transactions {
		if transaction.EventID == eventID && transaction.Status == StatusSettled && transaction.PaidAt != nil {
			result = append(result, *transaction)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PaidAt.Before(*result[j].PaidAt)
	})
	return result, nil
}

func (r *fakeFinancialRepo) EventExists(ctx context.Context, id uint) (bool, error) {
	return r.events[id], nil
}

func (r *fakeFinancialRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func uintPtr(value uint) *uint {
	return &value
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestCreateManualTransaction(t *testing.T) {
	repo := newFakeFinancialRepo()
	repo.events[1] = true
	repo.categories[5] = "Buffet"
	service := NewService(repo)

	created, err := service.Create(context.Background(), CreateTransactionInput{
		EventID:     1,
		Type:        TypeExpense,
		Description: "  Aluguel do salão  ",
		Amount:      800,
		CategoryID:  uintPtr(5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Description != "Aluguel do salão" {
		t.Fatalf("expected trimmed description, got %q", created.Description)
	}
	if created.Status != StatusPlanned {
		t.Fatalf("expected planned default, got %q", created.Status)
	}
	if created.PaidAt == nil {
		t.Fatal("expected paidAt default")
	}
	if created.SourceType != SourceManual || created.SourceID != nil {
		t.Fatalf("manual path must record sourceType=manual sourceId=nil, got %q %v", created.SourceType, created.SourceID)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeFinancialRepo()
	repo.events[1] = true
	service := NewService(repo)
	ctx := context.Background()

	base := CreateTransactionInput{EventID: 1, Type: TypeIncome, Description: "entrada", Amount: 100}

	cases := []struct {
		name   string
		mutate func(*CreateTransactionInput)
		want   error
	}{
		{"unknown event", func(i *CreateTransactionInput) { i.EventID = 99 }, ErrEventNotFound},
		{"empty description", func(i *CreateTransactionInput) { i.Description = "  " }, ErrDescriptionRequired},
		{"zero amount", func(i *CreateTransactionInput) { i.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(i *CreateTransactionInput) { i.Amount = -5 }, ErrInvalidAmount},
		{"bad type", func(i *CreateTransactionInput) { i.Type = "transfer" }, ErrInvalidType},
		{"unknown category", func(i *CreateTransactionInput) { i.CategoryID = uintPtr(42) }, ErrCategoryNotFound},
		{"zero category id", func(i *CreateTransactionInput) { i.CategoryID = uintPtr(0) }, ErrCategoryNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			if _, err := service.Create(ctx, input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateExplicitSettled(t *testing.T) {
	repo := newFakeFinancialRepo()
	repo.events[1] = true
	service := NewService(repo)

	paidAt := time.Date(2026, 11, 5, 14, 0, 0, 0, time.UTC)
	created, err := service.Create(context.Background(), CreateTransactionInput{
		EventID:     1,
		Type:        TypeIncome,
		Description: "sinal",
		Amount:      500,
		Status:      StatusSettled,
		PaidAt:      timePtr(paidAt),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != StatusSettled {
		t.Fatalf("expected settled, got %q", created.Status)
	}
	if created.PaidAt == nil || !created.PaidAt.Equal(paidAt) {
		t.Fatalf("expected supplied paidAt, got %v", created.PaidAt)
	}

	// any status other than the exact 'settled' string falls back to planned
	other, err := service.Create(context.Background(), CreateTransactionInput{
		EventID:     1,
		Type:        TypeIncome,
		Description: "reserva",
		Amount:      100,
		Status:      "SETTLED",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if other.Status != StatusPlanned {
		t.Fatalf("expected planned fallback, got %q", other.Status)
	}
}

func TestCashflowGroupsByUTCDate(t *testing.T) {
	repo := newFakeFinancialRepo()
	repo.events[1] = true
	service := NewService(repo)
	ctx := context.Background()

	day := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)

	mustCreate := func(input CreateTransactionInput) {
		t.Helper()
		if _, err := service.Create(ctx, input); err != nil {
			t.Fatalf("create %+v: %v", input, err)
		}
	}

	mustCreate(CreateTransactionInput{EventID: 1, Type: TypeIncome, Description: "entrada", Amount: 100, Status: StatusSettled, PaidAt: timePtr(day.Add(9 * time.Hour))})
	mustCreate(CreateTransactionInput{EventID: 1, Type: TypeExpense, Description: "flores", Amount: 40, Status: StatusSettled, PaidAt: timePtr(day.Add(17 * time.Hour))})
	// planned transactions are excluded from cashflow entirely
	mustCreate(CreateTransactionInput{EventID: 1, Type: TypeExpense, Description: "buffet", Amount: 999, PaidAt: timePtr(day.Add(12 * time.Hour))})
	mustCreate(CreateTransactionInput{EventID: 1, Type: TypeIncome, Description: "parcela", Amount: 250, Status: StatusSettled, PaidAt: timePtr(day.AddDate(0, 0, 2))})

	points, err := service.Cashflow(ctx, 1)
	if err != nil {
		t.Fatalf("cashflow: %v", err)
	}

	expected := []CashflowPoint{
		{Date: "2026-11-05", Income: 100, Expense: 40},
		{Date: "2026-11-07", Income: 250, Expense: 0},
	}
	if len(points) != len(expected) {
		t.Fatalf("expected %d points, got %d (%v)", len(expected), len(points), points)
	}
	for i, want := range expected {
		if points[i] != want {
			t.Fatalf("point %d: expected %+v, got %+v", i, want, points[i])
		}
	}
}

func TestListIncludesCategoryName(t *testing.T) {
	repo := newFakeFinancialRepo()
	repo.events[1] = true
	repo.categories[5] = "Buffet"
	service := NewService(repo)
	ctx := context.Background()

	if _, err := service.Create(ctx, CreateTransactionInput{EventID: 1, Type: TypeExpense, Description: "jantar", Amount: 300, CategoryID: uintPtr(5)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Create(ctx, CreateTransactionInput{EventID: 1, Type: TypeIncome, Description: "sinal", Amount: 500}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := service.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(listed))
	}
	// newest first
	if listed[0].Description != "sinal" || listed[0].CategoryName != nil {
		t.Fatalf("unexpected first item %+v", listed[0])
	}
	if listed[1].CategoryName == nil || *listed[1].CategoryName != "Buffet" {
		t.Fatalf("expected category name joined in, got %+v", listed[1])
	}
}
