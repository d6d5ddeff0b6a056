package clients

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeClientsRepo struct {
	clients map[uint]*Client
	nextID  uint
}

func newFakeClientsRepo() *fakeClientsRepo {
	return &fakeClientsRepo{clients: make(map[uint]*Client), nextID: 1}
}

func (r *fakeClientsRepo) Create(ctx context.Context, client *Client) error {
	client.ID = r.nextID
	r.nextID++
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientsRepo) List(ctx context.Context) ([]Client, error) {
	result := make([]Client, 0, len(r.clients))
	for _, client := range r.clients {
		result = append(result, *client)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *fakeClientsRepo) GetByID(ctx context.Context, id uint) (*Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientsRepo) Update(ctx context.Context, client *Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return ErrClientNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientsRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

func (r *fakeClientsRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

func strPtr(value string) *string {
	return &value
}

func TestCreateTrimsName(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	created, err := service.Create(context.Background(), CreateClientInput{Name: "  Colégio Dehon  ", Phone: strPtr("555-0100")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Colégio Dehon" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	if _, err := service.Create(context.Background(), CreateClientInput{Name: "   "}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	service := NewService(newFakeClientsRepo())
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := service.Create(ctx, CreateClientInput{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listed, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 || listed[0].Name != "third" || listed[2].Name != "first" {
		t.Fatalf("expected newest first ordering, got %+v", listed)
	}
}

func TestUpdatePartial(t *testing.T) {
	service := NewService(newFakeClientsRepo())
	ctx := context.Background()

	created, err := service.Create(ctx, CreateClientInput{Name: "Colégio Dehon", Phone: strPtr("555-0100")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := service.Update(ctx, created.ID, UpdateClientInput{Notes: strPtr("prefers morning calls")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Colégio Dehon" {
		t.Fatalf("name changed unexpectedly: %q", updated.Name)
	}
	if updated.Phone == nil || *updated.Phone != "555-0100" {
		t.Fatalf("phone changed unexpectedly: %v", updated.Phone)
	}
	if updated.Notes == nil || *updated.Notes != "prefers morning calls" {
		t.Fatalf("notes not applied: %v", updated.Notes)
	}
}

func TestUpdateMissingClient(t *testing.T) {
	service := NewService(newFakeClientsRepo())

	if _, err := service.Update(context.Background(), 99, UpdateClientInput{Name: strPtr("x")}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	service := NewService(newFakeClientsRepo())
	ctx := context.Background()

	created, err := service.Create(ctx, CreateClientInput{Name: "Colégio Dehon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := service.Delete(ctx, created.ID); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound on second delete, got %v", err)
	}

	count, err := service.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected count 0, got %d", count)
	}
}
