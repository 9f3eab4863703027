package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"marketplace/internal/common/apperr"
	"marketplace/internal/marketplace/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "marketplace.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init db: %v", err)
	}
	return repo
}

func ann() models.UserFields {
	return models.UserFields{FirstName: "Ann", LastName: "Lee", Age: 30, Email: "a@x.com", Role: "customer", Phone: "123"}
}

func sofaOrder(customerID int64) models.OrderFields {
	return models.OrderFields{
		Name:        "Move a sofa",
		Description: "Third floor, no lift",
		StartDate:   models.NewDate(2013, time.February, 8),
		EndDate:     models.NewDate(2013, time.March, 8),
		Address:     "Moscow",
		Price:       5000,
		CustomerID:  customerID,
	}
}

func TestCreateUserOnEmptyStoreReturnsIDOne(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, ann())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	got, err := repo.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got != created {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.GetUser(ctx, 42); !apperr.IsNotFound(err) {
		t.Errorf("user: expected NotFound, got %v", err)
	}
	if _, err := repo.GetOrder(ctx, 42); !apperr.IsNotFound(err) {
		t.Errorf("order: expected NotFound, got %v", err)
	}
	if _, err := repo.GetOffer(ctx, 42); !apperr.IsNotFound(err) {
		t.Errorf("offer: expected NotFound, got %v", err)
	}
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, ann())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := repo.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := repo.GetUser(ctx, u.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
	if err := repo.DeleteUser(ctx, u.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}

func TestUpdateMissingDoesNotCreate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.UpdateUser(ctx, 7, ann()); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := repo.UpdateOrder(ctx, 7, sofaOrder(1)); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := repo.UpdateOffer(ctx, 7, models.OfferFields{OrderID: 1, ExecutorID: 1}); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, ann())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	replacement := models.UserFields{FirstName: "Bob", LastName: "Ray", Age: 41, Email: "b@x.com", Role: "executor", Phone: "456"}
	updated, err := repo.UpdateUser(ctx, u.ID, replacement)
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.ID != u.ID {
		t.Errorf("expected id %d to be kept, got %d", u.ID, updated.ID)
	}

	got, err := repo.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.UserFields != replacement {
		t.Errorf("expected %+v, got %+v", replacement, got.UserFields)
	}
}

func TestListReturnsUniqueIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := repo.CreateOffer(ctx, models.OfferFields{OrderID: int64(i + 1), ExecutorID: 2}); err != nil {
			t.Fatalf("create offer: %v", err)
		}
	}

	offers, err := repo.ListOffers(ctx)
	if err != nil {
		t.Fatalf("list offers: %v", err)
	}
	if len(offers) != n {
		t.Fatalf("expected %d offers, got %d", n, len(offers))
	}
	seen := map[int64]bool{}
	for _, o := range offers {
		if seen[o.ID] {
			t.Fatalf("duplicate id %d", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo := newTestRepository(t)

	orders, err := repo.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if orders == nil {
		t.Fatal("expected empty non-nil slice")
	}
}

func TestOrderRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateOrder(ctx, sofaOrder(1))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := repo.GetOrder(ctx, created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if !got.StartDate.Equal(created.StartDate) || !got.EndDate.Equal(created.EndDate) {
		t.Errorf("dates changed: %s..%s", got.StartDate, got.EndDate)
	}
	if got.Name != created.Name || got.Price != created.Price || got.CustomerID != created.CustomerID {
		t.Errorf("expected %+v, got %+v", created, got)
	}
	if got.ExecutorID != nil {
		t.Errorf("expected nil executor, got %d", *got.ExecutorID)
	}

	executor := int64(2)
	fields := sofaOrder(1)
	fields.ExecutorID = &executor
	if _, err := repo.UpdateOrder(ctx, created.ID, fields); err != nil {
		t.Fatalf("update order: %v", err)
	}
	got, err = repo.GetOrder(ctx, created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.ExecutorID == nil || *got.ExecutorID != 2 {
		t.Errorf("expected executor 2, got %v", got.ExecutorID)
	}
}

func TestCreateOrderRejectsNegativePrice(t *testing.T) {
	repo := newTestRepository(t)

	fields := sofaOrder(1)
	fields.Price = -1
	if _, err := repo.CreateOrder(context.Background(), fields); !apperr.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestDeleteLeavesDanglingReferences(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, ann())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	o, err := repo.CreateOrder(ctx, sofaOrder(u.ID))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	offer, err := repo.CreateOffer(ctx, models.OfferFields{OrderID: o.ID, ExecutorID: u.ID})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}

	if err := repo.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if err := repo.DeleteOrder(ctx, o.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	got, err := repo.GetOffer(ctx, offer.ID)
	if err != nil {
		t.Fatalf("expected offer to survive, got %v", err)
	}
	if got.OrderID != o.ID || got.ExecutorID != u.ID {
		t.Errorf("expected dangling references to be kept, got %+v", got)
	}
}

func TestIDsAreNotReused(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, _ := repo.CreateUser(ctx, ann())
	if err := repo.DeleteUser(ctx, first.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	second, err := repo.CreateUser(ctx, ann())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("expected monotonic id after %d, got %d", first.ID, second.ID)
	}
}

func TestConcurrentCreates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateUser(ctx, ann()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("create user: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != n {
		t.Errorf("expected %d users, got %d", n, len(users))
	}
}

func TestInitIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestClosedDatabaseIsStorageUnavailable(t *testing.T) {
	db, err := OpenSQLite(MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo := New(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init db: %v", err)
	}
	db.Close()

	if _, err := repo.GetUser(context.Background(), 1); apperr.CodeOf(err) != apperr.StorageUnavailable {
		t.Errorf("expected StorageUnavailable, got %v", err)
	}
	if err := repo.Ping(context.Background()); apperr.CodeOf(err) != apperr.StorageUnavailable {
		t.Errorf("expected StorageUnavailable from ping, got %v", err)
	}
}
