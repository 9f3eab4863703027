package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"marketplace/internal/marketplace/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// ============================================================
// Seed Loader
// ============================================================

// Store — то, что нужно загрузчику от хранилища.
type Store interface {
	CreateUser(ctx context.Context, f models.UserFields) (models.User, error)
	CreateOrder(ctx context.Context, f models.OrderFields) (models.Order, error)
	CreateOffer(ctx context.Context, f models.OfferFields) (models.Offer, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Result — сколько записей каждого типа создано.
type Result struct {
	Users  int
	Orders int
	Offers int
}

// Fixtures возвращает встроенные фикстуры (users.json, orders.json, offers.json).
func Fixtures() fs.FS {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load создаёт пользователей, затем заказы, затем отклики,
// чтобы ссылки по id указывали на уже созданные записи.
func Load(ctx context.Context, store Store, fsys fs.FS) (Result, error) {
	var res Result

	users, err := readEntries(fsys, "users.json")
	if err != nil {
		return res, err
	}
	orders, err := readEntries(fsys, "orders.json")
	if err != nil {
		return res, err
	}
	offers, err := readEntries(fsys, "offers.json")
	if err != nil {
		return res, err
	}

	for i, raw := range users {
		f, err := models.DecodeUserFields(raw)
		if err != nil {
			return res, fmt.Errorf("users.json[%d]: %w", i, err)
		}
		if _, err := store.CreateUser(ctx, f); err != nil {
			return res, fmt.Errorf("seed user %d: %w", i, err)
		}
		res.Users++
	}

	for i, raw := range orders {
		f, err := models.DecodeOrderFields(raw)
		if err != nil {
			return res, fmt.Errorf("orders.json[%d]: %w", i, err)
		}
		if _, err := store.CreateOrder(ctx, f); err != nil {
			return res, fmt.Errorf("seed order %d: %w", i, err)
		}
		res.Orders++
	}

	for i, raw := range offers {
		f, err := models.DecodeOfferFields(raw)
		if err != nil {
			return res, fmt.Errorf("offers.json[%d]: %w", i, err)
		}
		if _, err := store.CreateOffer(ctx, f); err != nil {
			return res, fmt.Errorf("seed offer %d: %w", i, err)
		}
		res.Offers++
	}

	return res, nil
}

// LoadIfEmpty загружает фикстуры только в хранилище без пользователей.
func LoadIfEmpty(ctx context.Context, store Store, fsys fs.FS) (Result, bool, error) {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return Result{}, false, fmt.Errorf("check store: %w", err)
	}
	if len(users) > 0 {
		return Result{}, false, nil
	}
	res, err := Load(ctx, store, fsys)
	return res, err == nil, err
}

func readEntries(fsys fs.FS, name string) ([]json.RawMessage, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return entries, nil
}
