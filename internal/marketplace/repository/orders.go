package repository

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/marketplace/models"
)

// ============================================================
// Orders
// ============================================================

const orderColumns = `id, name, description, start_date, end_date, address, price, customer_id, executor_id`

// CreateOrder принимает уже разобранные даты.
func (r *Repository) CreateOrder(ctx context.Context, f models.OrderFields) (models.Order, error) {
	if err := f.Validate(); err != nil {
		return models.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        INSERT INTO orders (name, description, start_date, end_date, address, price, customer_id, executor_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, f.Name, f.Description, f.StartDate.StorageValue(), f.EndDate.StorageValue(),
		f.Address, f.Price, f.CustomerID, nullableID(f.ExecutorID))
	if err != nil {
		return models.Order{}, storageErr("create order", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Order{}, storageErr("create order", err)
	}
	return models.Order{ID: id, OrderFields: f}, nil
}

func (r *Repository) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, notFound("order", id)
		}
		return models.Order{}, storageErr("get order", err)
	}
	return o, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, storageErr("list orders", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list orders", err)
	}
	return orders, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, id int64, f models.OrderFields) (models.Order, error) {
	if err := f.Validate(); err != nil {
		return models.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET name = ?, description = ?, start_date = ?, end_date = ?,
            address = ?, price = ?, customer_id = ?, executor_id = ?
        WHERE id = ?
    `, f.Name, f.Description, f.StartDate.StorageValue(), f.EndDate.StorageValue(),
		f.Address, f.Price, f.CustomerID, nullableID(f.ExecutorID), id)
	if err != nil {
		return models.Order{}, storageErr("update order", err)
	}
	if err := checkAffected(res, "update order", "order", id); err != nil {
		return models.Order{}, err
	}
	return models.Order{ID: id, OrderFields: f}, nil
}

// DeleteOrder не удаляет отклики на заказ.
func (r *Repository) DeleteOrder(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete order", err)
	}
	return checkAffected(res, "delete order", "order", id)
}

func scanOrder(s scanner) (models.Order, error) {
	var (
		o          models.Order
		start, end string
		executor   sql.NullInt64
	)
	if err := s.Scan(&o.ID, &o.Name, &o.Description, &start, &end, &o.Address, &o.Price, &o.CustomerID, &executor); err != nil {
		return models.Order{}, err
	}

	var err error
	if o.StartDate, err = models.ParseStorageDate(start); err != nil {
		return models.Order{}, err
	}
	if o.EndDate, err = models.ParseStorageDate(end); err != nil {
		return models.Order{}, err
	}
	if executor.Valid {
		id := executor.Int64
		o.ExecutorID = &id
	}
	return o, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
