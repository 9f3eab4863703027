package repository

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/marketplace/models"
)

// ============================================================
// Offers
// ============================================================

const offerColumns = `id, order_id, executor_id`

func (r *Repository) CreateOffer(ctx context.Context, f models.OfferFields) (models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        INSERT INTO offers (order_id, executor_id)
        VALUES (?, ?)
    `, f.OrderID, f.ExecutorID)
	if err != nil {
		return models.Offer{}, storageErr("create offer", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Offer{}, storageErr("create offer", err)
	}
	return models.Offer{ID: id, OfferFields: f}, nil
}

func (r *Repository) GetOffer(ctx context.Context, id int64) (models.Offer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = ?`, id)

	o, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Offer{}, notFound("offer", id)
		}
		return models.Offer{}, storageErr("get offer", err)
	}
	return o, nil
}

func (r *Repository) ListOffers(ctx context.Context) ([]models.Offer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY id`)
	if err != nil {
		return nil, storageErr("list offers", err)
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, storageErr("list offers", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list offers", err)
	}
	return offers, nil
}

func (r *Repository) UpdateOffer(ctx context.Context, id int64, f models.OfferFields) (models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        UPDATE offers SET order_id = ?, executor_id = ? WHERE id = ?
    `, f.OrderID, f.ExecutorID, id)
	if err != nil {
		return models.Offer{}, storageErr("update offer", err)
	}
	if err := checkAffected(res, "update offer", "offer", id); err != nil {
		return models.Offer{}, err
	}
	return models.Offer{ID: id, OfferFields: f}, nil
}

func (r *Repository) DeleteOffer(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete offer", err)
	}
	return checkAffected(res, "delete offer", "offer", id)
}

func scanOffer(s scanner) (models.Offer, error) {
	var o models.Offer
	err := s.Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	return o, err
}
