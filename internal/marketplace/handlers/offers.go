package handlers

import (
	"net/http"

	"marketplace/internal/marketplace/models"
	"marketplace/internal/marketplace/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Offer Handler
// ============================================================

type OfferHandler struct {
	repo *repository.Repository
	log  logrus.FieldLogger
}

func NewOfferHandler(repo *repository.Repository, log logrus.FieldLogger) *OfferHandler {
	return &OfferHandler{repo: repo, log: log}
}

func (h *OfferHandler) List(c fiber.Ctx) error {
	items, err := h.repo.ListOffers(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapOffers(items))
}

func (h *OfferHandler) Create(c fiber.Ctx) error {
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeOfferFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	created, err := h.repo.CreateOffer(c.Context(), fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("offer_id", created.ID).Info("offer created")
	return c.Status(http.StatusCreated).JSON(mapOffer(created))
}

func (h *OfferHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	item, err := h.repo.GetOffer(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapOffer(item))
}

// Update меняет заказ и/или исполнителя отклика.
func (h *OfferHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeOfferFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	updated, err := h.repo.UpdateOffer(c.Context(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("offer_id", id).Info("offer updated")
	return c.JSON(mapOffer(updated))
}

func (h *OfferHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.repo.DeleteOffer(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("offer_id", id).Info("offer deleted")
	return deleted(c, "offer", id)
}
