package handlers

import (
	"net/http"

	"marketplace/internal/marketplace/models"
	"marketplace/internal/marketplace/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Order Handler
// ============================================================

type OrderHandler struct {
	repo *repository.Repository
	log  logrus.FieldLogger
}

func NewOrderHandler(repo *repository.Repository, log logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{repo: repo, log: log}
}

// List отдаёт все записи в порядке создания.
func (h *OrderHandler) List(c fiber.Ctx) error {
	items, err := h.repo.ListOrders(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapOrders(items))
}

// Create ждёт start_date и end_date в формате MM/DD/YYYY.
func (h *OrderHandler) Create(c fiber.Ctx) error {
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeOrderFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	created, err := h.repo.CreateOrder(c.Context(), fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("order_id", created.ID).Info("order created")
	return c.Status(http.StatusCreated).JSON(mapOrder(created))
}

func (h *OrderHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	item, err := h.repo.GetOrder(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapOrder(item))
}

// Update полностью заменяет поля записи и отдаёт её новое состояние.
func (h *OrderHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeOrderFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	updated, err := h.repo.UpdateOrder(c.Context(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("order_id", id).Info("order updated")
	return c.JSON(mapOrder(updated))
}

// Delete оставляет отклики на заказ на месте.
func (h *OrderHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.repo.DeleteOrder(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("order_id", id).Info("order deleted")
	return deleted(c, "order", id)
}
