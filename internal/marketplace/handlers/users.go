package handlers

import (
	"net/http"

	"marketplace/internal/marketplace/models"
	"marketplace/internal/marketplace/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// User Handler
// ============================================================

type UserHandler struct {
	repo *repository.Repository
	log  logrus.FieldLogger
}

func NewUserHandler(repo *repository.Repository, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{repo: repo, log: log}
}

// List отдаёт все записи в порядке создания.
func (h *UserHandler) List(c fiber.Ctx) error {
	items, err := h.repo.ListUsers(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapUsers(items))
}

// Create создаёт запись и отвечает 201 с присвоенным id.
func (h *UserHandler) Create(c fiber.Ctx) error {
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeUserFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	created, err := h.repo.CreateUser(c.Context(), fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("user_id", created.ID).Info("user created")
	return c.Status(http.StatusCreated).JSON(mapUser(created))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	item, err := h.repo.GetUser(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(mapUser(item))
}

// Update полностью заменяет поля записи и отдаёт её новое состояние.
func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, err := requireBody(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	fields, err := models.DecodeUserFields(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	updated, err := h.repo.UpdateUser(c.Context(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("user_id", id).Info("user updated")
	return c.JSON(mapUser(updated))
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.repo.DeleteUser(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.WithField("user_id", id).Info("user deleted")
	return deleted(c, "user", id)
}
