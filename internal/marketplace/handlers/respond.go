package handlers

import (
	"net/http"
	"strconv"

	"marketplace/internal/common/apperr"
	"marketplace/internal/common/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Responses & Errors
// ============================================================

// StatusFor отображает код ошибки в HTTP-статус.
func StatusFor(code apperr.Code) int {
	switch code {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.StorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c fiber.Ctx, log logrus.FieldLogger, err error) error {
	code := apperr.CodeOf(err)
	status := StatusFor(code)
	entry := log.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFrom(c),
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     status,
	}).WithError(err)

	msg := apperr.Message(err)
	switch code {
	case apperr.NotFound, apperr.InvalidInput:
		entry.Debug("request rejected")
	case apperr.StorageUnavailable:
		entry.Error("storage failure")
		msg = "storage unavailable"
	default:
		entry.Error("unexpected error")
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// parseID читает :id из пути. Допустимы только положительные целые.
func parseID(c fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Newf(apperr.InvalidInput, "invalid id %q", raw)
	}
	return id, nil
}

func requireBody(c fiber.Ctx) ([]byte, error) {
	body := c.Body()
	if len(body) == 0 {
		return nil, apperr.New(apperr.InvalidInput, "empty body")
	}
	return body, nil
}

func deleted(c fiber.Ctx, kind string, id int64) error {
	return c.JSON(fiber.Map{"message": kind + " " + strconv.FormatInt(id, 10) + " deleted"})
}
