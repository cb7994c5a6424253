package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run(`request log check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logrus.New()
		logger.SetOutput(buf)
		logger.SetFormatter(&logrus.JSONFormatter{})

		app := fiber.New()
		app.Use(New(Config{Logger: logger, Tags: []string{TagStatus, TagMethod, TagPath, "unknown"}}))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		})
		_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "GET", entry["method"])
		require.Equal(t, "/health", entry["path"])
		require.Equal(t, float64(503), entry["status"])
		require.NotContains(t, entry, "unknown")
	})

	t.Run(`skip path check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logrus.New()
		logger.SetOutput(buf)

		status := fiber.StatusOK
		app := fiber.New()
		app.Use(New(Config{Logger: logger, Tags: []string{TagStatus}, SkipPaths: []string{"/health"}}))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.SendStatus(status)
		})
		_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.Nil(t, err)
		require.Zero(t, buf.Len())

		status = fiber.StatusServiceUnavailable
		_, err = app.Test(httptest.NewRequest("GET", "/health", nil))
		require.Nil(t, err)
		require.NotZero(t, buf.Len())
	})
}
