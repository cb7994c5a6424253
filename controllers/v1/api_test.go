package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	parserhandler "hh-vacancy-bot/lib/parser"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	vacancyhandler "hh-vacancy-bot/lib/vacancy"
	apimodels "hh-vacancy-bot/models/api"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
)

func TestParseApi(t *testing.T) {
	parser := &fakeParser{}
	parserhandler.Instance = parser
	app := fiber.New()
	InitParseApiRouters(app)

	t.Run(`success check`, func(t *testing.T) {
		parser.total, parser.err = 7, nil
		status, body := doRequest(t, app, "POST", "/parse", `{"city":"Москва","profession":"Бармен","salary":50000}`)
		require.Equal(t, fiber.StatusOK, status)
		require.JSONEq(t, `{"total_vacancies":"7"}`, body)
		require.Equal(t, parserapimodels.ParseRequest{City: "Москва", Profession: "Бармен", Salary: "50000"}, parser.req)
	})

	t.Run(`malformed body check`, func(t *testing.T) {
		status, body := doRequest(t, app, "POST", "/parse", `{"city":`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "fail", decode(t, body).Status)
	})

	t.Run(`failed run check`, func(t *testing.T) {
		parser.err = errors.Wrap(&apperrors.UnknownCityError{City: "Тверь"}, "ошибка")
		status, body := doRequest(t, app, "POST", "/parse", `{"city":"Тверь","profession":"Бармен","salary":"1"}`)
		require.Equal(t, fiber.StatusInternalServerError, status)
		resp := decode(t, body)
		require.Equal(t, "fail", resp.Status)
		require.True(t, strings.HasPrefix(resp.Message, "Возникла ошибка во время парсинга: UnknownCityError: "))
	})
}

func TestVacancyApi(t *testing.T) {
	vacancies := &fakeVacancies{}
	vacancyhandler.Instance = vacancies
	app := fiber.New()
	InitVacancyApiRouters(app)

	t.Run(`list check`, func(t *testing.T) {
		status, body := doRequest(t, app, "GET", "/vacancies?city=%D0%9C%D0%BE%D1%81%D0%BA%D0%B2%D0%B0&profession=Data%20Scientist&salary=1000&page=2&limit=5", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, `"row_count":1`)
		require.Equal(t, "Москва", vacancies.filter.City)
		require.Equal(t, "Data Scientist", vacancies.filter.Profession)
		require.Equal(t, parserapimodels.SalaryValue("1000"), vacancies.filter.Salary)
		require.Equal(t, 2, vacancies.filter.Page)
		require.Equal(t, 5, vacancies.filter.Limit)
	})

	t.Run(`bad filter check`, func(t *testing.T) {
		status, _ := doRequest(t, app, "GET", "/vacancies?profession=Data%20Scientist", "")
		require.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run(`export check`, func(t *testing.T) {
		req := httptest.NewRequest("GET", "/vacancies/export?city=Kazan&profession=Bar", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "vacancies-")
	})
}

func TestHealthApi(t *testing.T) {
	t.Run(`health check`, func(t *testing.T) {
		app := fiber.New()
		InitHealthApiRouters(app, func() error { return nil })
		status, _ := doRequest(t, app, "GET", "/health", "")
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run(`db down check`, func(t *testing.T) {
		app := fiber.New()
		InitHealthApiRouters(app, func() error { return errors.New("connection refused") })
		status, _ := doRequest(t, app, "GET", "/health", "")
		require.Equal(t, fiber.StatusServiceUnavailable, status)
	})
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.Nil(t, err)
	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, string(data)
}

func decode(t *testing.T, body string) apimodels.Response {
	resp := apimodels.Response{}
	require.Nil(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

type fakeParser struct {
	total int
	err   error
	req   parserapimodels.ParseRequest
}

func (f *fakeParser) Parse(ctx context.Context, req parserapimodels.ParseRequest) (int, error) {
	f.req = req
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

type fakeVacancies struct {
	filter vacancyapimodels.VacancyFilter
}

func (f *fakeVacancies) List(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	f.filter = filter
	return []vacancyapimodels.VacancyView{{ID: 1, City: filter.City}}, 1, nil
}

func (f *fakeVacancies) Export(ctx context.Context, filter vacancyapimodels.VacancyFilter) (*bytes.Buffer, error) {
	f.filter = filter
	return bytes.NewBufferString("xlsx"), nil
}
