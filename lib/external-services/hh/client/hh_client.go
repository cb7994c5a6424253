package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	hhapimodels "hh-vacancy-bot/models/api/hh"
)

type Provider interface {
	//https://api.hh.ru/openapi/redoc#tag/Poisk-vakansij/operation/get-vacancies
	SearchVacancies(ctx context.Context, req hhapimodels.SearchRequest) (*hhapimodels.SearchResponse, error)

	//https://api.hh.ru/openapi/redoc#tag/Vakansii/operation/get-vacancy
	GetVacancy(ctx context.Context, vacancyID string) (*hhapimodels.VacancyDetail, error)
}

var Instance Provider

func NewProvider(host, accessToken, userAgent string) {
	Instance = NewClient(host, accessToken, userAgent)
}

func NewClient(host, accessToken, userAgent string) Provider {
	return &impl{
		host:        host,
		accessToken: accessToken,
		userAgent:   userAgent,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type impl struct {
	host        string
	accessToken string
	userAgent   string
	client      *http.Client
}

const (
	vSearchPath    string = "/vacancies"
	vDetailPath    string = "/vacancies/%v"
	requestTimeout        = 30 * time.Second
)

func (i impl) SearchVacancies(ctx context.Context, req hhapimodels.SearchRequest) (*hhapimodels.SearchResponse, error) {
	params := url.Values{}
	params.Set("text", req.Text)
	params.Set("area", req.Area)
	params.Set("only_with_salary", strconv.FormatBool(req.OnlyWithSalary))
	params.Set("salary", req.Salary)
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("per_page", strconv.Itoa(req.PerPage))
	uri := i.host + vSearchPath + "?" + params.Encode()

	logger := log.
		WithField("external_request", uri).
		WithField("page", req.Page)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &apperrors.UpstreamAPIError{Uri: uri, Err: err}
	}
	resp := hhapimodels.SearchResponse{}
	if err = i.sendRequest(logger, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) GetVacancy(ctx context.Context, vacancyID string) (*hhapimodels.VacancyDetail, error) {
	uri := i.host + fmt.Sprintf(vDetailPath, url.PathEscape(vacancyID))
	logger := log.
		WithField("vacancy_id", vacancyID).
		WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &apperrors.UpstreamAPIError{Uri: uri, Err: err}
	}
	resp := hhapimodels.VacancyDetail{}
	if err = i.sendRequest(logger, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("User-Agent", i.userAgent)
	r.Header.Add("Accept", "application/json")
	if i.accessToken != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.accessToken))
	}
	uri := r.URL.String()
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в HH")
		return &apperrors.UpstreamAPIError{Uri: uri, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return &apperrors.UpstreamAPIError{Uri: uri, StatusCode: response.StatusCode, Err: err}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("HH вернул ошибку")
		return &apperrors.UpstreamAPIError{Uri: uri, StatusCode: response.StatusCode, Body: string(responseBody)}
	}
	if err = json.Unmarshal(responseBody, resp); err != nil {
		logger.
			WithField("response_body", string(responseBody)).
			WithError(err).
			Error("ошибка сериализации ответа")
		return &apperrors.UpstreamAPIError{Uri: uri, StatusCode: response.StatusCode, Err: err}
	}
	return nil
}
