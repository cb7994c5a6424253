package parserhandler

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	hhapimodels "hh-vacancy-bot/models/api/hh"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
	dbmodels "hh-vacancy-bot/models/db"
)

func TestParse(t *testing.T) {
	t.Run(`single page check`, func(t *testing.T) {
		client := newFakeClient(1, 2)
		store := newFakeStore()
		handler, pauses := getInstance(client, store)

		total, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		require.Equal(t, 2, total)
		require.Len(t, store.rows, 2)
		require.Equal(t, 0, *pauses)
		require.Equal(t, []int{0}, client.pages)
		require.Equal(t, 1, store.ensured)
	})

	t.Run(`search params check`, func(t *testing.T) {
		client := newFakeClient(1, 1)
		handler, _ := getInstance(client, newFakeStore())

		_, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		require.Len(t, client.requests, 1)
		req := client.requests[0]
		require.Equal(t, "Бармен", req.Text)
		require.Equal(t, "1", req.Area)
		require.Equal(t, "50000", req.Salary)
		require.True(t, req.OnlyWithSalary)
		require.Equal(t, 50, req.PerPage)
	})

	t.Run(`several pages check`, func(t *testing.T) {
		client := newFakeClient(3, 2)
		store := newFakeStore()
		handler, pauses := getInstance(client, store)

		total, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		require.Equal(t, 6, total)
		require.Equal(t, []int{0, 1, 2}, client.pages)
		require.Equal(t, 2, *pauses)
		require.Len(t, store.rows, 6)
		require.Equal(t, 3, store.commits)
	})

	t.Run(`repeated run check`, func(t *testing.T) {
		client := newFakeClient(1, 1)
		store := newFakeStore()
		handler, _ := getInstance(client, store)

		_, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		client.name = "Старший бармен"
		total, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		require.Equal(t, 1, total)
		require.Len(t, store.rows, 1)
		require.Equal(t, "Старший бармен", store.rows["https://hh.ru/vacancy/0-0"].Name)
	})

	t.Run(`unknown city check`, func(t *testing.T) {
		client := newFakeClient(1, 1)
		handler, _ := getInstance(client, newFakeStore())

		req := getRequest()
		req.City = "Тверь"
		total, err := handler.Parse(context.TODO(), req)
		require.Equal(t, 0, total)
		require.NotNil(t, err)
		var cityErr *apperrors.UnknownCityError
		require.True(t, errors.As(err, &cityErr))
		require.Equal(t, "Тверь", cityErr.City)
		require.Empty(t, client.requests)
	})

	t.Run(`upstream failure keeps committed pages check`, func(t *testing.T) {
		client := newFakeClient(3, 2)
		client.failPage = 1
		store := newFakeStore()
		handler, _ := getInstance(client, store)

		total, err := handler.Parse(context.TODO(), getRequest())
		require.Equal(t, 0, total)
		require.Equal(t, "UpstreamAPIError", apperrors.Kind(err))
		require.Len(t, store.rows, 2)
		require.Equal(t, 1, store.commits)
	})

	t.Run(`empty first page check`, func(t *testing.T) {
		client := newFakeClient(0, 0)
		store := newFakeStore()
		handler, pauses := getInstance(client, store)

		total, err := handler.Parse(context.TODO(), getRequest())
		require.Nil(t, err)
		require.Equal(t, 0, total)
		require.Empty(t, store.rows)
		require.Equal(t, 0, *pauses)
	})

	t.Run(`canceled context check`, func(t *testing.T) {
		handler, _ := getInstance(newFakeClient(1, 1), newFakeStore())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.True(t, handler.runLock.Acquire(context.TODO(), "other"))
		defer handler.runLock.Release("other")

		_, err := handler.Parse(ctx, getRequest())
		require.NotNil(t, err)
	})
}

func getInstance(client *fakeClient, store *fakeStore) (*impl, *int) {
	handler := newHandler(client, store)
	pauses := 0
	handler.pause = func(ctx context.Context) error {
		pauses++
		return nil
	}
	return handler, &pauses
}

func getRequest() parserapimodels.ParseRequest {
	return parserapimodels.ParseRequest{
		City:       "Москва",
		Profession: "Бармен",
		Salary:     "50000",
	}
}

type fakeClient struct {
	pagesTotal int
	perPage    int
	failPage   int
	name       string
	pages      []int
	requests   []hhapimodels.SearchRequest
}

func newFakeClient(pagesTotal, perPage int) *fakeClient {
	return &fakeClient{
		pagesTotal: pagesTotal,
		perPage:    perPage,
		failPage:   -1,
		name:       "Бармен",
	}
}

func (c *fakeClient) SearchVacancies(ctx context.Context, req hhapimodels.SearchRequest) (*hhapimodels.SearchResponse, error) {
	c.requests = append(c.requests, req)
	c.pages = append(c.pages, req.Page)
	if req.Page == c.failPage {
		return nil, &apperrors.UpstreamAPIError{Uri: "/vacancies", StatusCode: 503}
	}
	resp := &hhapimodels.SearchResponse{
		Pages:   c.pagesTotal,
		Page:    req.Page,
		PerPage: req.PerPage,
		Items:   []hhapimodels.VacancyItem{},
	}
	for n := 0; n < c.perPage; n++ {
		name := c.name
		url := fmt.Sprintf("https://hh.ru/vacancy/%v-%v", req.Page, n)
		from := 60000
		resp.Items = append(resp.Items, hhapimodels.VacancyItem{
			ID:           fmt.Sprintf("%v-%v", req.Page, n),
			Name:         &name,
			AlternateUrl: &url,
			Salary:       &hhapimodels.Salary{From: &from},
		})
	}
	return resp, nil
}

func (c *fakeClient) GetVacancy(ctx context.Context, vacancyID string) (*hhapimodels.VacancyDetail, error) {
	description := "<p>Описание</p>"
	return &hhapimodels.VacancyDetail{
		ID:          vacancyID,
		Description: &description,
		KeySkills:   &[]hhapimodels.KeySkill{{Name: "Кофе"}},
	}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	rows    map[string]dbmodels.Vacancy
	ensured int
	commits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]dbmodels.Vacancy{}}
}

func (s *fakeStore) EnsureSchema(ctx context.Context) error {
	s.ensured++
	return nil
}

func (s *fakeStore) UpsertPage(ctx context.Context, list []dbmodels.Vacancy) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range list {
		s.rows[rec.Url] = rec
	}
	s.commits++
	return len(list), nil
}

func (s *fakeStore) Find(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	return nil, nil
}

func (s *fakeStore) ListCount(ctx context.Context, filter vacancyapimodels.VacancyFilter) (int64, error) {
	return 0, nil
}

func (s *fakeStore) List(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	return nil, nil
}
