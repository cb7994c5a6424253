package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hh-vacancy-bot/config"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	parserapimodels "hh-vacancy-bot/models/api/parser"
)

func TestScheduler(t *testing.T) {
	searches := []config.RefreshSearch{
		{City: "Тверь", Profession: "Бармен", Salary: "1000"},
		{City: "Москва", Profession: "Бармен", Salary: "50000"},
	}

	t.Run(`refresh all check`, func(t *testing.T) {
		parser := &fakeParser{}
		New(parser, searches, "").RefreshAll(context.TODO())
		require.Equal(t, []parserapimodels.ParseRequest{
			{City: "Тверь", Profession: "Бармен", Salary: "1000"},
			{City: "Москва", Profession: "Бармен", Salary: "50000"},
		}, parser.requests())
	})

	t.Run(`disabled check`, func(t *testing.T) {
		started, err := New(&fakeParser{}, searches, "").Start(context.TODO(), "")
		require.Nil(t, err)
		require.False(t, started)
		started, err = New(&fakeParser{}, nil, "").Start(context.TODO(), "@every 1h")
		require.Nil(t, err)
		require.False(t, started)
	})

	t.Run(`bad spec check`, func(t *testing.T) {
		_, err := New(&fakeParser{}, searches, "").Start(context.TODO(), "каждый час")
		require.NotNil(t, err)
	})

	t.Run(`bad search check`, func(t *testing.T) {
		_, err := New(&fakeParser{}, []config.RefreshSearch{{City: "Москва", Profession: "Бармен", Salary: "много"}}, "").
			Start(context.TODO(), "@every 1h")
		require.NotNil(t, err)
	})

	t.Run(`scheduled run check`, func(t *testing.T) {
		parser := &fakeParser{}
		s := New(parser, searches[1:], "")
		started, err := s.Start(context.TODO(), "@every 1s")
		require.Nil(t, err)
		require.True(t, started)
		require.Eventually(t, func() bool { return len(parser.requests()) > 0 }, 3*time.Second, 50*time.Millisecond)
		s.Stop()
	})

	t.Run(`overlapping run is skipped check`, func(t *testing.T) {
		release := make(chan struct{})
		parser := &fakeParser{release: release}
		s := New(parser, searches[1:], "")
		started, err := s.Start(context.TODO(), "@every 1h")
		require.Nil(t, err)
		require.True(t, started)
		defer s.Stop()

		entries := s.cron.Entries()
		require.Len(t, entries, 1)
		done := make(chan struct{})
		go func() {
			entries[0].WrappedJob.Run()
			close(done)
		}()
		require.Eventually(t, func() bool { return len(parser.requests()) == 1 }, time.Second, 10*time.Millisecond)

		// предыдущее обновление еще идет
		entries[0].WrappedJob.Run()
		require.Len(t, parser.requests(), 1)

		close(release)
		<-done
		require.Len(t, parser.requests(), 1)
	})
}

type fakeParser struct {
	mu      sync.Mutex
	reqs    []parserapimodels.ParseRequest
	release chan struct{}
}

func (f *fakeParser) Parse(ctx context.Context, req parserapimodels.ParseRequest) (int, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	if req.City == "Тверь" {
		return 0, &apperrors.UnknownCityError{City: req.City}
	}
	return 1, nil
}

func (f *fakeParser) requests() []parserapimodels.ParseRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]parserapimodels.ParseRequest{}, f.reqs...)
}
