package vacancyhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	xlsexport "hh-vacancy-bot/lib/export/xls"
	apimodels "hh-vacancy-bot/models/api"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
	dbmodels "hh-vacancy-bot/models/db"
)

func TestVacancyHandler(t *testing.T) {
	filter := vacancyapimodels.VacancyFilter{
		Pagination: apimodels.Pagination{Page: 2, Limit: 1},
		City:       "Москва",
		Profession: "Бармен",
	}

	t.Run(`list check`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Vacancy{{ID: 2, Name: "Бармен-бариста", Url: "https://hh.ru/vacancy/2"}}, count: 2}
		handler := impl{store: store, exporter: &fakeExporter{}}
		list, rowCount, err := handler.List(context.TODO(), filter)
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "Бармен-бариста", list[0].Name)
		require.Equal(t, filter, store.filter)
	})

	t.Run(`empty list check`, func(t *testing.T) {
		store := &fakeStore{}
		handler := impl{store: store, exporter: &fakeExporter{}}
		list, rowCount, err := handler.List(context.TODO(), filter)
		require.Nil(t, err)
		require.Equal(t, int64(0), rowCount)
		require.NotNil(t, list)
		require.Empty(t, list)
		require.False(t, store.listCalled)
	})

	t.Run(`export check`, func(t *testing.T) {
		handler := impl{store: &fakeStore{list: []dbmodels.Vacancy{{ID: 1}}}, exporter: xlsexportInstance()}
		buf, err := handler.Export(context.TODO(), filter)
		require.Nil(t, err)
		require.NotZero(t, buf.Len())
	})
}

func xlsexportInstance() xlsexport.Provider {
	xlsexport.NewHandler()
	return xlsexport.Instance
}
