package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
)

func TestSearchDict(t *testing.T) {
	t.Run(`AreaID check`, func(t *testing.T) {
		expected := map[string]string{
			"Москва":          "1",
			"Санкт-Петербург": "2",
			"Казань":          "88",
			"Волгоград":       "24",
		}
		for city, areaID := range expected {
			id, err := AreaID(city)
			require.Nil(t, err)
			require.Equal(t, areaID, id)
		}

		_, err := AreaID("москва")
		var cityErr *apperrors.UnknownCityError
		require.True(t, errors.As(err, &cityErr))
		require.Equal(t, "москва", cityErr.City)
	})

	t.Run(`CheckProfession check`, func(t *testing.T) {
		require.Nil(t, CheckProfession("Бармен"))
		require.Nil(t, CheckProfession("Data Scientist"))
		err := CheckProfession("Бар")
		require.Equal(t, "UnknownProfessionError", apperrors.Kind(err))
	})

	t.Run(`CityNames check`, func(t *testing.T) {
		require.Equal(t, []string{"Москва", "Санкт-Петербург", "Казань", "Волгоград"}, CityNames())
	})
}
