package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
)

func TestRequiredSettings(t *testing.T) {
	t.Run(`empty configuration check`, func(t *testing.T) {
		conf := Configuration{}
		err := conf.CheckParser()
		require.NotNil(t, err)
		var confErr *apperrors.ConfigurationError
		require.True(t, errors.As(err, &confErr))
		require.Equal(t, []string{"DB_HOST", "DB_NAME", "DB_USER", "DB_PASSWORD", "HH_TOKEN"}, confErr.Missing)

		err = conf.CheckBot()
		require.True(t, errors.As(err, &confErr))
		require.Equal(t, []string{"DB_HOST", "DB_NAME", "DB_USER", "DB_PASSWORD", "TELEGRAM_TOKEN"}, confErr.Missing)
	})

	t.Run(`filled configuration check`, func(t *testing.T) {
		conf := Configuration{}
		conf.Database.Host = "db"
		conf.Database.Name = "vacancies"
		conf.Database.User = "postgres"
		conf.Database.Password = "secret"
		require.NotNil(t, conf.CheckParser())

		conf.HH.Token = "hh-token"
		require.Nil(t, conf.CheckParser())
		require.NotNil(t, conf.CheckBot())

		conf.Telegram.Token = "tg-token"
		require.Nil(t, conf.CheckBot())
	})
}
