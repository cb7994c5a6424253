package vacancystore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hh-vacancy-bot/db"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
	dbmodels "hh-vacancy-bot/models/db"
)

type Provider interface {
	EnsureSchema(ctx context.Context) error
	// UpsertPage сохраняет вакансии одной страницы в одной транзакции, возвращает кол-во обработанных
	UpsertPage(ctx context.Context, list []dbmodels.Vacancy) (int, error)
	Find(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error)
	ListCount(ctx context.Context, filter vacancyapimodels.VacancyFilter) (int64, error)
	List(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// числовое сравнение зарплаты; строки с заглушкой вместо суммы в выборку не попадают
const salaryGreaterThan = "CASE WHEN salary ~ '^[0-9]+$' THEN CAST(salary AS BIGINT) ELSE -1 END > ?"

func (i impl) EnsureSchema(ctx context.Context) error {
	err := db.AutoMigrateDB(i.db.WithContext(ctx))
	return apperrors.NewDatabaseError(err, "ошибка создания таблицы вакансий")
}

func (i impl) UpsertPage(ctx context.Context, list []dbmodels.Vacancy) (int, error) {
	count := 0
	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range list {
			if err := upsert(tx, rec); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.NewDatabaseError(err, "ошибка сохранения вакансий")
	}
	return count, nil
}

func upsert(tx *gorm.DB, rec dbmodels.Vacancy) error {
	existed := []dbmodels.Vacancy{}
	err := tx.
		Model(&dbmodels.Vacancy{}).
		Select("id").
		Where("url = ?", rec.Url).
		Limit(1).
		Find(&existed).
		Error
	if err != nil {
		return errors.Wrapf(err, "ошибка поиска вакансии %v", rec.Url)
	}
	if len(existed) == 0 {
		rec.ID = 0
		if err = tx.Create(&rec).Error; err != nil {
			return errors.Wrapf(err, "ошибка добавления вакансии %v", rec.Url)
		}
		return nil
	}
	err = tx.
		Model(&dbmodels.Vacancy{}).
		Where("url = ?", rec.Url).
		Updates(rec.UpdateMap()).
		Error
	if err != nil {
		return errors.Wrapf(err, "ошибка обновления вакансии %v", rec.Url)
	}
	return nil
}

func (i impl) Find(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	list := []dbmodels.Vacancy{}
	err := i.filtered(ctx, filter).
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "ошибка получения списка вакансий")
	}
	return list, nil
}

func (i impl) ListCount(ctx context.Context, filter vacancyapimodels.VacancyFilter) (int64, error) {
	var rowCount int64
	err := i.filtered(ctx, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, apperrors.NewDatabaseError(err, "ошибка получения общего количества вакансий")
	}
	return rowCount, nil
}

func (i impl) List(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	list := []dbmodels.Vacancy{}
	page, limit := filter.GetPage()
	err := i.filtered(ctx, filter).
		Order("id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "ошибка получения списка вакансий")
	}
	return list, nil
}

func (i impl) filtered(ctx context.Context, filter vacancyapimodels.VacancyFilter) *gorm.DB {
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Vacancy{}).
		Where("city = ?", filter.City).
		Where("profession = ?", filter.Profession)
	if filter.Salary != "" {
		tx = tx.Where(salaryGreaterThan, filter.MinSalary())
	}
	return tx
}
