package models

import (
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
)

// City город поиска и его код региона (area) в справочнике HH
type City struct {
	Name   string
	AreaID string
}

// Cities поддерживаемые города, в порядке вывода на клавиатуре бота
var Cities = []City{
	{Name: "Москва", AreaID: "1"},
	{Name: "Санкт-Петербург", AreaID: "2"},
	{Name: "Казань", AreaID: "88"},
	{Name: "Волгоград", AreaID: "24"},
}

// Professions профессии, предлагаемые пользователю в диалоге
var Professions = []string{
	"Финансовый аналитик",
	"Аналитик данных",
	"ML-разработчик",
	"Data Scientist",
	"Computer vision",
	"Специалист по подбору персонала",
	"Бизнес-тренер",
	"Бармен",
	"Уборщик",
}

func AreaID(city string) (string, error) {
	for _, item := range Cities {
		if item.Name == city {
			return item.AreaID, nil
		}
	}
	return "", &apperrors.UnknownCityError{City: city}
}

func CheckProfession(profession string) error {
	for _, item := range Professions {
		if item == profession {
			return nil
		}
	}
	return &apperrors.UnknownProfessionError{Profession: profession}
}

func CityNames() []string {
	result := make([]string, 0, len(Cities))
	for _, item := range Cities {
		result = append(result, item.Name)
	}
	return result
}
