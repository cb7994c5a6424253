package dbmodels

// Vacancy вакансия, найденная парсером. Естественный ключ - Url
type Vacancy struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	City        string `gorm:"type:varchar(40)" json:"city"`         // город из параметров поиска
	Profession  string `gorm:"type:varchar(80)" json:"profession"`   // профессия из параметров поиска
	Company     string `gorm:"type:varchar(300)" json:"company"`     // работодатель
	Description string `gorm:"type:varchar(400)" json:"description"` // описание без html разметки
	Name        string `gorm:"type:varchar(300)" json:"name"`        // название должности
	Skills      string `gorm:"type:text" json:"skills"`
	Experience  string `gorm:"type:varchar(50)" json:"experience"`
	Schedule    string `gorm:"type:varchar(50)" json:"schedule"`
	Salary      string `gorm:"type:varchar(50)" json:"salary"`
	Url         string `gorm:"type:varchar(255);index" json:"url"`
}

func (Vacancy) TableName() string {
	return "vacancies"
}

// UpdateMap поля, перезаписываемые при повторной загрузке вакансии (все, кроме url)
func (v Vacancy) UpdateMap() map[string]interface{} {
	return map[string]interface{}{
		"city":        v.City,
		"profession":  v.Profession,
		"company":     v.Company,
		"description": v.Description,
		"name":        v.Name,
		"skills":      v.Skills,
		"experience":  v.Experience,
		"schedule":    v.Schedule,
		"salary":      v.Salary,
	}
}
