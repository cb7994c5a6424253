package hhapimodels

// SearchRequest параметры поиска вакансий
// https://api.hh.ru/openapi/redoc#tag/Poisk-vakansij/operation/get-vacancies
type SearchRequest struct {
	Text           string
	Area           string
	Salary         string
	OnlyWithSalary bool
	Page           int
	PerPage        int
}

type SearchResponse struct {
	Items   []VacancyItem `json:"items"`
	Found   int           `json:"found"`
	Pages   int           `json:"pages"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// VacancyItem краткое описание вакансии из результатов поиска.
// Вложенные объекты могут приходить как null
type VacancyItem struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	AlternateUrl *string   `json:"alternate_url"`
	Salary       *Salary   `json:"salary"`
	Schedule     *DictItem `json:"schedule"`
	Experience   *DictItem `json:"experience"`
	Employer     *Employer `json:"employer"`
}

type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    *bool  `json:"gross"`
}

type DictItem struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type Employer struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// VacancyDetail полное описание вакансии
// https://api.hh.ru/openapi/redoc#tag/Vakansii/operation/get-vacancy
type VacancyDetail struct {
	ID          string      `json:"id"`
	Description *string     `json:"description"`
	KeySkills   *[]KeySkill `json:"key_skills"`
}

type KeySkill struct {
	Name string `json:"name"`
}
