package model

// EmailNotFound — маркер того, что поиск email для организации уже выполнялся
// и не дал результата. Отличает "искали и не нашли" от "ещё не искали" (пустая строка).
const EmailNotFound = "not found"

// Organization представляет одну курортную организацию, найденную через
// поиск по организациям. Поля yandex_id и website могут быть синтезированы
// при нормализации, если API их не вернул — это эвристические значения,
// а не проверенные данные.
type Organization struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"` // [долгота, широта], может быть пустым
	YandexID    string    `json:"yandex_id"`
	FullAddress string    `json:"full_address"`
	Website     string    `json:"website"`
	Email       string    `json:"email"`
	Type        string    `json:"type"`
	City        string    `json:"city"`
}

// Equal сравнивает организации по всем полям. Используется при нормализации
// результатов поиска для отсечения точных повторов внутри одного запуска.
func (o Organization) Equal(other Organization) bool {
	if o.Name != other.Name ||
		o.YandexID != other.YandexID ||
		o.FullAddress != other.FullAddress ||
		o.Website != other.Website ||
		o.Email != other.Email ||
		o.Type != other.Type ||
		o.City != other.City {
		return false
	}

	if len(o.Coordinates) != len(other.Coordinates) {
		return false
	}
	for i := range o.Coordinates {
		if o.Coordinates[i] != other.Coordinates[i] {
			return false
		}
	}

	return true
}

// City представляет населённый пункт, найденный по запросу пользователя
type City struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"` // [долгота, широта]
	Region      string    `json:"region"`
	Country     string    `json:"country"`
	FullAddress string    `json:"full_address"`
}

// GeocodeInfo содержит результат обратного геокодирования координат
type GeocodeInfo struct {
	YandexID    string
	FullAddress string
}
