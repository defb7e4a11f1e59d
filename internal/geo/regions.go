package geo

// region — прямоугольная область, покрывающая субъект федерации.
// Границы грубые: таблица нужна только как запасной вариант, когда
// геокодер не вернул регион для найденного города.
type region struct {
	name   string
	minLat float64
	maxLat float64
	minLon float64
	maxLon float64
}

var regions = []region{
	{"Краснодарский край", 43.3, 46.9, 36.5, 41.8},
	{"Республика Крым", 44.3, 46.2, 32.4, 36.7},
	{"Ставропольский край", 43.6, 46.0, 40.8, 45.7},
	{"Республика Дагестан", 41.2, 44.9, 45.1, 48.6},
	{"Калининградская область", 54.3, 55.3, 19.6, 22.9},
	{"Ленинградская область", 58.4, 61.3, 27.7, 35.7},
	{"Московская область", 54.2, 56.9, 35.1, 40.2},
	{"Алтайский край", 50.2, 54.5, 77.9, 87.1},
	{"Иркутская область", 51.1, 64.3, 95.6, 119.1},
	{"Республика Бурятия", 49.9, 57.3, 98.6, 116.9},
	{"Приморский край", 42.3, 48.4, 130.4, 139.0},
}

// RegionFor возвращает название региона, прямоугольник которого содержит
// точку, или пустую строку, если точка не попала ни в один. Первое
// совпадение в порядке таблицы выигрывает.
func RegionFor(lat, lon float64) string {
	for _, r := range regions {
		if lat >= r.minLat && lat <= r.maxLat && lon >= r.minLon && lon <= r.maxLon {
			return r.name
		}
	}
	return ""
}
