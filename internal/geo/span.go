package geo

import "math"

// kmPerDegree — приблизительная длина одного градуса широты в километрах
const kmPerDegree = 111.0

// SpanForRadius переводит радиус поиска в километрах в угловой размер окна
// для запроса к картографическому API. Долготный размер растёт с широтой,
// компенсируя сжатие меридианов; на полюсах значение не определено и не
// ограничивается (известное ограничение).
func SpanForRadius(lat, radiusKm float64) (latSpan, lonSpan float64) {
	latSpan = radiusKm / kmPerDegree
	lonSpan = radiusKm / (kmPerDegree * math.Abs(math.Cos(lat*math.Pi/180)))
	return latSpan, lonSpan
}
