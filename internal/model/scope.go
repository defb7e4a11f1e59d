package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope определяет географическую область поиска: либо город по названию,
// либо точка с радиусом в километрах. Scope неизменяем после создания и
// используется для вычисления ключа хранения снапшота.
type Scope struct {
	city     string
	lat      float64
	lon      float64
	radiusKm float64
	byCoords bool
}

// ByCity создаёт область поиска по названию города
func ByCity(name string) Scope {
	return Scope{city: name}
}

// ByCoordinates создаёт область поиска по центральной точке и радиусу в километрах
func ByCoordinates(lat, lon, radiusKm float64) Scope {
	return Scope{lat: lat, lon: lon, radiusKm: radiusKm, byCoords: true}
}

// IsCoordinates сообщает, задана ли область координатами, а не городом
func (s Scope) IsCoordinates() bool {
	return s.byCoords
}

// City возвращает название города; пустая строка для координатной области
func (s Scope) City() string {
	if s.byCoords {
		return ""
	}
	return s.city
}

// Center возвращает широту и долготу центра координатной области
func (s Scope) Center() (lat, lon float64) {
	return s.lat, s.lon
}

// RadiusKm возвращает радиус поиска в километрах
func (s Scope) RadiusKm() float64 {
	return s.radiusKm
}

// StorageKey возвращает стабильный ключ для имени файла снапшота.
// Для города — название с заменой пробелов на подчёркивания,
// для координат — coords_<lat>_<lon>_r<radius> с четырьмя знаками после запятой.
func (s Scope) StorageKey() string {
	if s.byCoords {
		radius := strconv.FormatFloat(s.radiusKm, 'f', -1, 64)
		return fmt.Sprintf("coords_%.4f_%.4f_r%s", s.lat, s.lon, radius)
	}
	return strings.ReplaceAll(s.city, " ", "_")
}
