package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/avc-dev/resort-finder/internal/model"
)

var errBadScope = errors.New("bad scope parameters")

// scopeFromQuery строит область поиска из query-параметров GET эндпоинтов:
// либо city, либо coordinates="долгота,широта" вместе с radius.
func scopeFromQuery(city, coordinates, radius string) (model.Scope, error) {
	city = strings.TrimSpace(city)
	if city != "" {
		return model.ByCity(city), nil
	}

	if coordinates == "" || radius == "" {
		return model.Scope{}, errBadScope
	}

	parts := strings.Split(coordinates, ",")
	if len(parts) != 2 {
		return model.Scope{}, errBadScope
	}

	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	radiusKm, errRadius := strconv.ParseFloat(radius, 64)
	if errLon != nil || errLat != nil || errRadius != nil || radiusKm <= 0 {
		return model.Scope{}, errBadScope
	}

	return model.ByCoordinates(lat, lon, radiusKm), nil
}

// scopeFromBody строит область поиска из JSON тела: city имеет приоритет,
// иначе пара coordinates [долгота, широта] с радиусом.
func scopeFromBody(city string, coordinates []float64, radius float64) (model.Scope, error) {
	city = strings.TrimSpace(city)
	if city != "" {
		return model.ByCity(city), nil
	}

	if len(coordinates) != 2 || radius <= 0 {
		return model.Scope{}, errBadScope
	}

	return model.ByCoordinates(coordinates[1], coordinates[0], radius), nil
}
