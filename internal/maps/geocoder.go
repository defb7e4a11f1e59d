package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/avc-dev/resort-finder/internal/model"
	"go.uber.org/zap"
)

var ErrNothingFound = errors.New("nothing found")

// geocodeResponse — форма ответа геокодера
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject geoObject `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

type geoObject struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	MetaDataProperty struct {
		GeocoderMetaData struct {
			ID      string `json:"id"`
			Text    string `json:"text"`
			Address struct {
				CountryCode string `json:"country_code"`
				Components  []struct {
					Kind string `json:"kind"`
					Name string `json:"name"`
				} `json:"Components"`
			} `json:"Address"`
		} `json:"GeocoderMetaData"`
	} `json:"metaDataProperty"`
	Point struct {
		Pos string `json:"pos"` // "долгота широта" через пробел
	} `json:"Point"`
}

// ReverseGeocode возвращает адрес и идентификатор ближайшего дома по
// координатам. Используется для дозаполнения адресов у результатов
// координатного поиска.
func (c *Client) ReverseGeocode(ctx context.Context, lon, lat float64) (model.GeocodeInfo, error) {
	if err := c.Ready(); err != nil {
		return model.GeocodeInfo{}, err
	}

	params := url.Values{}
	params.Set("geocode", formatFloat(lon)+","+formatFloat(lat))
	params.Set("kind", "house")
	params.Set("format", "json")
	params.Set("results", "1")
	params.Set("lang", "ru_RU")
	params.Set("apikey", c.geocoderKey)

	parsed, err := c.geocode(ctx, params)
	if err != nil {
		return model.GeocodeInfo{}, err
	}

	members := parsed.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return model.GeocodeInfo{}, ErrNothingFound
	}

	meta := members[0].GeoObject.MetaDataProperty.GeocoderMetaData

	return model.GeocodeInfo{
		YandexID:    meta.ID,
		FullAddress: meta.Text,
	}, nil
}

// SearchCities ищет населённые пункты по названию. Регион и страна берутся
// из компонентов адреса геокодера; отсутствующий регион вызывающий код
// дозаполняет по таблице регионов.
func (c *Client) SearchCities(ctx context.Context, name string) ([]model.City, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("geocode", name)
	params.Set("kind", "locality")
	params.Set("format", "json")
	params.Set("results", "10")
	params.Set("lang", "ru_RU")
	params.Set("apikey", c.geocoderKey)

	parsed, err := c.geocode(ctx, params)
	if err != nil {
		return nil, err
	}

	var cities []model.City
	for _, member := range parsed.Response.GeoObjectCollection.FeatureMember {
		obj := member.GeoObject
		meta := obj.MetaDataProperty.GeocoderMetaData

		city := model.City{
			Name:        obj.Name,
			FullAddress: meta.Text,
			Coordinates: parsePos(obj.Point.Pos),
		}

		for _, component := range meta.Address.Components {
			switch component.Kind {
			case "province":
				// У геокодера province встречается дважды (округ и регион),
				// последний уровень точнее
				city.Region = component.Name
			case "country":
				city.Country = component.Name
			}
		}

		cities = append(cities, city)
	}

	if len(cities) == 0 {
		return nil, ErrNothingFound
	}

	return cities, nil
}

// geocode выполняет запрос к геокодеру и разбирает ответ
func (c *Client) geocode(ctx context.Context, params url.Values) (*geocodeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoder returned unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	return &parsed, nil
}

// parsePos разбирает точку формата "долгота широта" в пару координат
func parsePos(pos string) []float64 {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil
	}

	lon, errLon := strconv.ParseFloat(parts[0], 64)
	lat, errLat := strconv.ParseFloat(parts[1], 64)
	if errLon != nil || errLat != nil {
		return nil
	}

	return []float64{lon, lat}
}
