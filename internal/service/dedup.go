package service

import (
	"fmt"
	"strings"

	"github.com/avc-dev/resort-finder/internal/model"
)

// Dedup убирает организации, повторяющие адрес или сайт уже встреченной
// записи. Порядок входа значим: первая запись всегда выигрывает, поэтому
// вызывающий код должен подавать результаты в стабильном порядке
// (порядок категорий, внутри категории — порядок ответа API).
// Пустые адреса и сайты между собой не конфликтуют.
func Dedup(orgs []model.Organization) []model.Organization {
	seenAddresses := make(map[string]struct{}, len(orgs))
	seenWebsites := make(map[string]struct{}, len(orgs))

	result := make([]model.Organization, 0, len(orgs))

	for i, org := range orgs {
		address := normalizeKey(org.FullAddress)
		website := normalizeKey(org.Website)

		if address != "" {
			if _, ok := seenAddresses[address]; ok {
				continue
			}
		}
		if website != "" {
			if _, ok := seenWebsites[website]; ok {
				continue
			}
		}

		// Для пустых полей подставляем уникальный ключ, чтобы две записи
		// без адреса не склеились через пустую строку
		if address == "" {
			address = fmt.Sprintf("__no_address_%d", i)
		}
		if website == "" {
			website = fmt.Sprintf("__no_website_%d", i)
		}

		seenAddresses[address] = struct{}{}
		seenWebsites[website] = struct{}{}
		result = append(result, org)
	}

	return result
}

// normalizeKey приводит ключ дедупликации к каноничному виду
func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
