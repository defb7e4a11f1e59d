package excel

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Курортные организации"

// maxColumnWidth ограничивает автоподбор ширины колонок
const maxColumnWidth = 50

var headers = []string{
	"Название организации",
	"Координаты (широта/долгота)",
	"ID организации",
	"Полный адрес",
	"Веб-сайт",
	"E-mail",
	"Тип организации",
	"Город поиска",
}

// Export строит книгу с одной таблицей организаций: строка стилизованных
// заголовков и по строке на организацию, восемь фиксированных колонок.
func Export(orgs []model.Organization) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	widths := make([]int, len(headers))

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
		widths[col] = len([]rune(header))
	}

	for row, org := range orgs {
		values := []string{
			org.Name,
			formatCoordinates(org.Coordinates),
			org.YandexID,
			org.FullAddress,
			org.Website,
			org.Email,
			org.Type,
			org.City,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
			if length := len([]rune(value)); length > widths[col] {
				widths[col] = length
			}
		}
	}

	for col, width := range widths {
		width += 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// formatCoordinates печатает пару как "широта, долгота" с шестью знаками.
// В записи координаты лежат в порядке [долгота, широта].
func formatCoordinates(coords []float64) string {
	if len(coords) < 2 {
		return ""
	}
	return fmt.Sprintf("%.6f, %.6f", coords[1], coords[0])
}

// cityTranslit — транслитерация популярных городов для имени файла
var cityTranslit = map[string]string{
	"бэтта":            "betta",
	"москва":           "moscow",
	"санкт-петербург":  "saint_petersburg",
	"сочи":             "sochi",
	"екатеринбург":     "ekaterinburg",
	"новосибирск":      "novosibirsk",
	"казань":           "kazan",
	"нижний новгород":  "nizhny_novgorod",
	"челябинск":        "chelyabinsk",
	"самара":           "samara",
	"омск":             "omsk",
	"ростов-на-дону":   "rostov_on_don",
	"уфа":              "ufa",
	"красноярск":       "krasnoyarsk",
	"пермь":            "perm",
	"волгоград":        "volgograd",
	"воронеж":          "voronezh",
	"саратов":          "saratov",
	"краснодар":        "krasnodar",
	"тольятти":         "tolyatti",
}

// FileName строит безопасное имя экспортного файла для области поиска
func FileName(scope model.Scope) string {
	if scope.IsCoordinates() {
		return scope.StorageKey() + ".xlsx"
	}

	city := strings.ToLower(scope.City())
	if translit, ok := cityTranslit[city]; ok {
		return translit + ".xlsx"
	}

	// Кириллица сохраняется: у городов вне таблицы транслитерации имена
	// файлов всё равно должны различаться
	safe := strings.NewReplacer(" ", "_", "-", "_").Replace(city)
	var b strings.Builder
	for _, r := range safe {
		if r == '_' || unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		name = "export"
	}

	return name + ".xlsx"
}
