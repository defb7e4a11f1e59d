package usecase

import (
	"github.com/avc-dev/resort-finder/internal/excel"
	"github.com/avc-dev/resort-finder/internal/model"
)

// ExportExcel собирает книгу с организациями области поиска и возвращает
// её содержимое вместе с именем файла. Пустая область — ошибка, а не
// пустой файл.
func (u *FinderUsecase) ExportExcel(scope model.Scope) ([]byte, string, error) {
	orgs := u.GetOrganizations(scope)
	if len(orgs) == 0 {
		return nil, "", ErrNoExportData
	}

	data, err := excel.Export(orgs)
	if err != nil {
		return nil, "", err
	}

	return data, excel.FileName(scope), nil
}
