package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/resort-finder/internal/model"
	"go.uber.org/zap"
)

// OrganizationStore хранит снапшоты результатов поиска: по одному JSON файлу
// на область поиска. Каждое сохранение полностью заменяет предыдущий снапшот,
// версионирования и миграций формата нет.
type OrganizationStore struct {
	dir    string
	logger *zap.Logger
}

// NewOrganizationStore создаёт хранилище снапшотов в указанной директории
func NewOrganizationStore(dir string, logger *zap.Logger) *OrganizationStore {
	return &OrganizationStore{
		dir:    dir,
		logger: logger,
	}
}

// Save сериализует список организаций в файл области поиска, создавая
// директорию при необходимости. Старый снапшот в legacy-формате для той же
// области удаляется перед записью.
func (s *OrganizationStore) Save(scope model.Scope, orgs []model.Organization) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create exports directory: %w", err)
	}

	// Снапшоты старого формата (pickle из предыдущей версии сервиса) больше
	// не читаются — убираем, чтобы не копить мусор рядом с актуальным файлом
	legacy := filepath.Join(s.dir, "data_"+scope.StorageKey()+".pkl")
	if err := os.Remove(legacy); err == nil {
		s.logger.Info("Removed legacy snapshot", zap.String("path", legacy))
	}

	data, err := json.MarshalIndent(orgs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal organizations: %w", err)
	}

	path := s.filePath(scope)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Info("Snapshot saved",
		zap.String("path", path),
		zap.Int("organizations", len(orgs)),
	)

	return nil
}

// Load возвращает снапшот области поиска. Отсутствующий или повреждённый
// файл — это пустой результат, а не ошибка: повреждение логируется, и
// вызывающий код работает дальше с пустым списком.
func (s *OrganizationStore) Load(scope model.Scope) []model.Organization {
	path := s.filePath(scope)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read snapshot", zap.String("path", path), zap.Error(err))
		}
		return []model.Organization{}
	}

	var orgs []model.Organization
	if err := json.Unmarshal(data, &orgs); err != nil {
		s.logger.Warn("Snapshot is corrupt, returning empty list",
			zap.String("path", path),
			zap.Error(err),
		)
		return []model.Organization{}
	}

	if orgs == nil {
		return []model.Organization{}
	}

	return orgs
}

// filePath возвращает путь к файлу снапшота для области поиска
func (s *OrganizationStore) filePath(scope model.Scope) string {
	return filepath.Join(s.dir, "data_"+scope.StorageKey()+".json")
}
