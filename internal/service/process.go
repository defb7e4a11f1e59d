package service

import (
	"context"
	"errors"
	"sync"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Типы фоновых процессов, известные менеджеру. Значения входят в API
// (/api/stop_process, /api/get_status) и менять их нельзя.
const (
	ProcessSearchNames  = "search_names"
	ProcessSearchEmails = "search_emails"
)

var (
	ErrAlreadyRunning = errors.New("process already running")
	ErrUnknownProcess = errors.New("unknown process type")
)

// ProcessManager владеет состоянием фоновых процессов: флагами выполнения,
// функциями отмены и кешем результатов последнего поиска. Все обращения
// идут под мьютексом — одновременные запросы статуса, запуска и остановки
// не гонят по общему состоянию.
//
// На каждый тип процесса допускается не больше одного активного запуска.
type ProcessManager struct {
	mu      sync.Mutex
	running map[string]bool
	cancels map[string]context.CancelFunc
	runIDs  map[string]string

	lastScopeKey string
	lastResults  []model.Organization

	logger *zap.Logger
}

// NewProcessManager создаёт менеджер с обоими процессами в состоянии "не запущен"
func NewProcessManager(logger *zap.Logger) *ProcessManager {
	return &ProcessManager{
		running: map[string]bool{
			ProcessSearchNames:  false,
			ProcessSearchEmails: false,
		},
		cancels: make(map[string]context.CancelFunc),
		runIDs:  make(map[string]string),
		logger:  logger,
	}
}

// Begin занимает процесс указанного типа и возвращает контекст его запуска
// и идентификатор для логов. Если процесс уже идёт — ErrAlreadyRunning.
func (m *ProcessManager) Begin(kind string) (context.Context, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, known := m.running[kind]; !known {
		return nil, "", ErrUnknownProcess
	}
	if m.running[kind] {
		return nil, "", ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	runID := uuid.New().String()
	m.running[kind] = true
	m.cancels[kind] = cancel
	m.runIDs[kind] = runID

	m.logger.Info("Process started", zap.String("kind", kind), zap.String("run_id", runID))

	return ctx, runID, nil
}

// Finish освобождает процесс. Вызывается самим процессом при любом исходе
// (успех, отмена, ошибка) — флаг не может остаться поднятым. Если после
// Stop процесс этого типа уже перезапущен, устаревший вызов ничего не
// делает: новый запуск принадлежит другому runID.
func (m *ProcessManager) Finish(kind, runID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.runIDs[kind] != runID {
		return
	}

	m.release(kind)
}

// Stop отменяет контекст процесса и сразу сбрасывает флаг, не дожидаясь,
// пока процесс заметит отмену. Неизвестный тип — ErrUnknownProcess.
func (m *ProcessManager) Stop(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, known := m.running[kind]; !known {
		return ErrUnknownProcess
	}

	m.release(kind)

	m.logger.Info("Process stopped", zap.String("kind", kind))

	return nil
}

// release отменяет контекст запуска и опускает флаг. Вызывается под мьютексом.
func (m *ProcessManager) release(kind string) {
	if cancel, ok := m.cancels[kind]; ok {
		cancel()
		delete(m.cancels, kind)
	}
	delete(m.runIDs, kind)
	m.running[kind] = false
}

// IsRunning сообщает, идёт ли сейчас процесс указанного типа
func (m *ProcessManager) IsRunning(kind string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.running[kind]
}

// Snapshot возвращает копию флагов и количество организаций в кеше
func (m *ProcessManager) Snapshot() (map[string]bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flags := make(map[string]bool, len(m.running))
	for kind, active := range m.running {
		flags[kind] = active
	}

	return flags, len(m.lastResults)
}

// CacheResults запоминает результаты последнего завершённого запуска
func (m *ProcessManager) CacheResults(scope model.Scope, orgs []model.Organization) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastScopeKey = scope.StorageKey()
	m.lastResults = orgs
}

// ResetResults очищает кеш результатов. Вызывается в начале нового поиска,
// чтобы статус не показывал данные предыдущего запуска.
func (m *ProcessManager) ResetResults() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastScopeKey = ""
	m.lastResults = nil
}

// CachedResults возвращает кеш последнего запуска, если он относится к этой
// же области поиска
func (m *ProcessManager) CachedResults(scope model.Scope) ([]model.Organization, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastResults == nil || m.lastScopeKey != scope.StorageKey() {
		return nil, false
	}

	return m.lastResults, true
}
