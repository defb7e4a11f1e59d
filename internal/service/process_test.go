package service

import (
	"testing"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessManager_BeginFinish(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	ctx, runID, err := m.Begin(ProcessSearchNames)
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.NotEmpty(t, runID)
	assert.True(t, m.IsRunning(ProcessSearchNames))

	// Второй запуск того же типа отклоняется, пока первый не завершён
	_, _, err = m.Begin(ProcessSearchNames)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	// Независимый тип процесса запускается свободно
	_, _, err = m.Begin(ProcessSearchEmails)
	require.NoError(t, err)

	m.Finish(ProcessSearchNames, runID)
	assert.False(t, m.IsRunning(ProcessSearchNames))
	assert.True(t, m.IsRunning(ProcessSearchEmails))

	_, _, err = m.Begin(ProcessSearchNames)
	assert.NoError(t, err)
}

func TestProcessManager_StaleFinishDoesNotTouchNewRun(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	// Запуск A остановлен, следом стартует запуск B того же типа
	_, runA, err := m.Begin(ProcessSearchNames)
	require.NoError(t, err)
	require.NoError(t, m.Stop(ProcessSearchNames))

	ctxB, runB, err := m.Begin(ProcessSearchNames)
	require.NoError(t, err)
	require.NotEqual(t, runA, runB)

	// Отложенный Finish задачи A не должен ни отменить контекст B,
	// ни опустить его флаг
	m.Finish(ProcessSearchNames, runA)

	assert.NoError(t, ctxB.Err())
	assert.True(t, m.IsRunning(ProcessSearchNames))

	// Пока B идёт, третий запуск по-прежнему отклоняется
	_, _, err = m.Begin(ProcessSearchNames)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	m.Finish(ProcessSearchNames, runB)
	assert.False(t, m.IsRunning(ProcessSearchNames))
}

func TestProcessManager_StopCancelsContext(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	ctx, _, err := m.Begin(ProcessSearchNames)
	require.NoError(t, err)

	require.NoError(t, m.Stop(ProcessSearchNames))

	// Флаг сброшен сразу, контекст запуска отменён
	assert.False(t, m.IsRunning(ProcessSearchNames))
	assert.Error(t, ctx.Err())
}

func TestProcessManager_StopUnknownType(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	_, _, err := m.Begin(ProcessSearchNames)
	require.NoError(t, err)

	err = m.Stop("search_phones")
	assert.ErrorIs(t, err, ErrUnknownProcess)

	// Ошибка не трогает флаги существующих процессов
	assert.True(t, m.IsRunning(ProcessSearchNames))
	assert.False(t, m.IsRunning(ProcessSearchEmails))
}

func TestProcessManager_StopIdleProcess(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	// Остановка незапущенного процесса не считается ошибкой
	assert.NoError(t, m.Stop(ProcessSearchEmails))
}

func TestProcessManager_Snapshot(t *testing.T) {
	m := NewProcessManager(zap.NewNop())

	flags, count := m.Snapshot()
	assert.Equal(t, map[string]bool{ProcessSearchNames: false, ProcessSearchEmails: false}, flags)
	assert.Zero(t, count)

	_, _, err := m.Begin(ProcessSearchEmails)
	require.NoError(t, err)
	m.CacheResults(model.ByCity("Сочи"), []model.Organization{{Name: "A"}, {Name: "B"}})

	flags, count = m.Snapshot()
	assert.True(t, flags[ProcessSearchEmails])
	assert.False(t, flags[ProcessSearchNames])
	assert.Equal(t, 2, count)
}

func TestProcessManager_ResultCache(t *testing.T) {
	m := NewProcessManager(zap.NewNop())
	scope := model.ByCity("Сочи")

	_, ok := m.CachedResults(scope)
	assert.False(t, ok)

	m.CacheResults(scope, []model.Organization{{Name: "A"}})

	cached, ok := m.CachedResults(scope)
	require.True(t, ok)
	assert.Len(t, cached, 1)

	// Кеш привязан к области поиска
	_, ok = m.CachedResults(model.ByCity("Анапа"))
	assert.False(t, ok)

	m.ResetResults()
	_, ok = m.CachedResults(scope)
	assert.False(t, ok)
}
