package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/avc-dev/resort-finder/internal/model"
	"github.com/avc-dev/resort-finder/internal/service"
	"go.uber.org/zap"
)

// StartEmailSearch загружает снапшот города и запускает фоновое обогащение
// email адресами. Требует, чтобы поиск организаций уже выполнялся.
func (u *FinderUsecase) StartEmailSearch(city string) error {
	if city == "" {
		return ErrCityRequired
	}
	if err := u.email.Ready(); err != nil {
		return err
	}

	scope := model.ByCity(city)
	orgs := u.store.Load(scope)
	if len(orgs) == 0 {
		return ErrNoOrganizations
	}

	ctx, runID, err := u.procs.Begin(service.ProcessSearchEmails)
	if err != nil {
		return err
	}

	go u.runEmailSearch(ctx, runID, scope, orgs)

	return nil
}

// runEmailSearch — тело фонового обогащения. Записи обрабатываются по
// порядку; неудачный поиск помечает запись маркером и не прерывает цикл,
// отмена прерывает цикл целиком. Результат сохраняется в снапшот даже при
// частичном прохождении — попытки не повторяются при следующем запуске.
func (u *FinderUsecase) runEmailSearch(ctx context.Context, runID string, scope model.Scope, orgs []model.Organization) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("Email search task panicked", zap.String("run_id", runID), zap.Any("panic", r))
		}
		u.procs.Finish(service.ProcessSearchEmails, runID)
	}()

	for i := range orgs {
		if ctx.Err() != nil {
			u.logger.Info("Email search cancelled", zap.String("run_id", runID), zap.Int("processed", i))
			break
		}

		if orgs[i].Email != "" {
			continue
		}

		answer, err := u.email.FindEmail(ctx, orgs[i].Name, orgs[i].City)
		if ctx.Err() != nil {
			// Запрос оборван отменой — запись не трогаем, попытки не было
			break
		}

		switch {
		case err != nil:
			u.logger.Warn("Email lookup failed",
				zap.String("organization", orgs[i].Name),
				zap.Error(err),
			)
			orgs[i].Email = model.EmailNotFound
		case strings.Contains(answer, "@"):
			orgs[i].Email = answer
		default:
			orgs[i].Email = model.EmailNotFound
		}

		// Пауза между обращениями к модели сдерживает частоту запросов
		if !sleepCtx(ctx, u.cfg.EmailPause) {
			break
		}
	}

	// Обогащение долговечно: снапшот перезаписывается даже после отмены,
	// чтобы найденные адреса не потерялись
	if err := u.store.Save(scope, orgs); err != nil {
		u.logger.Error("Failed to save enriched snapshot", zap.String("run_id", runID), zap.Error(err))
	}

	u.procs.CacheResults(scope, orgs)

	u.logger.Info("Email search finished", zap.String("run_id", runID))
}

// sleepCtx спит заданное время, прерываясь по отмене контекста
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
