package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/ecomistry/backoffice-api/internal/config"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/stretchr/testify/assert"
)

// fakeFinanceService registra os meses sincronizados; os demais métodos da
// interface não são usados pelo agendador
type fakeFinanceService struct {
	finance.FinanceService

	mu     sync.Mutex
	months []string
	fail   map[string]error
}

func (f *fakeFinanceService) SyncMonth(month string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.fail[month]; ok {
		return 0, err
	}
	f.months = append(f.months, month)
	return 1, nil
}

func (f *fakeFinanceService) syncedMonths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.months...)
}

func newSyncService(fake *fakeFinanceService, lookback int) *FinanceSnapshotSyncService {
	return NewFinanceSnapshotSyncService(fake, &config.Config{
		FinanceSnapshotSync: config.FinanceSnapshotSync{
			CronSchedule:  "0 4 1 * *",
			Enabled:       true,
			MonthLookback: lookback,
		},
	})
}

func TestSyncFinanceSnapshots(t *testing.T) {
	fake := &fakeFinanceService{}
	service := newSyncService(fake, 3)

	service.syncFinanceSnapshots()

	expected := []string{
		time.Now().AddDate(0, -1, 0).Format("01-2006"),
		time.Now().AddDate(0, -2, 0).Format("01-2006"),
		time.Now().AddDate(0, -3, 0).Format("01-2006"),
	}
	assert.Equal(t, expected, fake.syncedMonths())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 3, status["month_lookback"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncFinanceSnapshots_MonthFailureContinues(t *testing.T) {
	failing := time.Now().AddDate(0, -1, 0).Format("01-2006")
	fake := &fakeFinanceService{fail: map[string]error{failing: assert.AnError}}
	service := newSyncService(fake, 2)

	service.syncFinanceSnapshots()

	// O mês com erro é pulado, o restante do fechamento continua
	expected := []string{time.Now().AddDate(0, -2, 0).Format("01-2006")}
	assert.Equal(t, expected, fake.syncedMonths())
}

func TestSyncFinanceSnapshots_AlreadyRunning(t *testing.T) {
	fake := &fakeFinanceService{}
	service := newSyncService(fake, 3)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.syncFinanceSnapshots()

	assert.Empty(t, fake.syncedMonths())
}

func TestGetStatus(t *testing.T) {
	service := newSyncService(&fakeFinanceService{}, 6)

	status := service.GetStatus()

	assert.Equal(t, "0 4 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 6, status["month_lookback"])
	assert.Equal(t, false, status["sync_running"])
}
