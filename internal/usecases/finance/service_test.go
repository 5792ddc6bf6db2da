package finance

import (
	"testing"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildMonthlySnapshots(t *testing.T) {
	generatedAt := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)

	revenues := []*domain.Revenue{
		{BrandID: "Aa11Bb", BrandName: "Alfa Fashion", TotalRevenue: 1000.555},
		{BrandID: "Cc22Dd", BrandName: "Beta Beauty", TotalRevenue: 400},
		{BrandID: "Aa11Bb", BrandName: "Alfa Fashion", TotalRevenue: 500},
	}
	expenses := []*domain.Expense{
		{BrandID: "Aa11Bb", BrandName: "Alfa Fashion", Category: domain.ExpenseAds, Amount: 300},
		{BrandID: "", Category: domain.ExpenseRent, Amount: 2000},
		{BrandID: "Cc22Dd", BrandName: "Beta Beauty", Category: domain.ExpenseAds, Amount: 600},
	}

	snapshots := BuildMonthlySnapshots("02-2026", revenues, expenses, generatedAt)

	if !assert.Len(t, snapshots, 3) {
		return
	}

	// A ordem segue a primeira aparição de cada marca no movimento do mês
	alfa, beta, overhead := snapshots[0], snapshots[1], snapshots[2]

	assert.Equal(t, "Aa11Bb", alfa.BrandID)
	assert.Equal(t, "02-2026", alfa.Month)
	assert.Equal(t, 1500.56, alfa.TotalRevenue)
	assert.Equal(t, float64(300), alfa.TotalExpenses)
	assert.Equal(t, 1200.56, alfa.Profit)
	assert.Equal(t, 80.01, alfa.ProfitMargin)
	assert.Equal(t, generatedAt, alfa.GeneratedAt)

	assert.Equal(t, "Cc22Dd", beta.BrandID)
	assert.Equal(t, float64(400), beta.TotalRevenue)
	assert.Equal(t, float64(600), beta.TotalExpenses)
	assert.Equal(t, float64(-200), beta.Profit)

	// Despesas sem marca fecham em um snapshot próprio de overhead
	assert.Equal(t, "", overhead.BrandID)
	assert.Equal(t, float64(0), overhead.TotalRevenue)
	assert.Equal(t, float64(2000), overhead.TotalExpenses)
	assert.Equal(t, float64(0), overhead.ProfitMargin)
}

func TestService_Report(t *testing.T) {
	t.Run("Período inválido é recusado antes de consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockRevenueRepository(ctrl),
			mocks.NewMockExpenseRepository(ctrl),
			mocks.NewMockFinanceSnapshotRepository(ctrl),
		)

		_, err := service.Report("2026-02")

		var financeErr *FinanceError
		if assert.ErrorAs(t, err, &financeErr) {
			assert.Equal(t, apiErrors.ErrInvalidFormat, financeErr.Code)
		}
	})

	t.Run("Fechamento já gravado é servido direto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshotRepo := mocks.NewMockFinanceSnapshotRepository(ctrl)
		service := NewService(
			mocks.NewMockRevenueRepository(ctrl),
			mocks.NewMockExpenseRepository(ctrl),
			snapshotRepo,
		)

		stored := []*domain.FinanceSnapshot{{BrandID: "Aa11Bb", Month: "02-2026"}}
		snapshotRepo.EXPECT().ListByMonth("02-2026").Return(stored, nil)

		snapshots, err := service.Report("02-2026")

		assert.NoError(t, err)
		assert.Equal(t, stored, snapshots)
	})

	t.Run("Mês sem fechamento é calculado na hora e persistido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		revenueRepo := mocks.NewMockRevenueRepository(ctrl)
		expenseRepo := mocks.NewMockExpenseRepository(ctrl)
		snapshotRepo := mocks.NewMockFinanceSnapshotRepository(ctrl)
		service := NewService(revenueRepo, expenseRepo, snapshotRepo)

		first := snapshotRepo.EXPECT().ListByMonth("02-2026").Return(nil, nil)

		revenueRepo.EXPECT().ListByRange(gomock.Any(), gomock.Any()).Return([]*domain.Revenue{
			{BrandID: "Aa11Bb", TotalRevenue: 1000},
		}, nil)
		expenseRepo.EXPECT().ListByRange(gomock.Any(), gomock.Any()).Return([]*domain.Expense{
			{BrandID: "Aa11Bb", Amount: 400},
		}, nil)
		snapshotRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(snapshot *domain.FinanceSnapshot) error {
			assert.Equal(t, "Aa11Bb", snapshot.BrandID)
			assert.Equal(t, float64(600), snapshot.Profit)
			return nil
		})

		computed := []*domain.FinanceSnapshot{{BrandID: "Aa11Bb", Month: "02-2026", Profit: 600}}
		snapshotRepo.EXPECT().ListByMonth("02-2026").Return(computed, nil).After(first)

		snapshots, err := service.Report("02-2026")

		assert.NoError(t, err)
		assert.Equal(t, computed, snapshots)
	})
}

func TestService_SyncMonth_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	snapshotRepo := mocks.NewMockFinanceSnapshotRepository(ctrl)
	service := NewService(revenueRepo, expenseRepo, snapshotRepo)

	revenueRepo.EXPECT().ListByRange(gomock.Any(), gomock.Any()).Return([]*domain.Revenue{
		{BrandID: "Aa11Bb", TotalRevenue: 1000},
		{BrandID: "Cc22Dd", TotalRevenue: 500},
	}, nil)
	expenseRepo.EXPECT().ListByRange(gomock.Any(), gomock.Any()).Return(nil, nil)

	// Falha em uma marca não derruba o fechamento das demais
	snapshotRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(snapshot *domain.FinanceSnapshot) error {
		if snapshot.BrandID == "Aa11Bb" {
			return assert.AnError
		}
		return nil
	}).Times(2)

	saved, err := service.SyncMonth("02-2026")

	assert.NoError(t, err)
	assert.Equal(t, 1, saved)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	revenueRepo := mocks.NewMockRevenueRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	service := NewService(revenueRepo, expenseRepo, mocks.NewMockFinanceSnapshotRepository(ctrl))

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	revenueRepo.EXPECT().ListByRange(start, end).Return([]*domain.Revenue{
		{BrandID: "Aa11Bb", BrandName: "Alfa Fashion", TotalRevenue: 1000},
		{BrandID: "Cc22Dd", BrandName: "Beta Beauty", TotalRevenue: 500},
	}, nil)
	expenseRepo.EXPECT().ListByRange(start, end).Return([]*domain.Expense{
		{BrandID: "Aa11Bb", Category: domain.ExpenseAds, Amount: 300},
		{BrandID: "", Category: domain.ExpenseRent, Amount: 200},
	}, nil)

	t.Run("Filtro por marca restringe receitas e despesas", func(t *testing.T) {
		summary, err := service.Summary(&start, &end, "Aa11Bb")

		assert.NoError(t, err)
		assert.Equal(t, float64(1000), summary.TotalRevenue)
		assert.Equal(t, float64(300), summary.TotalExpenses)
		assert.Equal(t, float64(700), summary.Profit)
		assert.Equal(t, float64(70), summary.ProfitMargin)
		assert.Equal(t, map[string]float64{"Alfa Fashion": 1000}, summary.RevenueByBrand)
		assert.Equal(t, map[string]float64{domain.ExpenseAds: 300}, summary.ExpensesByCategory)
	})
}
