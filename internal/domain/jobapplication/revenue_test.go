package jobapplication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeWorkerRevenue_OnlyCompleted(t *testing.T) {
	done := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	rows := []RevenueRow{
		{ApplicationID: 1, JobID: 10, JobName: "Barista", Salary: 100, WorkStatus: WorkStatusCompleted, CompletedAt: &done},
		{ApplicationID: 2, JobID: 11, JobName: "Cook", Salary: 250, WorkStatus: WorkStatusAssigned},
		{ApplicationID: 3, JobID: 12, JobName: "Host", Salary: 40, WorkStatus: WorkStatusCompleted},
		{ApplicationID: 4, JobID: 13, JobName: "Runner", Salary: 999, WorkStatus: WorkStatusPending},
	}

	got := SummarizeWorkerRevenue(rows)

	assert.Equal(t, int64(140), got.TotalSalary)
	assert.Len(t, got.Jobs, 2)
	assert.Equal(t, uint(10), got.Jobs[0].JobID)
	assert.Equal(t, &done, got.Jobs[0].ToDateTime)
	assert.Equal(t, uint(12), got.Jobs[1].JobID)
}

func TestSummarizeWorkerRevenue_Empty(t *testing.T) {
	got := SummarizeWorkerRevenue(nil)
	assert.Zero(t, got.TotalSalary)
	assert.NotNil(t, got.Jobs)
	assert.Empty(t, got.Jobs)
}

func TestSummarizePendingRevenue_TotalMatchesWorkers(t *testing.T) {
	rows := []RevenueRow{
		{ApplicationID: 1, JobID: 1, Salary: 120, WorkerID: 7, FirstName: "Ann", LastName: "Lee", WorkerEmail: "ann@x.io"},
		{ApplicationID: 2, JobID: 2, Salary: 80, WorkerID: 3, FirstName: "Bo"},
		{ApplicationID: 3, JobID: 3, Salary: 30, WorkerID: 7, FirstName: "Ann", LastName: "Lee", WorkerEmail: "ann@x.io"},
	}

	got := SummarizePendingRevenue(rows)

	assert.Len(t, got.Workers, 2)
	assert.Equal(t, uint(3), got.Workers[0].WorkerID)
	assert.Equal(t, "Bo", got.Workers[0].WorkerName)
	assert.Equal(t, int64(80), got.Workers[0].Total)

	assert.Equal(t, uint(7), got.Workers[1].WorkerID)
	assert.Equal(t, "Ann Lee", got.Workers[1].WorkerName)
	assert.Equal(t, int64(150), got.Workers[1].Total)
	assert.Len(t, got.Workers[1].Jobs, 2)

	var sum int64
	for _, w := range got.Workers {
		sum += w.Total
	}
	assert.Equal(t, sum, got.TotalPending)
	assert.Equal(t, int64(230), got.TotalPending)
}

func TestSummarizePendingRevenue_Empty(t *testing.T) {
	got := SummarizePendingRevenue(nil)
	assert.Zero(t, got.TotalPending)
	assert.Empty(t, got.Workers)
}
