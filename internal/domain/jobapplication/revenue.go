package jobapplication

import (
	"sort"
	"time"
)

// RevenueRow is an application joined to its job, as read by the revenue queries.
type RevenueRow struct {
	ApplicationID uint       `gorm:"column:application_id"`
	JobID         uint       `gorm:"column:job_id"`
	JobName       string     `gorm:"column:job_name"`
	Salary        int64      `gorm:"column:salary"`
	JoinDate      *time.Time `gorm:"column:join_date"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
	WorkStatus    WorkStatus `gorm:"column:work_status"`
	WorkerID      uint       `gorm:"column:worker_id"`
	FirstName     string     `gorm:"column:first_name"`
	LastName      string     `gorm:"column:last_name"`
	WorkerEmail   string     `gorm:"column:worker_email"`
}

type Revenue struct {
	ApplicationID uint       `json:"application_id"`
	JobID         uint       `json:"job_id"`
	JobName       string     `json:"job_name"`
	Salary        int64      `json:"salary"`
	FromDateTime  *time.Time `json:"from_date_time"`
	ToDateTime    *time.Time `json:"to_date_time"`
}

type WorkerRevenue struct {
	TotalSalary int64     `json:"total_salary"`
	Jobs        []Revenue `json:"jobs"`
}

type WorkerPendingRevenue struct {
	WorkerID    uint      `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	WorkerEmail string    `json:"worker_email"`
	Total       int64     `json:"total"`
	Jobs        []Revenue `json:"jobs"`
}

type AdminRevenue struct {
	TotalPending int64                  `json:"total_pending"`
	Workers      []WorkerPendingRevenue `json:"workers"`
}

func (r RevenueRow) revenue() Revenue {
	return Revenue{
		ApplicationID: r.ApplicationID,
		JobID:         r.JobID,
		JobName:       r.JobName,
		Salary:        r.Salary,
		FromDateTime:  r.JoinDate,
		ToDateTime:    r.CompletedAt,
	}
}

// SummarizeWorkerRevenue sums salary over completed rows only; other rows are ignored.
func SummarizeWorkerRevenue(rows []RevenueRow) WorkerRevenue {
	out := WorkerRevenue{Jobs: []Revenue{}}
	for _, r := range rows {
		if r.WorkStatus != WorkStatusCompleted {
			continue
		}
		out.TotalSalary += r.Salary
		out.Jobs = append(out.Jobs, r.revenue())
	}
	return out
}

// SummarizePendingRevenue groups pending-payment rows by worker. TotalPending is
// always the sum of the per-worker totals.
func SummarizePendingRevenue(rows []RevenueRow) AdminRevenue {
	byWorker := make(map[uint]*WorkerPendingRevenue)
	for _, r := range rows {
		w, ok := byWorker[r.WorkerID]
		if !ok {
			name := r.FirstName
			if r.LastName != "" {
				name += " " + r.LastName
			}
			w = &WorkerPendingRevenue{
				WorkerID:    r.WorkerID,
				WorkerName:  name,
				WorkerEmail: r.WorkerEmail,
				Jobs:        []Revenue{},
			}
			byWorker[r.WorkerID] = w
		}
		w.Total += r.Salary
		w.Jobs = append(w.Jobs, r.revenue())
	}

	out := AdminRevenue{Workers: make([]WorkerPendingRevenue, 0, len(byWorker))}
	for _, w := range byWorker {
		out.Workers = append(out.Workers, *w)
		out.TotalPending += w.Total
	}
	sort.Slice(out.Workers, func(i, j int) bool {
		return out.Workers[i].WorkerID < out.Workers[j].WorkerID
	})
	return out
}
