package jobapplication

type CreateApplicationInput struct {
	JobID uint `json:"job_id" binding:"required" example:"12"`
}

// UpdateStatusInput lets an admin drive the workflow through one endpoint.
// Exactly one of the fields is expected; each maps to a workflow action.
type UpdateStatusInput struct {
	ApprovedStatus *ApprovedStatus `json:"approved_status,omitempty" binding:"omitempty,oneof=approved rejected"`
	WorkStatus     *WorkStatus     `json:"work_status,omitempty" binding:"omitempty,oneof=completed"`
	PaymentStatus  *PaymentStatus  `json:"payment_status,omitempty" binding:"omitempty,oneof=paid rejected"`
}

type PaymentInput struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required,oneof=paid rejected" example:"paid"`
}

// Event is pushed to admin subscribers when an application changes.
type Event struct {
	Type          string         `json:"type"`
	ApplicationID uint           `json:"application_id"`
	JobID         uint           `json:"job_id"`
	WorkerID      uint           `json:"worker_id"`
	AdminID       uint           `json:"-"`
	Approved      ApprovedStatus `json:"approved_status"`
	Work          WorkStatus     `json:"work_status"`
	Payment       PaymentStatus  `json:"payment_status"`
}

const (
	EventApplied   = "application.created"
	EventApproved  = "application.approved"
	EventRejected  = "application.rejected"
	EventCompleted = "application.completed"
	EventPayment   = "application.payment"
	EventWithdrawn = "application.withdrawn"
)

func NewEvent(kind string, adminID uint, a JobApplication) Event {
	return Event{
		Type:          kind,
		ApplicationID: a.ID,
		JobID:         a.JobID,
		WorkerID:      a.WorkerID,
		AdminID:       adminID,
		Approved:      a.ApprovedStatus,
		Work:          a.WorkStatus,
		Payment:       a.PaymentStatus,
	}
}
