package jobapplication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Approve(t *testing.T) {
	got, err := Next(State{ApprovedStatusApplied, WorkStatusPending}, ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, State{ApprovedStatusApproved, WorkStatusAssigned}, got)
}

func TestNext_RejectKeepsWorkPending(t *testing.T) {
	got, err := Next(State{ApprovedStatusApplied, WorkStatusPending}, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, ApprovedStatusRejected, got.Approved)
	assert.Equal(t, WorkStatusPending, got.Work)
}

func TestNext_Complete(t *testing.T) {
	got, err := Next(State{ApprovedStatusApproved, WorkStatusAssigned}, ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, WorkStatusCompleted, got.Work)
}

func TestNext_Refused(t *testing.T) {
	cases := []struct {
		name   string
		from   State
		action Action
	}{
		{"approve twice", State{ApprovedStatusApproved, WorkStatusAssigned}, ActionApprove},
		{"approve rejected", State{ApprovedStatusRejected, WorkStatusPending}, ActionApprove},
		{"reject approved", State{ApprovedStatusApproved, WorkStatusAssigned}, ActionReject},
		{"complete unapproved", State{ApprovedStatusApplied, WorkStatusPending}, ActionComplete},
		{"complete twice", State{ApprovedStatusApproved, WorkStatusCompleted}, ActionComplete},
		{"unknown action", State{ApprovedStatusApplied, WorkStatusPending}, Action("archive")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Next(tc.from, tc.action)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tc.from, got)
		})
	}
}

func TestIsPaymentTransitionAllowed(t *testing.T) {
	assert.True(t, IsPaymentTransitionAllowed(PaymentStatusPending, PaymentStatusPaid))
	assert.True(t, IsPaymentTransitionAllowed(PaymentStatusPending, PaymentStatusRejected))
	assert.False(t, IsPaymentTransitionAllowed(PaymentStatusPaid, PaymentStatusPending))
	assert.False(t, IsPaymentTransitionAllowed(PaymentStatusRejected, PaymentStatusPaid))
	assert.False(t, IsPaymentTransitionAllowed(PaymentStatusPending, PaymentStatusPending))
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseApprovedStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, ApprovedStatusApproved, s)

	_, err = ParseApprovedStatus("hired")
	assert.Error(t, err)

	p, err := ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, p)

	_, err = ParsePaymentStatus("")
	assert.Error(t, err)
}

func TestNewApplicationInitialState(t *testing.T) {
	a := New(3, 9)
	assert.Equal(t, uint(3), a.JobID)
	assert.Equal(t, uint(9), a.WorkerID)
	assert.Equal(t, State{ApprovedStatusApplied, WorkStatusPending}, a.State())
	assert.Equal(t, PaymentStatusPending, a.PaymentStatus)
}
