package application

import (
	"errors"
	"testing"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func ptr(t time.Time) *time.Time { return &t }

func baseApp(s Status) *Application {
	return &Application{
		ID:          "yap-1",
		Status:      s,
		UnitID:      "unt-1",
		FirstName:   "Matthew",
		LastName:    "Reece",
		DateOfBirth: date(2002, 1, 15),
	}
}

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		status Status
		extra  []Field
	}{
		{StatusCreated, nil},
		{StatusGuardianApproval, nil},
		{StatusUnitApproval, guardianApprovalFields},
		{StatusFeePending, append(append([]Field{}, guardianApprovalFields...), unitApprovalFields...)},
		{StatusReadyToRecord, append(append([]Field{}, guardianApprovalFields...), unitApprovalFields...)},
		{StatusComplete, append(append(append([]Field{}, guardianApprovalFields...), unitApprovalFields...), FieldRecordedDate)},
		{StatusRejected, rejectionFields},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			want := append(append([]Field{}, baseFields...), tt.extra...)
			assert.Equal(t, want, RequiredFields(tt.status))
		})
	}
}

func TestRequiredFields_FeeFieldsNeverRequired(t *testing.T) {
	for _, s := range Statuses() {
		for _, f := range RequiredFields(s) {
			assert.NotContains(t, []string{"fee_payment_user_id", "fee_payment_receipt", "fee_payment_date"}, string(f), s)
		}
	}
}

func TestValidate_ListsEveryMissingField(t *testing.T) {
	a := &Application{Status: StatusUnitApproval}
	err := a.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidObject))

	v := entity.Violations(err)
	for _, f := range RequiredFields(StatusUnitApproval) {
		if f == FieldStatus {
			continue
		}
		assert.Contains(t, v, "missing required field "+string(f))
	}
}

func TestValidate_UnknownStatus(t *testing.T) {
	a := baseApp("approved-ish")
	err := a.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{`invalid status "approved-ish"`}, entity.Violations(err))
}

func TestValidate_ReadyToRecordWithoutFees(t *testing.T) {
	a := baseApp(StatusReadyToRecord)
	a.GuardianApprovalGuardianID, a.GuardianApprovalSignature, a.GuardianApprovalDate = "gdn-1", "Sig", ptr(date(2024, 3, 1))
	a.UnitApprovalUserID, a.UnitApprovalSignature, a.UnitApprovalDate = "usr-1", "Sig", ptr(date(2024, 3, 2))
	assert.NoError(t, a.Validate())
}

func TestValidate_RejectedNeedsOnlyRejectionFields(t *testing.T) {
	a := baseApp(StatusRejected)
	err := a.Validate()
	assert.Equal(t, []string{"missing required field rejection_date", "missing required field rejection_reason"}, entity.Violations(err))

	a.RejectionDate, a.RejectionReason = ptr(date(2024, 3, 1)), "no"
	assert.NoError(t, a.Validate())
}

func TestValidate_IsNotCached(t *testing.T) {
	a := baseApp(StatusCreated)
	require.NoError(t, a.Validate())
	a.FirstName = ""
	assert.Error(t, a.Validate())
}
