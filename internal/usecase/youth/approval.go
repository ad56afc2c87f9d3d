package youth

import (
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	domainYouth "github.com/ScoutDevs/Rechartering/internal/domain/youth"
)

// GrantGuardianApproval puts a guardian's standing approval on file for y,
// independent of any application.
func GrantGuardianApproval(actor security.Actor, y *domainYouth.Youth, in GuardianApprovalInput, today time.Time) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "grant guardian approval", security.RoleGuardian); err != nil {
		return y, err
	}
	if in.GuardianID == "" {
		in.GuardianID = actor.GuardianID
	}
	date := today
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	y.PutApprovalOnFile(in.GuardianID, in.Signature, date)
	return y, y.Validate()
}

// RevokeGuardianApproval clears the approval on file. Only the guardian who
// granted it may revoke it.
func RevokeGuardianApproval(actor security.Actor, g *guardian.Guardian, y *domainYouth.Youth) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "revoke guardian approval", security.RoleGuardian); err != nil {
		return y, err
	}
	if g == nil || g.ID == "" || g.ID != y.GuardianApprovalGuardianID {
		return y, entity.InvalidAction("only the guardian who granted approval can revoke it")
	}
	y.ClearApproval()
	return y, nil
}
