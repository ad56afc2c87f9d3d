package organization

import (
	"context"
	"io"

	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
)

// ImportSummary counts what one council file produced. Organizations repeated
// across rows are counted once.
type ImportSummary struct {
	Records                 int `json:"records"`
	Districts               int `json:"districts"`
	Subdistricts            int `json:"subdistricts"`
	SponsoringOrganizations int `json:"sponsoring_organizations"`
}

// Import loads a council TSV export. Either every row is stored or none is.
func (u *Usecase) Import(ctx context.Context, actor security.Actor, file io.Reader) (*ImportSummary, error) {
	if err := security.Require(actor, "import organizations", writeRoles...); err != nil {
		return nil, err
	}
	records, err := domainOrg.ParseImport(file)
	if err != nil {
		return nil, err
	}

	var (
		districts    []*domainOrg.District
		subdistricts []*domainOrg.Subdistrict
		sporgs       []*domainOrg.SponsoringOrganization
		seen         = map[string]bool{}
	)
	for _, rec := range records {
		d, s, sp := rec.Build()
		if !seen[d.ID] {
			seen[d.ID] = true
			districts = append(districts, d)
		}
		if !seen[s.ID] {
			seen[s.ID] = true
			subdistricts = append(subdistricts, s)
		}
		if !seen[sp.ID] {
			seen[sp.ID] = true
			sporgs = append(sporgs, sp)
		}
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, d := range districts {
			if err := r.Organizations.SaveDistrict(ctx, d); err != nil {
				return err
			}
		}
		for _, s := range subdistricts {
			if err := r.Organizations.SaveSubdistrict(ctx, s); err != nil {
				return err
			}
		}
		for _, sp := range sporgs {
			if err := r.Organizations.SaveSponsoringOrganization(ctx, sp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		u.logger.WarnContext(ctx, "organization import failed", "records", len(records), "user_id", actor.UserID, "error", err)
		return nil, err
	}

	sum := &ImportSummary{
		Records:                 len(records),
		Districts:               len(districts),
		Subdistricts:            len(subdistricts),
		SponsoringOrganizations: len(sporgs),
	}
	u.metrics.AddImportedRecords(sum.Records)
	u.logger.InfoContext(ctx, "organizations imported",
		"records", sum.Records, "districts", sum.Districts, "subdistricts", sum.Subdistricts,
		"sponsoring_organizations", sum.SponsoringOrganizations, "user_id", actor.UserID)
	return sum, nil
}
