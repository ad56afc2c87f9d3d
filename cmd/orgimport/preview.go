package main

import (
	"fmt"
	"io"

	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
)

func preview(w io.Writer, r io.Reader) error {
	records, err := domainOrg.ParseImport(r)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.DistrictNumber, rec.DistrictName, rec.SubdistrictNumber, rec.SubdistrictName,
			rec.SponsoringNumber, rec.SponsoringName)
	}
	fmt.Fprintf(w, "%d records\n", len(records))
	return nil
}
