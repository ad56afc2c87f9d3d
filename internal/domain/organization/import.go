package organization

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// ErrInvalidImportFile marks a council file that cannot be processed at all.
var ErrInvalidImportFile = errors.New("invalid import file")

// Headers the council spreadsheet must carry. Extra columns are ignored.
const (
	HeaderDistrictNumber    = "District No"
	HeaderDistrictName      = "District Name"
	HeaderSubdistrictNumber = "Sub District #"
	HeaderSubdistrictName   = "Stake/Sub District Name"
	HeaderUnitNumber        = "Unit No"
	HeaderSponsoringOrgName = "Ward/Sponsoring Org"
)

var requiredHeaders = []string{
	HeaderDistrictNumber,
	HeaderDistrictName,
	HeaderSubdistrictNumber,
	HeaderSubdistrictName,
	HeaderUnitNumber,
	HeaderSponsoringOrgName,
}

// ImportRecord is one usable row of the council file.
type ImportRecord struct {
	DistrictNumber    string
	DistrictName      string
	SubdistrictNumber string // "<district no>-<sub district #>"
	SubdistrictName   string
	SponsoringNumber  string
	SponsoringName    string
}

// ParseImport reads a tab-separated council file. Rows missing any required
// value are skipped; a missing header fails the whole file.
func ParseImport(r io.Reader) ([]ImportRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidImportFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, h := range requiredHeaders {
		if _, ok := col[h]; !ok {
			return nil, fmt.Errorf("%w: header %q not found", ErrInvalidImportFile, h)
		}
	}

	var out []ImportRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
		}
		get := func(h string) string {
			i := col[h]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		complete := true
		for _, h := range requiredHeaders {
			if get(h) == "" {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		out = append(out, ImportRecord{
			DistrictNumber:    get(HeaderDistrictNumber),
			DistrictName:      get(HeaderDistrictName),
			SubdistrictNumber: get(HeaderDistrictNumber) + "-" + get(HeaderSubdistrictNumber),
			SubdistrictName:   get(HeaderSubdistrictName),
			SponsoringNumber:  get(HeaderUnitNumber),
			SponsoringName:    get(HeaderSponsoringOrgName),
		})
	}
	return out, nil
}

// Build turns the record into its three organizations with ids derived from the
// council numbers, so importing the same file twice updates rather than duplicates.
func (r ImportRecord) Build() (*District, *Subdistrict, *SponsoringOrganization) {
	d := &District{
		ID:     id.Derive(id.PrefixDistrict, r.DistrictNumber),
		Number: r.DistrictNumber,
		Name:   r.DistrictName,
	}
	s := &Subdistrict{
		ID:         id.Derive(id.PrefixSubdistrict, r.SubdistrictNumber),
		DistrictID: d.ID,
		Number:     r.SubdistrictNumber,
		Name:       r.SubdistrictName,
	}
	sp := &SponsoringOrganization{
		ID:            id.Derive(id.PrefixSponsoringOrganization, r.SubdistrictNumber+"/"+r.SponsoringNumber),
		SubdistrictID: s.ID,
		Number:        r.SponsoringNumber,
		Name:          r.SponsoringName,
	}
	return d, s, sp
}
