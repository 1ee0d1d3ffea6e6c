package csv

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arcigy/coldlead"
	"golang.org/x/text/encoding/charmap"
)

// ReadLeads reads leads from CSV with a header row naming lead fields as
// the lead store does (title, website, city, ...). Unknown columns are
// ignored. Input that is not valid UTF-8 is decoded as Latin-1.
func ReadLeads(r io.Reader) ([]*coldlead.Lead, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		if data, err = charmap.ISO8859_1.NewDecoder().Bytes(data); err != nil {
			return nil, err
		}
	}
	data = bytes.TrimPrefix(data, []byte(bom))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, coldlead.Errorf(coldlead.EINVALID, "invalid CSV: %s", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := header["title"]; !ok {
		return nil, coldlead.Errorf(coldlead.EINVALID, "CSV has no title column")
	}

	leads := make([]*coldlead.Lead, 0, len(records)-1)
	for _, rec := range records[1:] {
		get := func(col string) string {
			i, ok := header[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		lead := &coldlead.Lead{
			Title:         get("title"),
			CompanyName:   get("company_name_reworked"),
			Website:       get("website"),
			Abstract:      get("abstract"),
			Category:      get("category"),
			City:          get("city"),
			Email:         get("email"),
			Phone:         get("phone"),
			FirstSentence: get("ai_first_sentence"),
		}
		if id, err := strconv.Atoi(get("id")); err == nil {
			lead.ID = id
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
