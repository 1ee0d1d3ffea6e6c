package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arcigy/coldlead"
)

// utf8BOM is stripped from dumps saved by tools that write utf-8-sig.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure LeadFile implements coldlead.LeadReader at compile time.
var _ coldlead.LeadReader = (*LeadFile)(nil)

// LeadFile reads leads from a JSON array dump of the lead store.
type LeadFile struct {
	path string
}

// NewLeadFile creates a new LeadFile reading from path.
func NewLeadFile(path string) *LeadFile {
	return &LeadFile{path: path}
}

// FindLeads reads the dump and returns the leads matching the filter in
// file order. Filtering by Google Maps job is not supported since dumps do
// not carry the job ID.
func (f *LeadFile) FindLeads(ctx context.Context, filter coldlead.LeadFilter) ([]*coldlead.Lead, error) {
	if filter.GoogleMapsJobID != nil {
		return nil, coldlead.Errorf(coldlead.EINVALID, "lead dumps cannot be filtered by job")
	}

	leads, err := ReadLeads(f.path)
	if err != nil {
		return nil, err
	}

	var matched []*coldlead.Lead
	for _, lead := range leads {
		if matchLead(lead, filter) {
			matched = append(matched, lead)
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func matchLead(lead *coldlead.Lead, filter coldlead.LeadFilter) bool {
	if filter.ID != nil && lead.ID != *filter.ID {
		return false
	}
	if filter.Title != nil && lead.Title != *filter.Title {
		return false
	}
	if filter.HasWebsite && lead.Website == "" {
		return false
	}
	if filter.MissingAbstract && lead.Abstract != "" {
		return false
	}
	return true
}

// ReadLeads decodes a JSON array of leads from path. A leading UTF-8 byte
// order mark is ignored.
func ReadLeads(path string) ([]*coldlead.Lead, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, coldlead.Errorf(coldlead.ENOTFOUND, "lead file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var leads []*coldlead.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, coldlead.Errorf(coldlead.EINVALID, "invalid lead file %s: %s", path, err)
	}
	return leads, nil
}

// WriteLeads writes leads to path as an indented JSON array, replacing the
// file atomically.
func WriteLeads(path string, leads []*coldlead.Lead) error {
	if leads == nil {
		leads = []*coldlead.Lead{}
	}

	f, err := CreateAtomic(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(leads); err != nil {
		_ = f.Abort()
		return fmt.Errorf("failed to encode leads: %w", err)
	}

	return f.Commit()
}
