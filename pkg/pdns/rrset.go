package pdns

import "fmt"

// defaultTTL is applied when a RRSet is constructed with a zero TTL.
const defaultTTL = 3600

// NewRecord returns an enabled record with the given content.
func NewRecord(content string) Record {
	return Record{Content: content}
}

// DisabledRecord returns a record with the given content that is marked
// disabled, so it is kept by the server but not served.
func DisabledRecord(content string) Record {
	return Record{Content: content, Disabled: true}
}

// NewRRSet constructs a validated RRSet. All records share the RRSet's
// name and type. A zero ttl defaults to 3600 seconds. The change type is
// left unset; CreateRecords and DeleteRecords stamp it before sending.
func NewRRSet(name, rtype string, ttl uint32, records ...Record) (*RRSet, error) {
	if name == "" {
		return nil, fmt.Errorf("rrset: name is required")
	}
	if rtype == "" {
		return nil, fmt.Errorf("rrset: type is required")
	}
	if err := ValidateType(rtype); err != nil {
		return nil, fmt.Errorf("rrset %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("rrset %s/%s: at least one record is required", name, rtype)
	}
	for i, r := range records {
		if r.Content == "" {
			return nil, fmt.Errorf("rrset %s/%s: record[%d] content is empty", name, rtype, i)
		}
	}
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &RRSet{
		Name:    name,
		Type:    rtype,
		TTL:     ttl,
		Records: records,
	}, nil
}

// EnsureCanonical qualifies the RRSet name with the zone when it is not
// already a FQDN. For CNAME RRSets the record contents are qualified the
// same way. The zone itself must be canonical.
func (rr *RRSet) EnsureCanonical(zone string) error {
	if !IsCanonical(zone) {
		return fmt.Errorf("zone %q is not canonical", zone)
	}
	if !IsCanonical(rr.Name) {
		rr.Name += "." + zone
	}
	if rr.Type == "CNAME" {
		for i := range rr.Records {
			if !IsCanonical(rr.Records[i].Content) {
				rr.Records[i].Content += "." + zone
			}
		}
	}
	return nil
}
