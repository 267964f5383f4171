// Package zonespec loads and validates zone definitions from YAML files
// for the create-zone command.
package zonespec

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kreigan/pdnsctl/pkg/pdns"
)

// Spec is a zone definition as provided in YAML.
type Spec struct {
	Name        string       `yaml:"name"`
	Kind        string       `yaml:"kind,omitempty"`
	Nameservers []string     `yaml:"nameservers,omitempty"`
	Masters     []string     `yaml:"masters,omitempty"`
	RRsets      []RRSetInput `yaml:"rrsets,omitempty"`
}

// RRSetInput is a resource record set as provided in YAML.
type RRSetInput struct {
	Name    string      `yaml:"name"`
	Type    string      `yaml:"type"`
	Records interface{} `yaml:"records"` // string, []string, []map, or mixed
	TTL     *uint32     `yaml:"ttl,omitempty"`
	Comment string      `yaml:"comment,omitempty"`
}

// LoadFromFile loads a zone spec from a YAML file.
func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &spec, nil
}

// ValidationError holds all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"validation failed with %d error(s):\n  - %s",
		len(e.Errors),
		strings.Join(e.Errors, "\n  - "),
	)
}

// Add appends a formatted error message to the validation errors.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the spec and returns all errors at once.
func (s *Spec) Validate() *ValidationError {
	errs := &ValidationError{}

	if s.Name == "" {
		errs.Add("zone name is required")
	}

	if s.Kind != "" {
		switch s.Kind {
		case pdns.KindNative, pdns.KindMaster, pdns.KindSlave:
		default:
			errs.Add("invalid kind %q, must be one of: Native, Master, Slave", s.Kind)
		}
	}

	if s.Kind == pdns.KindSlave {
		if len(s.Masters) == 0 {
			errs.Add("masters are required for a Slave zone")
		}
	} else if len(s.Nameservers) == 0 {
		errs.Add("nameservers are required when creating a zone")
	}

	for i, ns := range s.Nameservers {
		if ns == "" {
			errs.Add("nameserver[%d] cannot be empty", i)
		}
	}

	s.validateRRsets(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (s *Spec) validateRRsets(errs *ValidationError) {
	seen := make(map[string]bool)

	for i, rrset := range s.RRsets {
		rrsetID := fmt.Sprintf("rrset[%d] (%s/%s)", i, rrset.Name, rrset.Type)

		if strings.EqualFold(rrset.Type, "SOA") {
			errs.Add("%s: SOA records are managed by PowerDNS and cannot be specified", rrsetID)
			continue
		}

		if rrset.Name == "" {
			errs.Add("%s: name is required", rrsetID)
		}

		if rrset.Type == "" {
			errs.Add("%s: type is required", rrsetID)
		} else if err := pdns.ValidateType(rrset.Type); err != nil {
			errs.Add("%s: %v", rrsetID, err)
		}

		key := fmt.Sprintf("%s/%s", strings.ToLower(rrset.Name), strings.ToUpper(rrset.Type))
		if seen[key] {
			errs.Add("%s: duplicate RRset definition", rrsetID)
		}
		seen[key] = true

		records, err := normalizeRecords(rrset.Records)
		if err != nil {
			errs.Add("%s: %v", rrsetID, err)
			continue
		}

		if len(records) == 0 {
			errs.Add("%s: at least one record is required", rrsetID)
		}

		for j, rec := range records {
			if rec.Content == "" {
				errs.Add("%s, record[%d]: content cannot be empty", rrsetID, j)
			}
		}
	}
}

// ToZone converts the validated spec into an API zone document with
// canonical names throughout.
func (s *Spec) ToZone() (*pdns.Zone, error) {
	name := pdns.Canonicalize(s.Name)

	kind := s.Kind
	if kind == "" {
		kind = pdns.KindNative
	}

	zone := &pdns.Zone{
		Name:        name,
		Kind:        kind,
		Masters:     s.Masters,
		Nameservers: make([]string, len(s.Nameservers)),
	}
	for i, ns := range s.Nameservers {
		zone.Nameservers[i] = qualify(ns, name)
	}

	for _, input := range s.RRsets {
		records, err := normalizeRecords(input.Records)
		if err != nil {
			return nil, fmt.Errorf("rrset %s/%s: %w", input.Name, input.Type, err)
		}

		var ttl uint32
		if input.TTL != nil {
			ttl = *input.TTL
		}

		rrset, err := pdns.NewRRSet(qualify(input.Name, name), strings.ToUpper(input.Type), ttl, records...)
		if err != nil {
			return nil, err
		}
		if input.Comment != "" {
			rrset.Comments = []pdns.Comment{{Content: input.Comment}}
		}
		zone.RRsets = append(zone.RRsets, *rrset)
	}

	return zone, nil
}

// qualify turns a relative record name into a FQDN under the zone.
// "@" denotes the zone apex.
func qualify(name, zone string) string {
	if name == "@" {
		return zone
	}
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "." + zone
}

// normalizeRecords converts the accepted YAML record shapes to records.
func normalizeRecords(input interface{}) ([]pdns.Record, error) {
	if input == nil {
		return nil, nil
	}

	switch v := input.(type) {
	case string:
		return []pdns.Record{pdns.NewRecord(v)}, nil

	case []interface{}:
		var records []pdns.Record
		for i, item := range v {
			switch r := item.(type) {
			case string:
				records = append(records, pdns.NewRecord(r))
			case map[string]interface{}:
				rec, err := parseRecordMap(r)
				if err != nil {
					return nil, fmt.Errorf("record[%d]: %w", i, err)
				}
				records = append(records, rec)
			default:
				return nil, fmt.Errorf("record[%d]: unsupported type %T", i, item)
			}
		}
		return records, nil

	case map[string]interface{}:
		rec, err := parseRecordMap(v)
		if err != nil {
			return nil, err
		}
		return []pdns.Record{rec}, nil

	default:
		return nil, fmt.Errorf("unsupported records type %T", input)
	}
}

func parseRecordMap(m map[string]interface{}) (pdns.Record, error) {
	var rec pdns.Record

	for key := range m {
		if key != "content" && key != "disabled" {
			return pdns.Record{}, fmt.Errorf("unknown record key %q", key)
		}
	}

	content, ok := m["content"]
	if !ok {
		return pdns.Record{}, fmt.Errorf("record is missing the 'content' key")
	}
	s, ok := content.(string)
	if !ok {
		return pdns.Record{}, fmt.Errorf("content must be a string")
	}
	rec.Content = s

	if disabled, ok := m["disabled"]; ok {
		b, ok := disabled.(bool)
		if !ok {
			return pdns.Record{}, fmt.Errorf("disabled must be a boolean")
		}
		rec.Disabled = b
	}

	return rec, nil
}
