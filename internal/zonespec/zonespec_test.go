package zonespec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kreigan/pdnsctl/pkg/pdns"
)

func TestValidateCollectsAllErrors(t *testing.T) {
	spec := &Spec{
		Name: "example.com",
		Kind: "Hybrid",
		RRsets: []RRSetInput{
			{Name: "", Type: "A", Records: "192.0.2.1"},
			{Name: "zone", Type: "SOA", Records: "ns1 hostmaster 1"},
			{Name: "www", Type: "WIDGET", Records: "whatever"},
			{Name: "mail", Type: "A", Records: "192.0.2.2"},
			{Name: "mail", Type: "a", Records: "192.0.2.3"},
		},
	}

	err := spec.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	for _, want := range []string{
		"invalid kind",
		"nameservers are required",
		"name is required",
		"SOA records are managed by PowerDNS",
		"unknown record type",
		"duplicate RRset definition",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got:\n%v", want, err)
		}
	}
}

func TestValidateSlaveRequiresMasters(t *testing.T) {
	spec := &Spec{Name: "example.com", Kind: pdns.KindSlave}
	err := spec.Validate()
	if err == nil || !strings.Contains(err.Error(), "masters are required") {
		t.Errorf("expected masters error, got: %v", err)
	}

	spec.Masters = []string{"192.0.2.53"}
	if err := spec.Validate(); err != nil {
		t.Errorf("expected slave zone without nameservers to validate, got: %v", err)
	}
}

func TestToZone(t *testing.T) {
	ttl := uint32(600)
	spec := &Spec{
		Name:        "example.com",
		Nameservers: []string{"ns1", "ns2.example.net."},
		RRsets: []RRSetInput{
			{Name: "@", Type: "mx", Records: "10 mail.example.com.", TTL: &ttl},
			{Name: "www", Type: "A", Records: []interface{}{"192.0.2.1", "192.0.2.2"}},
			{
				Name: "ftp", Type: "A", Comment: "legacy host",
				Records: map[string]interface{}{"content": "192.0.2.9", "disabled": true},
			},
		},
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	zone, err := spec.ToZone()
	if err != nil {
		t.Fatalf("ToZone: %v", err)
	}

	if zone.Name != "example.com." {
		t.Errorf("expected canonical zone name, got %q", zone.Name)
	}
	if zone.Kind != pdns.KindNative {
		t.Errorf("expected default kind Native, got %q", zone.Kind)
	}
	if zone.Nameservers[0] != "ns1.example.com." || zone.Nameservers[1] != "ns2.example.net." {
		t.Errorf("unexpected nameservers: %v", zone.Nameservers)
	}

	if len(zone.RRsets) != 3 {
		t.Fatalf("expected 3 rrsets, got %d", len(zone.RRsets))
	}

	mx := zone.RRsets[0]
	if mx.Name != "example.com." || mx.Type != "MX" || mx.TTL != 600 {
		t.Errorf("unexpected apex rrset: %+v", mx)
	}

	www := zone.RRsets[1]
	if www.Name != "www.example.com." || len(www.Records) != 2 {
		t.Errorf("unexpected www rrset: %+v", www)
	}
	if www.TTL != 3600 {
		t.Errorf("expected default TTL 3600, got %d", www.TTL)
	}

	ftp := zone.RRsets[2]
	if !ftp.Records[0].Disabled {
		t.Errorf("expected disabled record, got %+v", ftp.Records[0])
	}
	if len(ftp.Comments) != 1 || ftp.Comments[0].Content != "legacy host" {
		t.Errorf("expected comment carried over, got %+v", ftp.Comments)
	}
}

func TestNormalizeRecordsRejectsUnknownKeys(t *testing.T) {
	_, err := normalizeRecords(map[string]interface{}{
		"content":  "192.0.2.1",
		"priority": 10,
	})
	if err == nil || !strings.Contains(err.Error(), "unknown record key") {
		t.Errorf("expected unknown key error, got: %v", err)
	}

	_, err = normalizeRecords(map[string]interface{}{"disabled": true})
	if err == nil || !strings.Contains(err.Error(), "content") {
		t.Errorf("expected missing content error, got: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
name: example.com
kind: Master
nameservers:
  - ns1.example.com.
rrsets:
  - name: www
    type: A
    records:
      - 192.0.2.1
      - content: 192.0.2.2
        disabled: true
`
	path := filepath.Join(t.TempDir(), "zone.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	spec, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if spec.Name != "example.com" || spec.Kind != "Master" {
		t.Errorf("unexpected spec: %+v", spec)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	zone, err := spec.ToZone()
	if err != nil {
		t.Fatalf("ToZone: %v", err)
	}
	if len(zone.RRsets) != 1 || len(zone.RRsets[0].Records) != 2 {
		t.Fatalf("unexpected rrsets: %+v", zone.RRsets)
	}
	if !zone.RRsets[0].Records[1].Disabled {
		t.Errorf("expected second record disabled, got %+v", zone.RRsets[0].Records[1])
	}
}
