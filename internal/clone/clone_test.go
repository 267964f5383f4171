package clone

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/kreigan/pdnsctl/pkg/logger"
	"github.com/kreigan/pdnsctl/pkg/pdns"
)

// testLogger returns a quiet logger for tests
func testLogger() *logger.Logger {
	log := logger.New(logger.Options{})
	log.SetOutput(io.Discard, io.Discard)
	return log
}

// MockClient implements ZoneClient for testing
type MockClient struct {
	zones       map[string]*pdns.Zone
	getZoneErr  error
	createErr   error
	createCalls int
	patchCalls  map[string][]pdns.RRSet
}

func NewMockClient() *MockClient {
	return &MockClient{
		zones:      make(map[string]*pdns.Zone),
		patchCalls: make(map[string][]pdns.RRSet),
	}
}

func (m *MockClient) GetZone(_ context.Context, _ string, name string) (*pdns.Zone, error) {
	if m.getZoneErr != nil {
		return nil, m.getZoneErr
	}
	if zone, ok := m.zones[pdns.Canonicalize(name)]; ok {
		return zone, nil
	}
	return nil, nil
}

func (m *MockClient) CreateZone(_ context.Context, _ string, zone *pdns.Zone) (*pdns.Zone, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *zone
	m.zones[zone.Name] = &created
	return &created, nil
}

func (m *MockClient) CreateRecords(_ context.Context, _ string, zone string, rrsets []pdns.RRSet) error {
	m.patchCalls[zone] = append(m.patchCalls[zone], rrsets...)
	return nil
}

func sourceZone() *pdns.Zone {
	return &pdns.Zone{
		Name: "example.com.",
		Kind: pdns.KindNative,
		RRsets: []pdns.RRSet{
			{
				Name: "example.com.", Type: "SOA", TTL: 3600,
				Records: []pdns.Record{{Content: "ns1.example.com. hostmaster.example.com. 1"}},
			},
			{
				Name: "example.com.", Type: "NS", TTL: 3600,
				Records: []pdns.Record{{Content: "ns1.example.com."}, {Content: "ns2.example.com."}},
			},
			{
				Name: "www.example.com.", Type: "CNAME", TTL: 300,
				Records: []pdns.Record{{Content: "example.com."}},
			},
			{
				Name: "mail.example.com.", Type: "A", TTL: 300,
				Records: []pdns.Record{{Content: "192.0.2.25"}},
			},
		},
	}
}

func TestClone(t *testing.T) {
	client := NewMockClient()
	client.zones["example.com."] = sourceZone()
	cloner := NewCloner(client, "localhost", testLogger())

	result, err := cloner.Clone(context.Background(), "example.com", "example.org")
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	if result.RRSetsCopied != 2 {
		t.Errorf("expected 2 rrsets copied, got %d", result.RRSetsCopied)
	}
	if result.RRSetsSkipped != 2 {
		t.Errorf("expected SOA and apex NS skipped, got %d", result.RRSetsSkipped)
	}

	created, ok := client.zones["example.org."]
	if !ok {
		t.Fatal("destination zone was not created")
	}
	if created.Kind != pdns.KindNative {
		t.Errorf("expected kind carried over, got %s", created.Kind)
	}
	if len(created.Nameservers) != 2 || created.Nameservers[0] != "ns1.example.com." {
		t.Errorf("expected nameservers from apex NS, got %v", created.Nameservers)
	}

	byName := make(map[string]pdns.RRSet)
	for _, rrset := range created.RRsets {
		byName[rrset.Name] = rrset
	}

	cname, ok := byName["www.example.org."]
	if !ok {
		t.Fatalf("expected rewritten CNAME rrset, got %v", created.RRsets)
	}
	if cname.Records[0].Content != "example.org." {
		t.Errorf("expected CNAME target example.org., got %s", cname.Records[0].Content)
	}

	a, ok := byName["mail.example.org."]
	if !ok {
		t.Fatalf("expected rewritten A rrset, got %v", created.RRsets)
	}
	if a.Records[0].Content != "192.0.2.25" {
		t.Errorf("A record content must not change, got %s", a.Records[0].Content)
	}
}

func TestCloneDestinationExists(t *testing.T) {
	client := NewMockClient()
	client.zones["example.com."] = sourceZone()
	client.zones["example.org."] = &pdns.Zone{Name: "example.org."}
	cloner := NewCloner(client, "localhost", testLogger())

	_, err := cloner.Clone(context.Background(), "example.com.", "example.org.")
	if !errors.Is(err, ErrZoneExists) {
		t.Fatalf("expected ErrZoneExists, got %v", err)
	}
	if client.createCalls != 0 {
		t.Errorf("create must not be called when destination exists, got %d call(s)", client.createCalls)
	}
}

func TestCloneSourceMissing(t *testing.T) {
	client := NewMockClient()
	cloner := NewCloner(client, "localhost", testLogger())

	_, err := cloner.Clone(context.Background(), "example.com.", "example.org.")
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestCloneGetZoneError(t *testing.T) {
	client := NewMockClient()
	client.getZoneErr = errors.New("connection refused")
	cloner := NewCloner(client, "localhost", testLogger())

	_, err := cloner.Clone(context.Background(), "example.com.", "example.org.")
	if !errors.Is(err, client.getZoneErr) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}

func TestCloneCreateError(t *testing.T) {
	client := NewMockClient()
	client.zones["example.com."] = sourceZone()
	client.createErr = errors.New("Conflict")
	cloner := NewCloner(client, "localhost", testLogger())

	_, err := cloner.Clone(context.Background(), "example.com.", "example.org.")
	if !errors.Is(err, client.createErr) {
		t.Fatalf("expected wrapped create error, got %v", err)
	}
}

func TestCloneSourceUnchanged(t *testing.T) {
	client := NewMockClient()
	source := sourceZone()
	client.zones["example.com."] = source
	cloner := NewCloner(client, "localhost", testLogger())

	if _, err := cloner.Clone(context.Background(), "example.com.", "example.org."); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	if source.RRsets[2].Name != "www.example.com." {
		t.Errorf("source rrset name was mutated: %s", source.RRsets[2].Name)
	}
	if source.RRsets[2].Records[0].Content != "example.com." {
		t.Errorf("source record content was mutated: %s", source.RRsets[2].Records[0].Content)
	}
}

func TestRewriteSuffix(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"example.com.", "example.org."},
		{"www.example.com.", "www.example.org."},
		{"deep.sub.example.com.", "deep.sub.example.org."},
		// substring occurrences are not suffix matches
		{"oldexample.com.", "oldexample.com."},
		{"example.com.other.net.", "example.com.other.net."},
		{"unrelated.org.", "unrelated.org."},
	}

	for _, tt := range tests {
		got := rewriteSuffix(tt.name, "example.com.", "example.org.")
		if got != tt.expected {
			t.Errorf("rewriteSuffix(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestRewriteReferences(t *testing.T) {
	client := NewMockClient()
	client.zones["other.net."] = &pdns.Zone{
		Name: "other.net.",
		RRsets: []pdns.RRSet{
			{
				Name: "alias.other.net.", Type: "CNAME", TTL: 300,
				Records: []pdns.Record{{Content: "www.example.com."}},
			},
			{
				Name: "elsewhere.other.net.", Type: "CNAME", TTL: 300,
				Records: []pdns.Record{{Content: "cdn.provider.io."}},
			},
			{
				Name: "host.other.net.", Type: "A", TTL: 300,
				Records: []pdns.Record{{Content: "192.0.2.7"}},
			},
		},
	}
	cloner := NewCloner(client, "localhost", testLogger())

	rewritten, err := cloner.RewriteReferences(
		context.Background(), []string{"other.net"}, "example.com.", "example.org.")
	if err != nil {
		t.Fatalf("RewriteReferences failed: %v", err)
	}

	if rewritten["other.net."] != 1 {
		t.Errorf("expected 1 rewritten rrset, got %d", rewritten["other.net."])
	}

	patches := client.patchCalls["other.net."]
	if len(patches) != 1 {
		t.Fatalf("expected 1 patched rrset, got %d", len(patches))
	}
	if patches[0].Name != "alias.other.net." {
		t.Errorf("unexpected patched rrset: %+v", patches[0])
	}
	if patches[0].Records[0].Content != "www.example.org." {
		t.Errorf("expected rewritten target www.example.org., got %s", patches[0].Records[0].Content)
	}
}

func TestRewriteReferencesZoneMissing(t *testing.T) {
	client := NewMockClient()
	cloner := NewCloner(client, "localhost", testLogger())

	_, err := cloner.RewriteReferences(
		context.Background(), []string{"other.net."}, "example.com.", "example.org.")
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound, got %v", err)
	}
}
