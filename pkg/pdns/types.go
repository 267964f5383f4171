package pdns

// Zone kinds.
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
const (
	KindNative = "Native"
	KindMaster = "Master"
	KindSlave  = "Slave"
)

// RRset change types for PATCH requests.
const (
	ChangeTypeReplace = "REPLACE"
	ChangeTypeDelete  = "DELETE"
)

// Server represents a PowerDNS server instance.
type Server struct {
	// ID is the server identifier ("localhost" for a local instance)
	ID string `json:"id"`
	// Type is always "Server" (read-only)
	Type string `json:"type,omitempty"`
	// DaemonType is "authoritative" or "recursor"
	DaemonType string `json:"daemon_type,omitempty"`
	// Version is the server software version
	Version string `json:"version,omitempty"`
	// URL is the API URL of this server (read-only)
	URL string `json:"url,omitempty"`
}

// ConfigSetting is a single server configuration entry.
type ConfigSetting struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Zone represents a PowerDNS zone for API requests/responses.
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
type Zone struct {
	// ID is opaque zone id assigned by the server (read-only)
	ID string `json:"id,omitempty"`
	// Name of the zone (e.g. "example.com.") MUST have a trailing dot
	Name string `json:"name"`
	// Type is always "Zone" (read-only)
	Type string `json:"type,omitempty"`
	// URL is the API URL of this zone (read-only)
	URL string `json:"url,omitempty"`
	// Kind is the zone replication role: "Native", "Master" or "Slave"
	Kind string `json:"kind,omitempty"`
	// Serial is the SOA serial (read-only)
	Serial uint32 `json:"serial,omitempty"`
	// Masters is list of IP addresses configured as primary (Slave zones only)
	Masters []string `json:"masters,omitempty"`
	// Nameservers is the list of nameservers, only honored on zone creation
	Nameservers []string `json:"nameservers,omitempty"`
	// Account is the zone account for ownership tracking
	Account string `json:"account,omitempty"`
	// DNSSEC indicates whether the zone is signed
	DNSSEC bool `json:"dnssec,omitempty"`
	// RRsets are the resource record sets in this zone
	RRsets []RRSet `json:"rrsets,omitempty"`
}

// RRSet represents a resource record set: all records sharing a name and
// type, managed as one unit.
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
type RRSet struct {
	// Name for record set (e.g. "www.powerdns.com.")
	Name string `json:"name"`
	// Type of this record (e.g. "A", "PTR", "MX")
	Type string `json:"type"`
	// TTL is the DNS TTL of the records in seconds.
	// MUST NOT be included when changetype is "DELETE"
	TTL uint32 `json:"ttl,omitempty"`
	// ChangeType MUST be set when updating the RRSet: REPLACE or DELETE
	ChangeType string `json:"changetype,omitempty"`
	// Records in this RRset
	Records []Record `json:"records,omitempty"`
	// Comments on this RRset
	Comments []Comment `json:"comments,omitempty"`
}

// RRSetsNamed returns the zone's record sets carrying the given
// canonical name, one per type.
func (z *Zone) RRSetsNamed(name string) []RRSet {
	var matches []RRSet
	for _, rrset := range z.RRsets {
		if rrset.Name == name {
			matches = append(matches, rrset)
		}
	}
	return matches
}

// Record represents a single DNS record. A record has no identity outside
// its parent RRSet.
type Record struct {
	// Content is the content of this record
	Content string `json:"content"`
	// Disabled indicates whether this record is disabled
	Disabled bool `json:"disabled"`
}

// Comment represents a free-text annotation on an RRSet.
type Comment struct {
	// Content is the actual comment text
	Content string `json:"content"`
	// Account is name of the account that added the comment
	Account string `json:"account"`
	// ModifiedAt is the Unix timestamp of the last change
	ModifiedAt int64 `json:"modified_at,omitempty"`
}

// CryptoKey represents DNSSEC key material associated with a zone.
// See: https://doc.powerdns.com/authoritative/http-api/cryptokey.html
type CryptoKey struct {
	// ID is the key identifier assigned by the server (read-only)
	ID int `json:"id,omitempty"`
	// Type is always "Cryptokey" (read-only)
	Type string `json:"type,omitempty"`
	// KeyType is "ksk", "zsk" or "csk"
	KeyType string `json:"keytype,omitempty"`
	// Active indicates whether the key is used for signing
	Active bool `json:"active,omitempty"`
	// Published indicates whether the DNSKEY is published in the zone
	Published bool `json:"published,omitempty"`
	// DNSKey is the DNSKEY record content for this key (read-only)
	DNSKey string `json:"dnskey,omitempty"`
	// DS is the list of DS record contents (read-only)
	DS []string `json:"ds,omitempty"`
	// PrivateKey is the private key material in ISC format
	PrivateKey string `json:"privatekey,omitempty"`
	// Algorithm is a DNSSEC algorithm mnemonic (e.g. "ECDSAP256SHA256")
	Algorithm string `json:"algorithm,omitempty"`
	// Bits is the key size, used when the server generates the key
	Bits int `json:"bits,omitempty"`
}

// Metadata is a zone metadata entry.
// See: https://doc.powerdns.com/authoritative/http-api/zonemetadata.html
type Metadata struct {
	// Kind is the metadata kind (e.g. "ALLOW-AXFR-FROM")
	Kind string `json:"kind"`
	// Metadata holds the values for this kind
	Metadata []string `json:"metadata"`
}

// SearchResult is a single hit from the server search endpoint.
type SearchResult struct {
	Content    string `json:"content,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type"`
	ZoneID     string `json:"zone_id,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Type       string `json:"type,omitempty"`
	TTL        uint32 `json:"ttl,omitempty"`
}

// zonePatch is the PATCH request body for modifying zone RRsets.
type zonePatch struct {
	RRsets []RRSet `json:"rrsets"`
}
