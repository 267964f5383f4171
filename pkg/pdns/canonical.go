package pdns

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// Canonicalize returns name in canonical form, appending exactly one
// trailing dot when it is missing. Applying it twice yields the same
// result as once.
func Canonicalize(name string) string {
	return dns.Fqdn(name)
}

// IsCanonical reports whether name is a fully-qualified DNS name with a
// trailing dot.
func IsCanonical(name string) bool {
	return dns.IsFqdn(name)
}

// ValidateType checks that rtype is a known DNS record type mnemonic.
func ValidateType(rtype string) error {
	t, ok := dns.StringToType[strings.ToUpper(rtype)]
	if !ok || t == dns.TypeNone {
		return fmt.Errorf("unknown record type %q", rtype)
	}
	return nil
}
