package geo

import (
	"net/netip"
	"sort"
)

// Resolver maps an IP address to an ISO country code using a static prefix
// dataset. Lookups never fail; unknown addresses report ok=false.
type Resolver struct {
	prefixes []entry
}

type entry struct {
	prefix  netip.Prefix
	country string
}

// Static dataset of country-allocated ranges. Replaced wholesale when the
// dataset is regenerated.
var dataset = map[string]string{
	"2.16.0.0/13":      "DE",
	"5.44.168.0/21":    "GB",
	"14.0.0.0/11":      "CN",
	"24.0.0.0/8":       "US",
	"31.13.24.0/21":    "IE",
	"36.0.0.0/8":       "CN",
	"41.0.0.0/11":      "ZA",
	"49.44.0.0/14":     "IN",
	"59.144.0.0/12":    "IN",
	"77.88.0.0/18":     "RU",
	"81.0.0.0/10":      "FR",
	"88.192.0.0/11":    "FI",
	"92.246.24.0/21":   "UA",
	"95.24.0.0/13":     "RU",
	"101.0.0.0/22":     "AU",
	"103.102.166.0/24": "SG",
	"110.33.0.0/16":    "AU",
	"139.28.216.0/22":  "BR",
	"152.152.0.0/16":   "NL",
	"154.16.0.0/16":    "NG",
	"168.196.0.0/22":   "BR",
	"177.0.0.0/8":      "BR",
	"186.0.0.0/8":      "AR",
	"196.200.0.0/13":   "KE",
	"197.210.0.0/15":   "NG",
	"200.0.0.0/8":      "MX",
	"202.0.0.0/8":      "JP",
	"210.0.0.0/8":      "KR",
	"2001:4860::/32":   "US",
	"2a00:1450::/32":   "IE",
}

func NewResolver() *Resolver {
	r := &Resolver{prefixes: make([]entry, 0, len(dataset))}
	for p, c := range dataset {
		prefix, err := netip.ParsePrefix(p)
		if err != nil {
			continue
		}
		r.prefixes = append(r.prefixes, entry{prefix: prefix, country: c})
	}
	// Longest prefix first so the most specific allocation wins.
	sort.Slice(r.prefixes, func(i, j int) bool {
		return r.prefixes[i].prefix.Bits() > r.prefixes[j].prefix.Bits()
	})
	return r
}

func (r *Resolver) ResolveCountry(ipAddress string) (string, bool) {
	addr, err := netip.ParseAddr(ipAddress)
	if err != nil {
		return "", false
	}
	for _, e := range r.prefixes {
		if e.prefix.Contains(addr) {
			return e.country, true
		}
	}
	return "", false
}
