package registration

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// RegionTable is an immutable country to Region mapping.
// Lookups are exact and case-sensitive; countries missing from the table
// resolve to absent, never to OtherRegion.
type RegionTable struct {
	regions map[string]Region
}

var defaultRegions = NewRegionTable(map[string]Region{
	"Belgium":  Europe{},
	"Germany":  Europe{},
	"USA":      NorthAmerica{},
	"Thailand": OtherRegion{},
})

// DefaultRegions returns the built-in country table.
func DefaultRegions() RegionTable {
	return defaultRegions
}

// NewRegionTable copies m into a new table. Entries with a nil Region are
// dropped.
func NewRegionTable(m map[string]Region) RegionTable {
	regions := make(map[string]Region, len(m))
	for country, region := range m {
		if region == nil {
			continue
		}
		regions[country] = region
	}
	return RegionTable{regions: regions}
}

// Lookup returns the Region mapped to country.
func (t RegionTable) Lookup(country string) (Region, bool) {
	region, ok := t.regions[country]
	return region, ok
}

// Countries returns the mapped country names in sorted order.
func (t RegionTable) Countries() []string {
	return slices.Sorted(maps.Keys(t.regions))
}

func (t RegionTable) Len() int {
	return len(t.regions)
}

// LookupRegion resolves country against the built-in table.
func LookupRegion(country string) (Region, bool) {
	return defaultRegions.Lookup(country)
}

// ParseRegionTable reads a YAML mapping of country names to region names:
//
//	Belgium: europe
//	USA: north_america
//	Thailand: other
func ParseRegionTable(data []byte) (RegionTable, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RegionTable{}, errors.Join(ErrParseRegionTable, err)
	}
	if len(raw) == 0 {
		return RegionTable{}, ErrEmptyRegionTable
	}

	regions := make(map[string]Region, len(raw))
	for country, name := range raw {
		if country == "" {
			return RegionTable{}, ErrEmptyCountry
		}
		region, ok := ParseRegion(name)
		if !ok {
			return RegionTable{}, fmt.Errorf("%w: %q for country %q", ErrUnknownRegion, name, country)
		}
		regions[country] = region
	}
	return RegionTable{regions: regions}, nil
}

// LoadRegionTable reads and parses the YAML file at path.
func LoadRegionTable(path string) (RegionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegionTable{}, errors.Join(ErrReadRegionTable, err)
	}
	return ParseRegionTable(data)
}
