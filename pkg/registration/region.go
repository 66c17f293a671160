package registration

import "fmt"

// Region is a closed union of Europe, NorthAmerica and OtherRegion.
// The unexported marker method keeps other packages from adding variants.
// Consume it with an exhaustive type switch or with MatchRegion.
type Region interface {
	fmt.Stringer
	region()
}

type (
	Europe       struct{}
	NorthAmerica struct{}
	// OtherRegion is an explicit table entry, never a fallback for
	// unknown countries.
	OtherRegion struct{}
)

func (Europe) region()       {}
func (NorthAmerica) region() {}
func (OtherRegion) region()  {}

func (Europe) String() string       { return "Europe" }
func (NorthAmerica) String() string { return "NorthAmerica" }
func (OtherRegion) String() string  { return "Other" }

// Names used for regions in configuration files.
const (
	RegionNameEurope       = "europe"
	RegionNameNorthAmerica = "north_america"
	RegionNameOther        = "other"
)

// ParseRegion maps a configuration name to its Region.
func ParseRegion(name string) (Region, bool) {
	switch name {
	case RegionNameEurope:
		return Europe{}, true
	case RegionNameNorthAmerica:
		return NorthAmerica{}, true
	case RegionNameOther:
		return OtherRegion{}, true
	default:
		return nil, false
	}
}

// MatchRegion calls exactly one of the handlers depending on the variant of r.
// A nil Region yields the zero T.
func MatchRegion[T any](r Region, europe, northAmerica, other func() T) T {
	switch r.(type) {
	case Europe:
		return europe()
	case NorthAmerica:
		return northAmerica()
	case OtherRegion:
		return other()
	default:
		var zero T
		return zero
	}
}

// RegionName returns the configuration name of r, or "" for nil.
func RegionName(r Region) string {
	return MatchRegion(r,
		func() string { return RegionNameEurope },
		func() string { return RegionNameNorthAmerica },
		func() string { return RegionNameOther },
	)
}
