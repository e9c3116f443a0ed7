package domain

// ProvinceCodeLen is the length of a top-level (시/도) region code.
const ProvinceCodeLen = 2

// RegionCode identifies a province ("11") or a district ("1111000000").
// District codes are prefixed by the code of their province.
type RegionCode string

// String returns the string form of the code.
func (c RegionCode) String() string { return string(c) }

// IsProvince reports whether c has the shape of a province code.
func (c RegionCode) IsProvince() bool { return len(c) == ProvinceCodeLen }

// Province returns the province prefix of c, or "" when c is too short.
func (c RegionCode) Province() RegionCode {
	if len(c) < ProvinceCodeLen {
		return ""
	}
	return c[:ProvinceCodeLen]
}

// Province is a top-level administrative region.
type Province struct {
	Code RegionCode `yaml:"code"`
	Name string     `yaml:"name"`
}

// District is a sub-region returned by the districts API.
type District struct {
	Code RegionCode
	Name string
}

// Attraction is a tourist spot attached to a region code.
type Attraction struct {
	Name        string
	Description string
}

// Frame is a saved navigation position: the code that was current and the
// district list that was displayed. The zero Frame is the root.
type Frame struct {
	Code      RegionCode
	Districts []District
}

// IsRoot reports whether f is the root position.
func (f Frame) IsRoot() bool { return f.Code == "" }
