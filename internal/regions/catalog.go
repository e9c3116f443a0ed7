package regions

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"regiontrip/internal/domain"
)

//go:embed data/regions.yaml
var defaultDataset []byte

// descriptionSuffix builds the default description of an attraction.
const descriptionSuffix = " 관광지"

var (
	// ErrNoProvinces is returned when a dataset declares no provinces.
	ErrNoProvinces = errors.New("regions: dataset has no provinces")
)

type dataset struct {
	Provinces   []domain.Province            `yaml:"provinces"`
	Attractions map[domain.RegionCode][]spot `yaml:"attractions"`
}

// spot accepts either a bare scalar name or a {name, description} mapping.
type spot struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func (s *spot) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Name = value.Value
		return nil
	}
	type plain spot
	return value.Decode((*plain)(s))
}

// Catalog is an immutable province and attraction table.
type Catalog struct {
	provinces   []domain.Province
	byCode      map[domain.RegionCode]domain.Province
	attractions map[domain.RegionCode][]domain.Attraction
}

// Default returns the catalog built from the embedded dataset.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultDataset))
}

// Load parses a YAML dataset and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var ds dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("regions: decode dataset: %w", err)
	}
	if len(ds.Provinces) == 0 {
		return nil, ErrNoProvinces
	}

	c := &Catalog{
		provinces:   make([]domain.Province, 0, len(ds.Provinces)),
		byCode:      make(map[domain.RegionCode]domain.Province, len(ds.Provinces)),
		attractions: make(map[domain.RegionCode][]domain.Attraction, len(ds.Attractions)),
	}
	for _, p := range ds.Provinces {
		if !p.Code.IsProvince() {
			return nil, fmt.Errorf("regions: province code %q must be %d characters", p.Code, domain.ProvinceCodeLen)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("regions: province %q has no name", p.Code)
		}
		if _, dup := c.byCode[p.Code]; dup {
			return nil, fmt.Errorf("regions: duplicate province %q", p.Code)
		}
		c.provinces = append(c.provinces, p)
		c.byCode[p.Code] = p
	}
	for code, spots := range ds.Attractions {
		if code == "" {
			return nil, errors.New("regions: attraction entry with empty code")
		}
		out := make([]domain.Attraction, 0, len(spots))
		for _, s := range spots {
			if s.Name == "" {
				return nil, fmt.Errorf("regions: attraction without name under %q", code)
			}
			desc := s.Description
			if desc == "" {
				desc = s.Name + descriptionSuffix
			}
			out = append(out, domain.Attraction{Name: s.Name, Description: desc})
		}
		c.attractions[code] = out
	}
	return c, nil
}

// Province looks up a province by its 2-character code.
func (c *Catalog) Province(code domain.RegionCode) (domain.Province, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// Provinces returns all provinces in dataset order.
func (c *Catalog) Provinces() []domain.Province {
	return append([]domain.Province(nil), c.provinces...)
}

// Attractions returns the attractions recorded for code, possibly none.
func (c *Catalog) Attractions(code domain.RegionCode) []domain.Attraction {
	return append([]domain.Attraction(nil), c.attractions[code]...)
}

// ProvinceName returns the name of the province that code belongs to.
func (c *Catalog) ProvinceName(code domain.RegionCode) (string, bool) {
	p, ok := c.byCode[code.Province()]
	return p.Name, ok
}

// Compile-time assertion that Catalog implements domain.RegionCatalog.
var _ domain.RegionCatalog = (*Catalog)(nil)
