package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// RegionData is the static geography the geocoder targets: the gazetteer,
// bounding boxes, centroids and landmark keywords for one city.
type RegionData struct {
	City        string `json:"city" yaml:"city"`
	Country     string `json:"country" yaml:"country"`
	CountryCode string `json:"countryCode" yaml:"countryCode"`

	CityCentroid    LatLng `json:"cityCentroid" yaml:"cityCentroid"`
	CountryCentroid LatLng `json:"countryCentroid" yaml:"countryCentroid"`

	// Bounds is the acceptance box for candidates
	Bounds Box `json:"bounds" yaml:"bounds"`

	// SearchBox is the viewbox sent with provider queries
	SearchBox Box `json:"searchBox" yaml:"searchBox"`

	Landmarks []Landmark      `json:"landmarks" yaml:"landmarks"`
	Gazetteer []GazetteerItem `json:"gazetteer" yaml:"gazetteer"`

	// Regions maps governorate names to their centroid
	Regions map[string]LatLng `json:"regions" yaml:"regions"`

	// Labels used for synthesized route instructions
	StartLabel string `json:"startLabel" yaml:"startLabel"`
	StopLabel  string `json:"stopLabel" yaml:"stopLabel"`
}

// LatLng is a coordinate in region data
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Box is a lat/lng bounding box
type Box struct {
	North float64 `json:"north" yaml:"north"`
	South float64 `json:"south" yaml:"south"`
	East  float64 `json:"east" yaml:"east"`
	West  float64 `json:"west" yaml:"west"`
}

// Landmark is a keyword pair: a query containing Query and a result
// description containing Result earn the landmark bonus.
type Landmark struct {
	Query  string `json:"query" yaml:"query"`
	Result string `json:"result" yaml:"result"`
}

// GazetteerItem is one curated locality
type GazetteerItem struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// LoadRegion reads region data from a YAML file. Relative paths are also
// tried against the parent directories the service config is searched in.
func LoadRegion(path string) (*RegionData, error) {
	resolved, err := resolveRegionPath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(resolved), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read region file %s failed", resolved)
	}

	region := new(RegionData)
	if err := k.UnmarshalWithConf("", region, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           region,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal region file %s failed", resolved)
	}

	if err := region.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid region file %s", resolved)
	}

	return region, nil
}

// Validate checks the fields the geocoder cannot work without
func (r *RegionData) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return errors.New("city is required")
	}
	if r.Bounds.North <= r.Bounds.South || r.Bounds.East <= r.Bounds.West {
		return errors.Errorf("bounds are empty: %+v", r.Bounds)
	}
	for i, item := range r.Gazetteer {
		if strings.TrimSpace(item.Name) == "" {
			return errors.Errorf("gazetteer entry %d has no name", i)
		}
	}

	return nil
}

func resolveRegionPath(path string) (string, error) {
	candidates := []string{path, "../" + path, "../../" + path, "../../../" + path}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("region file %s not found", path)
}
