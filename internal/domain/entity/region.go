package entity

// Region is a Tunisian governorate used as a coarse stop fallback.
type Region string

const (
	RegionTunis      Region = "TUNIS"
	RegionAriana     Region = "ARIANA"
	RegionBenArous   Region = "BEN_AROUS"
	RegionManouba    Region = "MANOUBA"
	RegionNabeul     Region = "NABEUL"
	RegionZaghouan   Region = "ZAGHOUAN"
	RegionBizerte    Region = "BIZERTE"
	RegionBeja       Region = "BEJA"
	RegionJendouba   Region = "JENDOUBA"
	RegionKef        Region = "KEF"
	RegionSiliana    Region = "SILIANA"
	RegionSousse     Region = "SOUSSE"
	RegionMonastir   Region = "MONASTIR"
	RegionMahdia     Region = "MAHDIA"
	RegionSfax       Region = "SFAX"
	RegionKairouan   Region = "KAIROUAN"
	RegionKasserine  Region = "KASSERINE"
	RegionSidiBouzid Region = "SIDI_BOUZID"
	RegionGabes      Region = "GABES"
	RegionMedenine   Region = "MEDENINE"
	RegionTataouine  Region = "TATAOUINE"
	RegionGafsa      Region = "GAFSA"
	RegionTozeur     Region = "TOZEUR"
	RegionKebili     Region = "KEBILI"
)

// String returns the string representation of the Region.
func (r Region) String() string {
	return string(r)
}

// IsValid checks if the Region is a known governorate.
func (r Region) IsValid() bool {
	switch r {
	case RegionTunis, RegionAriana, RegionBenArous, RegionManouba, RegionNabeul, RegionZaghouan,
		RegionBizerte, RegionBeja, RegionJendouba, RegionKef, RegionSiliana, RegionSousse,
		RegionMonastir, RegionMahdia, RegionSfax, RegionKairouan, RegionKasserine, RegionSidiBouzid,
		RegionGabes, RegionMedenine, RegionTataouine, RegionGafsa, RegionTozeur, RegionKebili:
		return true
	default:
		return false
	}
}
