package brewing

// TeapotMaterial is the material a teapot is made from.
type TeapotMaterial string

// TeapotMaterial constants.
const (
	MaterialCeramic        TeapotMaterial = "ceramic"
	MaterialCastIron       TeapotMaterial = "cast-iron"
	MaterialGlass          TeapotMaterial = "glass"
	MaterialPorcelain      TeapotMaterial = "porcelain"
	MaterialClay           TeapotMaterial = "clay"
	MaterialStainlessSteel TeapotMaterial = "stainless-steel"
)

// AllTeapotMaterials returns all valid teapot material values.
func AllTeapotMaterials() []TeapotMaterial {
	return []TeapotMaterial{
		MaterialCeramic, MaterialCastIron, MaterialGlass,
		MaterialPorcelain, MaterialClay, MaterialStainlessSteel,
	}
}

// TeapotStyle is the brewing tradition a teapot belongs to.
type TeapotStyle string

// TeapotStyle constants.
const (
	StyleKyusu    TeapotStyle = "kyusu"
	StyleGaiwan   TeapotStyle = "gaiwan"
	StyleEnglish  TeapotStyle = "english"
	StyleMoroccan TeapotStyle = "moroccan"
	StyleTurkish  TeapotStyle = "turkish"
	StyleYixing   TeapotStyle = "yixing"
)

// DefaultTeapotStyle is applied when a teapot is created without a style.
const DefaultTeapotStyle = StyleEnglish

// AllTeapotStyles returns all valid teapot style values.
func AllTeapotStyles() []TeapotStyle {
	return []TeapotStyle{
		StyleKyusu, StyleGaiwan, StyleEnglish,
		StyleMoroccan, StyleTurkish, StyleYixing,
	}
}

// TeaType is the processing category of a tea.
type TeaType string

// TeaType constants.
const (
	TeaGreen   TeaType = "green"
	TeaBlack   TeaType = "black"
	TeaOolong  TeaType = "oolong"
	TeaWhite   TeaType = "white"
	TeaPuerh   TeaType = "puerh"
	TeaHerbal  TeaType = "herbal"
	TeaRooibos TeaType = "rooibos"
)

// AllTeaTypes returns all valid tea type values.
func AllTeaTypes() []TeaType {
	return []TeaType{
		TeaGreen, TeaBlack, TeaOolong, TeaWhite,
		TeaPuerh, TeaHerbal, TeaRooibos,
	}
}

// CaffeineLevel is the rough caffeine content of a tea.
type CaffeineLevel string

// CaffeineLevel constants.
const (
	CaffeineNone   CaffeineLevel = "none"
	CaffeineLow    CaffeineLevel = "low"
	CaffeineMedium CaffeineLevel = "medium"
	CaffeineHigh   CaffeineLevel = "high"
)

// DefaultCaffeineLevel is applied when a tea is created without a level.
const DefaultCaffeineLevel = CaffeineMedium

// AllCaffeineLevels returns all valid caffeine level values.
func AllCaffeineLevels() []CaffeineLevel {
	return []CaffeineLevel{CaffeineNone, CaffeineLow, CaffeineMedium, CaffeineHigh}
}

// BrewStatus is the lifecycle state of a brew session.
type BrewStatus string

// BrewStatus constants.
const (
	StatusPreparing BrewStatus = "preparing"
	StatusSteeping  BrewStatus = "steeping"
	StatusReady     BrewStatus = "ready"
	StatusServed    BrewStatus = "served"
	StatusCold      BrewStatus = "cold"
)

// AllBrewStatuses returns all valid brew status values.
func AllBrewStatuses() []BrewStatus {
	return []BrewStatus{
		StatusPreparing, StatusSteeping, StatusReady, StatusServed, StatusCold,
	}
}

// Pre-computed validation sets for O(1) membership checks.
var (
	validMaterials      map[TeapotMaterial]struct{}
	validStyles         map[TeapotStyle]struct{}
	validTeaTypes       map[TeaType]struct{}
	validCaffeineLevels map[CaffeineLevel]struct{}
	validBrewStatuses   map[BrewStatus]struct{}
)

func init() {
	validMaterials = make(map[TeapotMaterial]struct{}, len(AllTeapotMaterials()))
	for _, m := range AllTeapotMaterials() {
		validMaterials[m] = struct{}{}
	}

	validStyles = make(map[TeapotStyle]struct{}, len(AllTeapotStyles()))
	for _, s := range AllTeapotStyles() {
		validStyles[s] = struct{}{}
	}

	validTeaTypes = make(map[TeaType]struct{}, len(AllTeaTypes()))
	for _, t := range AllTeaTypes() {
		validTeaTypes[t] = struct{}{}
	}

	validCaffeineLevels = make(map[CaffeineLevel]struct{}, len(AllCaffeineLevels()))
	for _, c := range AllCaffeineLevels() {
		validCaffeineLevels[c] = struct{}{}
	}

	validBrewStatuses = make(map[BrewStatus]struct{}, len(AllBrewStatuses()))
	for _, s := range AllBrewStatuses() {
		validBrewStatuses[s] = struct{}{}
	}
}

// ParseTeapotMaterial parses a string into a TeapotMaterial.
// The second return value reports whether the input was a recognised value,
// so callers can distinguish "filter absent" from "filter invalid".
func ParseTeapotMaterial(s string) (TeapotMaterial, bool) {
	m := TeapotMaterial(s)
	_, ok := validMaterials[m]
	return m, ok
}

// ParseTeapotStyle parses a string into a TeapotStyle.
func ParseTeapotStyle(s string) (TeapotStyle, bool) {
	st := TeapotStyle(s)
	_, ok := validStyles[st]
	return st, ok
}

// ParseTeaType parses a string into a TeaType.
func ParseTeaType(s string) (TeaType, bool) {
	t := TeaType(s)
	_, ok := validTeaTypes[t]
	return t, ok
}

// ParseCaffeineLevel parses a string into a CaffeineLevel.
func ParseCaffeineLevel(s string) (CaffeineLevel, bool) {
	c := CaffeineLevel(s)
	_, ok := validCaffeineLevels[c]
	return c, ok
}

// ParseBrewStatus parses a string into a BrewStatus.
func ParseBrewStatus(s string) (BrewStatus, bool) {
	b := BrewStatus(s)
	_, ok := validBrewStatuses[b]
	return b, ok
}
