package brewing

import "time"

// Teapot is a piece of brewing equipment. A teapot owns zero or more brews,
// but deleting a teapot does not delete them; only brew deletion cascades.
type Teapot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Material    TeapotMaterial `json:"material"`
	CapacityMl  int            `json:"capacityMl"`
	Style       TeapotStyle    `json:"style"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Tea is a tea variety with its recommended steeping parameters.
type Tea struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Type             TeaType       `json:"type"`
	Origin           *string       `json:"origin"`
	CaffeineLevel    CaffeineLevel `json:"caffeineLevel"`
	SteepTempCelsius int           `json:"steepTempCelsius"`
	SteepTimeSeconds int           `json:"steepTimeSeconds"`
	Description      *string       `json:"description"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Brew is a single tea-preparation session tying one teapot and one tea
// together. The teapot and tea references are resolved at creation time only;
// deleting either afterwards leaves the brew intact.
type Brew struct {
	ID               string     `json:"id"`
	TeapotID         string     `json:"teapotId"`
	TeaID            string     `json:"teaId"`
	Status           BrewStatus `json:"status"`
	WaterTempCelsius int        `json:"waterTempCelsius"`
	Notes            *string    `json:"notes"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Steep is one infusion cycle within a brew. Steeps are numbered 1..N per
// brew by the store and are never updated after creation.
type Steep struct {
	ID              string    `json:"id"`
	BrewID          string    `json:"brewId"`
	SteepNumber     int       `json:"steepNumber"`
	DurationSeconds int       `json:"durationSeconds"`
	Rating          *int      `json:"rating"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Optional distinguishes "field absent from the request" from "field present"
// in a patch. For nullable fields, present-with-nil means an explicit null
// that overwrites the stored value.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// NewTeapot carries the caller-validated fields for teapot creation.
// The caller supplies a freshly generated unique ID.
type NewTeapot struct {
	ID          string
	Name        string
	Material    TeapotMaterial
	CapacityMl  int
	Style       TeapotStyle
	Description *string
}

// TeapotUpdate is a full replacement of a teapot's mutable fields (PUT).
// An absent optional description resets to null.
type TeapotUpdate struct {
	Name        string
	Material    TeapotMaterial
	CapacityMl  int
	Style       TeapotStyle
	Description *string
}

// TeapotPatch is a field-level merge for a teapot (PATCH). Nil pointers mean
// "keep the existing value".
type TeapotPatch struct {
	Name        *string
	Material    *TeapotMaterial
	CapacityMl  *int
	Style       *TeapotStyle
	Description Optional[*string]
}

// NewTea carries the caller-validated fields for tea creation.
type NewTea struct {
	ID               string
	Name             string
	Type             TeaType
	Origin           *string
	CaffeineLevel    CaffeineLevel
	SteepTempCelsius int
	SteepTimeSeconds int
	Description      *string
}

// TeaUpdate is a full replacement of a tea's mutable fields (PUT).
type TeaUpdate struct {
	Name             string
	Type             TeaType
	Origin           *string
	CaffeineLevel    CaffeineLevel
	SteepTempCelsius int
	SteepTimeSeconds int
	Description      *string
}

// TeaPatch is a field-level merge for a tea (PATCH).
type TeaPatch struct {
	Name             *string
	Type             *TeaType
	Origin           Optional[*string]
	CaffeineLevel    *CaffeineLevel
	SteepTempCelsius *int
	SteepTimeSeconds *int
	Description      Optional[*string]
}

// NewBrew carries the caller-validated fields for brew creation. The water
// temperature is optional; when nil the store snapshots the referenced tea's
// steep temperature at creation time.
type NewBrew struct {
	ID               string
	TeapotID         string
	TeaID            string
	WaterTempCelsius *int
	Notes            *string
}

// BrewPatch is a field-level merge for a brew (PATCH). Status can never be
// set to null; notes and completedAt can.
type BrewPatch struct {
	Status      *BrewStatus
	Notes       Optional[*string]
	CompletedAt Optional[*time.Time]
}

// NewSteep carries the caller-validated fields for steep creation. The steep
// number is assigned by the store, never by the caller.
type NewSteep struct {
	ID              string
	BrewID          string
	DurationSeconds int
	Rating          *int
	Notes           *string
}

// TeapotFilter holds optional exact-match predicates for teapot listing.
// Nil fields impose no constraint.
type TeapotFilter struct {
	Material *TeapotMaterial
	Style    *TeapotStyle
}

// TeaFilter holds optional exact-match predicates for tea listing.
type TeaFilter struct {
	Type          *TeaType
	CaffeineLevel *CaffeineLevel
}

// BrewFilter holds optional exact-match predicates for brew listing.
type BrewFilter struct {
	Status   *BrewStatus
	TeapotID *string
	TeaID    *string
}

func (f TeapotFilter) matches(t Teapot) bool {
	if f.Material != nil && t.Material != *f.Material {
		return false
	}
	if f.Style != nil && t.Style != *f.Style {
		return false
	}
	return true
}

func (f TeaFilter) matches(t Tea) bool {
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.CaffeineLevel != nil && t.CaffeineLevel != *f.CaffeineLevel {
		return false
	}
	return true
}

func (f BrewFilter) matches(b Brew) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.TeapotID != nil && b.TeapotID != *f.TeapotID {
		return false
	}
	if f.TeaID != nil && b.TeaID != *f.TeaID {
		return false
	}
	return true
}
