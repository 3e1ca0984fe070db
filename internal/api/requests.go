package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teapotframework/teapot-core/internal/brewing"
)

// nullable is a tri-state JSON field: absent, explicit null, or set.
// It backs the PATCH merge contract — an absent field keeps the stored
// value, an explicit null overwrites it with null.
type nullable[T any] struct {
	set   bool
	value *T
}

// UnmarshalJSON marks the field as present. A JSON null leaves the value nil.
func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.set = true
	if string(b) == "null" {
		n.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.value = &v
	return nil
}

// enumList renders the allowed values of an enum for validation messages.
func enumList[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// checkLen validates an inclusive character-length range.
func checkLen(errs validationErrors, field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		errs.add(field, fmt.Sprintf("%s must be between %d and %d characters", field, min, max))
	}
}

// checkMaxLen validates a maximum character length on a nullable string.
func checkMaxLen(errs validationErrors, field string, value *string, max int) {
	if value != nil && len(*value) > max {
		errs.add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

// checkRange validates an inclusive integer range.
func checkRange(errs validationErrors, field string, value, min, max int) {
	if value < min || value > max {
		errs.add(field, fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
}

func checkUUID(errs validationErrors, field, value string) {
	if _, err := uuid.Parse(value); err != nil {
		errs.add(field, field+" must be a valid UUID")
	}
}

// ─── Teapots ───────────────────────────────────────────────

type storeTeapotRequest struct {
	Name        *string          `json:"name"`
	Material    *string          `json:"material"`
	CapacityMl  *int             `json:"capacityMl"`
	Style       *string          `json:"style"`
	Description nullable[string] `json:"description"`
}

func (r *storeTeapotRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name == nil {
		errs.add("name", "name is required")
	} else {
		checkLen(errs, "name", *r.Name, 1, 100)
	}

	if r.Material == nil {
		errs.add("material", "material is required")
	} else if _, ok := brewing.ParseTeapotMaterial(*r.Material); !ok {
		errs.add("material", "material must be one of: "+enumList(brewing.AllTeapotMaterials()))
	}

	if r.CapacityMl == nil {
		errs.add("capacityMl", "capacityMl is required")
	} else {
		checkRange(errs, "capacityMl", *r.CapacityMl, 1, 5000)
	}

	if r.Style != nil {
		if _, ok := brewing.ParseTeapotStyle(*r.Style); !ok {
			errs.add("style", "style must be one of: "+enumList(brewing.AllTeapotStyles()))
		}
	}

	checkMaxLen(errs, "description", r.Description.value, 500)

	return errs
}

// styleOrDefault applies the english default for teapots created without a
// style. Call only after validate().
func (r *storeTeapotRequest) styleOrDefault() brewing.TeapotStyle {
	if r.Style == nil {
		return brewing.DefaultTeapotStyle
	}
	return brewing.TeapotStyle(*r.Style)
}

type updateTeapotRequest struct {
	Name        *string          `json:"name"`
	Material    *string          `json:"material"`
	CapacityMl  *int             `json:"capacityMl"`
	Style       *string          `json:"style"`
	Description nullable[string] `json:"description"`
}

func (r *updateTeapotRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name == nil {
		errs.add("name", "name is required")
	} else {
		checkLen(errs, "name", *r.Name, 1, 100)
	}

	if r.Material == nil {
		errs.add("material", "material is required")
	} else if _, ok := brewing.ParseTeapotMaterial(*r.Material); !ok {
		errs.add("material", "material must be one of: "+enumList(brewing.AllTeapotMaterials()))
	}

	if r.CapacityMl == nil {
		errs.add("capacityMl", "capacityMl is required")
	} else {
		checkRange(errs, "capacityMl", *r.CapacityMl, 1, 5000)
	}

	if r.Style == nil {
		errs.add("style", "style is required")
	} else if _, ok := brewing.ParseTeapotStyle(*r.Style); !ok {
		errs.add("style", "style must be one of: "+enumList(brewing.AllTeapotStyles()))
	}

	checkMaxLen(errs, "description", r.Description.value, 500)

	return errs
}

// toUpdate converts a validated request into a full replacement. An absent
// description resets to null — PUT replaces the entire entity.
func (r *updateTeapotRequest) toUpdate() brewing.TeapotUpdate {
	return brewing.TeapotUpdate{
		Name:        *r.Name,
		Material:    brewing.TeapotMaterial(*r.Material),
		CapacityMl:  *r.CapacityMl,
		Style:       brewing.TeapotStyle(*r.Style),
		Description: r.Description.value,
	}
}

type patchTeapotRequest struct {
	Name        *string          `json:"name"`
	Material    *string          `json:"material"`
	CapacityMl  *int             `json:"capacityMl"`
	Style       *string          `json:"style"`
	Description nullable[string] `json:"description"`
}

func (r *patchTeapotRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name != nil {
		checkLen(errs, "name", *r.Name, 1, 100)
	}
	if r.Material != nil {
		if _, ok := brewing.ParseTeapotMaterial(*r.Material); !ok {
			errs.add("material", "material must be one of: "+enumList(brewing.AllTeapotMaterials()))
		}
	}
	if r.CapacityMl != nil {
		checkRange(errs, "capacityMl", *r.CapacityMl, 1, 5000)
	}
	if r.Style != nil {
		if _, ok := brewing.ParseTeapotStyle(*r.Style); !ok {
			errs.add("style", "style must be one of: "+enumList(brewing.AllTeapotStyles()))
		}
	}
	checkMaxLen(errs, "description", r.Description.value, 500)

	return errs
}

func (r *patchTeapotRequest) toPatch() brewing.TeapotPatch {
	p := brewing.TeapotPatch{
		Name:       r.Name,
		CapacityMl: r.CapacityMl,
	}
	if r.Material != nil {
		m := brewing.TeapotMaterial(*r.Material)
		p.Material = &m
	}
	if r.Style != nil {
		st := brewing.TeapotStyle(*r.Style)
		p.Style = &st
	}
	if r.Description.set {
		p.Description = brewing.Some(r.Description.value)
	}
	return p
}

// ─── Teas ──────────────────────────────────────────────────

type storeTeaRequest struct {
	Name             *string          `json:"name"`
	Type             *string          `json:"type"`
	Origin           nullable[string] `json:"origin"`
	CaffeineLevel    *string          `json:"caffeineLevel"`
	SteepTempCelsius *int             `json:"steepTempCelsius"`
	SteepTimeSeconds *int             `json:"steepTimeSeconds"`
	Description      nullable[string] `json:"description"`
}

func (r *storeTeaRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name == nil {
		errs.add("name", "name is required")
	} else {
		checkLen(errs, "name", *r.Name, 1, 100)
	}

	if r.Type == nil {
		errs.add("type", "type is required")
	} else if _, ok := brewing.ParseTeaType(*r.Type); !ok {
		errs.add("type", "type must be one of: "+enumList(brewing.AllTeaTypes()))
	}

	checkMaxLen(errs, "origin", r.Origin.value, 100)

	if r.CaffeineLevel != nil {
		if _, ok := brewing.ParseCaffeineLevel(*r.CaffeineLevel); !ok {
			errs.add("caffeineLevel", "caffeineLevel must be one of: "+enumList(brewing.AllCaffeineLevels()))
		}
	}

	if r.SteepTempCelsius == nil {
		errs.add("steepTempCelsius", "steepTempCelsius is required")
	} else {
		checkRange(errs, "steepTempCelsius", *r.SteepTempCelsius, 60, 100)
	}

	if r.SteepTimeSeconds == nil {
		errs.add("steepTimeSeconds", "steepTimeSeconds is required")
	} else {
		checkRange(errs, "steepTimeSeconds", *r.SteepTimeSeconds, 1, 600)
	}

	checkMaxLen(errs, "description", r.Description.value, 1000)

	return errs
}

// caffeineOrDefault applies the medium default for teas created without a
// caffeine level. Call only after validate().
func (r *storeTeaRequest) caffeineOrDefault() brewing.CaffeineLevel {
	if r.CaffeineLevel == nil {
		return brewing.DefaultCaffeineLevel
	}
	return brewing.CaffeineLevel(*r.CaffeineLevel)
}

type updateTeaRequest struct {
	Name             *string          `json:"name"`
	Type             *string          `json:"type"`
	Origin           nullable[string] `json:"origin"`
	CaffeineLevel    *string          `json:"caffeineLevel"`
	SteepTempCelsius *int             `json:"steepTempCelsius"`
	SteepTimeSeconds *int             `json:"steepTimeSeconds"`
	Description      nullable[string] `json:"description"`
}

func (r *updateTeaRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name == nil {
		errs.add("name", "name is required")
	} else {
		checkLen(errs, "name", *r.Name, 1, 100)
	}

	if r.Type == nil {
		errs.add("type", "type is required")
	} else if _, ok := brewing.ParseTeaType(*r.Type); !ok {
		errs.add("type", "type must be one of: "+enumList(brewing.AllTeaTypes()))
	}

	checkMaxLen(errs, "origin", r.Origin.value, 100)

	if r.CaffeineLevel == nil {
		errs.add("caffeineLevel", "caffeineLevel is required")
	} else if _, ok := brewing.ParseCaffeineLevel(*r.CaffeineLevel); !ok {
		errs.add("caffeineLevel", "caffeineLevel must be one of: "+enumList(brewing.AllCaffeineLevels()))
	}

	if r.SteepTempCelsius == nil {
		errs.add("steepTempCelsius", "steepTempCelsius is required")
	} else {
		checkRange(errs, "steepTempCelsius", *r.SteepTempCelsius, 60, 100)
	}

	if r.SteepTimeSeconds == nil {
		errs.add("steepTimeSeconds", "steepTimeSeconds is required")
	} else {
		checkRange(errs, "steepTimeSeconds", *r.SteepTimeSeconds, 1, 600)
	}

	checkMaxLen(errs, "description", r.Description.value, 1000)

	return errs
}

func (r *updateTeaRequest) toUpdate() brewing.TeaUpdate {
	return brewing.TeaUpdate{
		Name:             *r.Name,
		Type:             brewing.TeaType(*r.Type),
		Origin:           r.Origin.value,
		CaffeineLevel:    brewing.CaffeineLevel(*r.CaffeineLevel),
		SteepTempCelsius: *r.SteepTempCelsius,
		SteepTimeSeconds: *r.SteepTimeSeconds,
		Description:      r.Description.value,
	}
}

type patchTeaRequest struct {
	Name             *string          `json:"name"`
	Type             *string          `json:"type"`
	Origin           nullable[string] `json:"origin"`
	CaffeineLevel    *string          `json:"caffeineLevel"`
	SteepTempCelsius *int             `json:"steepTempCelsius"`
	SteepTimeSeconds *int             `json:"steepTimeSeconds"`
	Description      nullable[string] `json:"description"`
}

func (r *patchTeaRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Name != nil {
		checkLen(errs, "name", *r.Name, 1, 100)
	}
	if r.Type != nil {
		if _, ok := brewing.ParseTeaType(*r.Type); !ok {
			errs.add("type", "type must be one of: "+enumList(brewing.AllTeaTypes()))
		}
	}
	checkMaxLen(errs, "origin", r.Origin.value, 100)
	if r.CaffeineLevel != nil {
		if _, ok := brewing.ParseCaffeineLevel(*r.CaffeineLevel); !ok {
			errs.add("caffeineLevel", "caffeineLevel must be one of: "+enumList(brewing.AllCaffeineLevels()))
		}
	}
	if r.SteepTempCelsius != nil {
		checkRange(errs, "steepTempCelsius", *r.SteepTempCelsius, 60, 100)
	}
	if r.SteepTimeSeconds != nil {
		checkRange(errs, "steepTimeSeconds", *r.SteepTimeSeconds, 1, 600)
	}
	checkMaxLen(errs, "description", r.Description.value, 1000)

	return errs
}

func (r *patchTeaRequest) toPatch() brewing.TeaPatch {
	p := brewing.TeaPatch{
		Name:             r.Name,
		SteepTempCelsius: r.SteepTempCelsius,
		SteepTimeSeconds: r.SteepTimeSeconds,
	}
	if r.Type != nil {
		t := brewing.TeaType(*r.Type)
		p.Type = &t
	}
	if r.CaffeineLevel != nil {
		c := brewing.CaffeineLevel(*r.CaffeineLevel)
		p.CaffeineLevel = &c
	}
	if r.Origin.set {
		p.Origin = brewing.Some(r.Origin.value)
	}
	if r.Description.set {
		p.Description = brewing.Some(r.Description.value)
	}
	return p
}

// ─── Brews ─────────────────────────────────────────────────

type storeBrewRequest struct {
	TeapotID         *string          `json:"teapotId"`
	TeaID            *string          `json:"teaId"`
	WaterTempCelsius *int             `json:"waterTempCelsius"`
	Notes            nullable[string] `json:"notes"`
}

func (r *storeBrewRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.TeapotID == nil {
		errs.add("teapotId", "teapotId is required")
	} else {
		checkUUID(errs, "teapotId", *r.TeapotID)
	}

	if r.TeaID == nil {
		errs.add("teaId", "teaId is required")
	} else {
		checkUUID(errs, "teaId", *r.TeaID)
	}

	if r.WaterTempCelsius != nil {
		checkRange(errs, "waterTempCelsius", *r.WaterTempCelsius, 60, 100)
	}

	checkMaxLen(errs, "notes", r.Notes.value, 500)

	return errs
}

type patchBrewRequest struct {
	Status      *string          `json:"status"`
	Notes       nullable[string] `json:"notes"`
	CompletedAt nullable[string] `json:"completedAt"`
}

func (r *patchBrewRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.Status != nil {
		if _, ok := brewing.ParseBrewStatus(*r.Status); !ok {
			errs.add("status", "status must be one of: "+enumList(brewing.AllBrewStatuses()))
		}
	}

	checkMaxLen(errs, "notes", r.Notes.value, 500)

	if r.CompletedAt.value != nil {
		if _, err := time.Parse(time.RFC3339, *r.CompletedAt.value); err != nil {
			errs.add("completedAt", "completedAt must be an ISO-8601 timestamp")
		}
	}

	return errs
}

func (r *patchBrewRequest) toPatch() brewing.BrewPatch {
	p := brewing.BrewPatch{}
	if r.Status != nil {
		st := brewing.BrewStatus(*r.Status)
		p.Status = &st
	}
	if r.Notes.set {
		p.Notes = brewing.Some(r.Notes.value)
	}
	if r.CompletedAt.set {
		if r.CompletedAt.value == nil {
			p.CompletedAt = brewing.Some[*time.Time](nil)
		} else {
			// Parse validated above; discard the error.
			t, _ := time.Parse(time.RFC3339, *r.CompletedAt.value)
			p.CompletedAt = brewing.Some(&t)
		}
	}
	return p
}

// ─── Steeps ────────────────────────────────────────────────

type storeSteepRequest struct {
	DurationSeconds *int             `json:"durationSeconds"`
	Rating          nullable[int]    `json:"rating"`
	Notes           nullable[string] `json:"notes"`
}

func (r *storeSteepRequest) validate() validationErrors {
	errs := validationErrors{}

	if r.DurationSeconds == nil {
		errs.add("durationSeconds", "durationSeconds is required")
	} else if *r.DurationSeconds < 1 {
		errs.add("durationSeconds", "durationSeconds must be at least 1")
	}

	if r.Rating.value != nil {
		checkRange(errs, "rating", *r.Rating.value, 1, 5)
	}

	checkMaxLen(errs, "notes", r.Notes.value, 200)

	return errs
}
