package brewing

import (
	"sort"
	"sync"
	"time"
)

// collection is an id-keyed map that preserves insertion order.
// Insertion order is the stable tiebreak for listing before pagination.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// put inserts or replaces a value. A replacement keeps its original position
// in the insertion order.
func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns the values in insertion order.
func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// paginate returns the slice [(page-1)*limit, (page-1)*limit+limit).
// Out-of-range pages yield an empty slice, never an error.
func paginate[T any](items []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// Store is the in-memory repository for all four entity collections.
//
// The store is volatile: contents live for the process lifetime and are lost
// on restart. It is constructed explicitly and handed to the API server; no
// package-level singleton exists.
//
// A single mutex guards every operation for its full logical duration, so
// compound sequences (merge-then-write, count-then-insert, delete-cascade)
// are atomic with respect to each other.
type Store struct {
	mu      sync.Mutex
	teapots collection[Teapot]
	teas    collection[Tea]
	brews   collection[Brew]
	steeps  collection[Steep]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		teapots: newCollection[Teapot](),
		teas:    newCollection[Tea](),
		brews:   newCollection[Brew](),
		steeps:  newCollection[Steep](),
	}
}

// ─── Teapots ───────────────────────────────────────────────

// CreateTeapot inserts a new teapot and stamps its timestamps.
func (s *Store) CreateTeapot(n NewTeapot) Teapot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t := Teapot{
		ID:          n.ID,
		Name:        n.Name,
		Material:    n.Material,
		CapacityMl:  n.CapacityMl,
		Style:       n.Style,
		Description: n.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.teapots.put(t.ID, t)
	return t
}

// GetTeapot retrieves a teapot by ID.
func (s *Store) GetTeapot(id string) (Teapot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teapots.get(id)
	if !ok {
		return Teapot{}, ErrTeapotNotFound
	}
	return t, nil
}

// UpdateTeapot fully replaces a teapot's mutable fields (PUT semantics).
// The creation timestamp is preserved; updatedAt is stamped.
func (s *Store) UpdateTeapot(id string, u TeapotUpdate) (Teapot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teapots.get(id)
	if !ok {
		return Teapot{}, ErrTeapotNotFound
	}

	t := Teapot{
		ID:          id,
		Name:        u.Name,
		Material:    u.Material,
		CapacityMl:  u.CapacityMl,
		Style:       u.Style,
		Description: u.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	s.teapots.put(id, t)
	return t, nil
}

// PatchTeapot merges the supplied fields onto the stored teapot. The whole
// fetch-merge-write sequence runs under the store lock.
func (s *Store) PatchTeapot(id string, p TeapotPatch) (Teapot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teapots.get(id)
	if !ok {
		return Teapot{}, ErrTeapotNotFound
	}

	t := mergeTeapot(existing, p)
	t.UpdatedAt = time.Now().UTC()
	s.teapots.put(id, t)
	return t, nil
}

// DeleteTeapot removes a teapot. Brews referencing it are left untouched;
// the reference was only ever checked at brew creation time.
func (s *Store) DeleteTeapot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.teapots.remove(id) {
		return ErrTeapotNotFound
	}
	return nil
}

// ListTeapots returns the requested page of teapots matching the filter,
// in insertion order.
func (s *Store) ListTeapots(f TeapotFilter, page, limit int) []Teapot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return paginate(s.filterTeapots(f), page, limit)
}

// CountTeapots returns the number of teapots matching the filter.
func (s *Store) CountTeapots(f TeapotFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.filterTeapots(f))
}

func (s *Store) filterTeapots(f TeapotFilter) []Teapot {
	out := []Teapot{}
	for _, t := range s.teapots.all() {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ─── Teas ──────────────────────────────────────────────────

// CreateTea inserts a new tea and stamps its timestamps.
func (s *Store) CreateTea(n NewTea) Tea {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t := Tea{
		ID:               n.ID,
		Name:             n.Name,
		Type:             n.Type,
		Origin:           n.Origin,
		CaffeineLevel:    n.CaffeineLevel,
		SteepTempCelsius: n.SteepTempCelsius,
		SteepTimeSeconds: n.SteepTimeSeconds,
		Description:      n.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.teas.put(t.ID, t)
	return t
}

// GetTea retrieves a tea by ID.
func (s *Store) GetTea(id string) (Tea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teas.get(id)
	if !ok {
		return Tea{}, ErrTeaNotFound
	}
	return t, nil
}

// UpdateTea fully replaces a tea's mutable fields (PUT semantics).
func (s *Store) UpdateTea(id string, u TeaUpdate) (Tea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teas.get(id)
	if !ok {
		return Tea{}, ErrTeaNotFound
	}

	t := Tea{
		ID:               id,
		Name:             u.Name,
		Type:             u.Type,
		Origin:           u.Origin,
		CaffeineLevel:    u.CaffeineLevel,
		SteepTempCelsius: u.SteepTempCelsius,
		SteepTimeSeconds: u.SteepTimeSeconds,
		Description:      u.Description,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        time.Now().UTC(),
	}
	s.teas.put(id, t)
	return t, nil
}

// PatchTea merges the supplied fields onto the stored tea.
func (s *Store) PatchTea(id string, p TeaPatch) (Tea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teas.get(id)
	if !ok {
		return Tea{}, ErrTeaNotFound
	}

	t := mergeTea(existing, p)
	t.UpdatedAt = time.Now().UTC()
	s.teas.put(id, t)
	return t, nil
}

// DeleteTea removes a tea. Existing brews keep their snapshotted water
// temperature; no cascade.
func (s *Store) DeleteTea(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.teas.remove(id) {
		return ErrTeaNotFound
	}
	return nil
}

// ListTeas returns the requested page of teas matching the filter.
func (s *Store) ListTeas(f TeaFilter, page, limit int) []Tea {
	s.mu.Lock()
	defer s.mu.Unlock()

	return paginate(s.filterTeas(f), page, limit)
}

// CountTeas returns the number of teas matching the filter.
func (s *Store) CountTeas(f TeaFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.filterTeas(f))
}

func (s *Store) filterTeas(f TeaFilter) []Tea {
	out := []Tea{}
	for _, t := range s.teas.all() {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ─── Brews ─────────────────────────────────────────────────

// CreateBrew inserts a new brew after resolving its teapot and tea
// references. Both lookups, the water-temperature snapshot, and the insert
// happen under one lock acquisition so a concurrent teapot or tea deletion
// cannot slip between the check and the write.
//
// When n.WaterTempCelsius is nil the referenced tea's steepTempCelsius is
// copied once; later changes to the tea never flow back into the brew.
func (s *Store) CreateBrew(n NewBrew) (Brew, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teapots.get(n.TeapotID); !ok {
		return Brew{}, ErrTeapotNotFound
	}
	tea, ok := s.teas.get(n.TeaID)
	if !ok {
		return Brew{}, ErrTeaNotFound
	}

	waterTemp := tea.SteepTempCelsius
	if n.WaterTempCelsius != nil {
		waterTemp = *n.WaterTempCelsius
	}

	now := time.Now().UTC()
	b := Brew{
		ID:               n.ID,
		TeapotID:         n.TeapotID,
		TeaID:            n.TeaID,
		Status:           StatusPreparing,
		WaterTempCelsius: waterTemp,
		Notes:            n.Notes,
		StartedAt:        now,
		CompletedAt:      nil,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.brews.put(b.ID, b)
	return b, nil
}

// GetBrew retrieves a brew by ID.
func (s *Store) GetBrew(id string) (Brew, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.brews.get(id)
	if !ok {
		return Brew{}, ErrBrewNotFound
	}
	return b, nil
}

// PatchBrew merges the supplied fields onto the stored brew. Only status,
// notes, and completedAt are patchable; identity, references, water
// temperature, and startedAt are immutable after creation.
func (s *Store) PatchBrew(id string, p BrewPatch) (Brew, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.brews.get(id)
	if !ok {
		return Brew{}, ErrBrewNotFound
	}

	b := mergeBrew(existing, p)
	b.UpdatedAt = time.Now().UTC()
	s.brews.put(id, b)
	return b, nil
}

// DeleteBrew removes a brew and every steep belonging to it. The cascade is
// a single critical section, so callers never observe a deleted brew with
// surviving steeps.
func (s *Store) DeleteBrew(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.brews.remove(id) {
		return ErrBrewNotFound
	}
	for _, st := range s.steeps.all() {
		if st.BrewID == id {
			s.steeps.remove(st.ID)
		}
	}
	return nil
}

// ListBrews returns the requested page of brews matching the filter.
func (s *Store) ListBrews(f BrewFilter, page, limit int) []Brew {
	s.mu.Lock()
	defer s.mu.Unlock()

	return paginate(s.filterBrews(f), page, limit)
}

// CountBrews returns the number of brews matching the filter.
func (s *Store) CountBrews(f BrewFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.filterBrews(f))
}

func (s *Store) filterBrews(f BrewFilter) []Brew {
	out := []Brew{}
	for _, b := range s.brews.all() {
		if f.matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// ─── Steeps ────────────────────────────────────────────────

// CreateSteep inserts a new steep for a brew. The steep number is computed
// and assigned inside the lock: count of existing steeps for the brew plus
// one. Sequential creations on one brew therefore yield exactly 1..N.
func (s *Store) CreateSteep(n NewSteep) (Steep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brews.get(n.BrewID); !ok {
		return Steep{}, ErrBrewNotFound
	}

	st := Steep{
		ID:              n.ID,
		BrewID:          n.BrewID,
		SteepNumber:     s.countSteeps(n.BrewID) + 1,
		DurationSeconds: n.DurationSeconds,
		Rating:          n.Rating,
		Notes:           n.Notes,
		CreatedAt:       time.Now().UTC(),
	}
	s.steeps.put(st.ID, st)
	return st, nil
}

// GetSteep retrieves a steep by ID.
func (s *Store) GetSteep(id string) (Steep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.steeps.get(id)
	if !ok {
		return Steep{}, ErrSteepNotFound
	}
	return st, nil
}

// ListSteepsByBrew returns the requested page of a brew's steeps sorted by
// steep number ascending. This is the one listing with a non-insertion-order
// sort.
func (s *Store) ListSteepsByBrew(brewID string, page, limit int) []Steep {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.filterSteeps(brewID)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].SteepNumber < filtered[j].SteepNumber
	})
	return paginate(filtered, page, limit)
}

// CountSteepsByBrew returns the number of steeps recorded for a brew.
func (s *Store) CountSteepsByBrew(brewID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.countSteeps(brewID)
}

// NextSteepNumber returns the number the next steep for a brew would
// receive. CreateSteep computes this itself under the same lock; this
// accessor exists for inspection only.
func (s *Store) NextSteepNumber(brewID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.countSteeps(brewID) + 1
}

func (s *Store) filterSteeps(brewID string) []Steep {
	out := []Steep{}
	for _, st := range s.steeps.all() {
		if st.BrewID == brewID {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) countSteeps(brewID string) int {
	n := 0
	for _, st := range s.steeps.all() {
		if st.BrewID == brewID {
			n++
		}
	}
	return n
}

// ─── Stats ─────────────────────────────────────────────────

// Stats is a snapshot of collection sizes, used by the readiness probe and
// the metrics gauges.
type Stats struct {
	Teapots       int
	Teas          int
	Brews         int
	Steeps        int
	BrewsByStatus map[BrewStatus]int
}

// GetStats returns a consistent snapshot of the store's collection sizes.
func (s *Store) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Teapots:       len(s.teapots.items),
		Teas:          len(s.teas.items),
		Brews:         len(s.brews.items),
		Steeps:        len(s.steeps.items),
		BrewsByStatus: make(map[BrewStatus]int),
	}
	for _, b := range s.brews.items {
		stats.BrewsByStatus[b.Status]++
	}
	return stats
}

// ─── Merges ────────────────────────────────────────────────

// mergeTeapot overlays the present patch fields onto a snapshot of the
// existing teapot. Pure function; the caller stamps UpdatedAt and writes
// back under the store lock.
func mergeTeapot(existing Teapot, p TeapotPatch) Teapot {
	t := existing
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Material != nil {
		t.Material = *p.Material
	}
	if p.CapacityMl != nil {
		t.CapacityMl = *p.CapacityMl
	}
	if p.Style != nil {
		t.Style = *p.Style
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	return t
}

func mergeTea(existing Tea, p TeaPatch) Tea {
	t := existing
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Origin.Set {
		t.Origin = p.Origin.Value
	}
	if p.CaffeineLevel != nil {
		t.CaffeineLevel = *p.CaffeineLevel
	}
	if p.SteepTempCelsius != nil {
		t.SteepTempCelsius = *p.SteepTempCelsius
	}
	if p.SteepTimeSeconds != nil {
		t.SteepTimeSeconds = *p.SteepTimeSeconds
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	return t
}

func mergeBrew(existing Brew, p BrewPatch) Brew {
	b := existing
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Notes.Set {
		b.Notes = p.Notes.Value
	}
	if p.CompletedAt.Set {
		b.CompletedAt = p.CompletedAt.Value
	}
	return b
}
