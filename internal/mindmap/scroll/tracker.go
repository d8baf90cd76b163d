package scroll

// Region is one tracked target. Measure reports the target geometry and false
// while the target is not mounted or has no layout yet.
type Region struct {
	ID      string
	Range   Range
	Measure func() (Geometry, bool)
}

// Progress returns the region progress for v, or 0 when unmeasurable.
func (r Region) Progress(v Viewport) float64 {
	if r.Measure == nil {
		return 0
	}
	g, ok := r.Measure()
	if !ok {
		return 0
	}
	return Progress(r.Range, g, v)
}

// Frame is one progress notification.
type Frame struct {
	RegionID string
	Progress float64
}

type mounted struct {
	region   Region
	progress float64
}

type observer struct {
	notify func(Frame)
}

// Tracker recomputes the progress of mounted regions on every viewport update
// and notifies subscribers. Regions are independent of each other. A Tracker
// is not safe for concurrent use.
type Tracker struct {
	regions   []*mounted
	observers []*observer
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Mount starts tracking r and returns a function that stops tracking it.
// Mounting a region with the ID of an already mounted one replaces it.
func (t *Tracker) Mount(r Region) (unmount func()) {
	entry := &mounted{region: r}
	replaced := false
	for i, existing := range t.regions {
		if existing.region.ID == r.ID {
			t.regions[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		t.regions = append(t.regions, entry)
	}
	return func() {
		for i, existing := range t.regions {
			if existing == entry {
				t.regions = append(t.regions[:i], t.regions[i+1:]...)
				return
			}
		}
	}
}

// Subscribe registers fn for every frame produced by Update and returns a
// function that removes it.
func (t *Tracker) Subscribe(fn func(Frame)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	obs := &observer{notify: fn}
	t.observers = append(t.observers, obs)
	return func() {
		for i, existing := range t.observers {
			if existing == obs {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

// Update recomputes every mounted region for v, in mount order, and notifies
// subscribers once per region.
func (t *Tracker) Update(v Viewport) {
	for _, entry := range t.regions {
		entry.progress = entry.region.Progress(v)
	}
	// Snapshot so observers may unsubscribe or mount while being notified.
	regions := append([]*mounted(nil), t.regions...)
	observers := append([]*observer(nil), t.observers...)
	for _, entry := range regions {
		frame := Frame{RegionID: entry.region.ID, Progress: entry.progress}
		for _, obs := range observers {
			obs.notify(frame)
		}
	}
}

// Progress returns the last computed progress of the region id, or 0 when the
// region is unknown or has not been updated yet.
func (t *Tracker) Progress(id string) float64 {
	for _, entry := range t.regions {
		if entry.region.ID == id {
			return entry.progress
		}
	}
	return 0
}
