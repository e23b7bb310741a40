package scheduling

import "sort"

const DefaultMaxOperations = 500

type dayState struct {
	date        string
	weekday     int
	blocks      []FixedBlock
	windows     []Interval
	freeMinutes int

	locked   []Candidate
	assigned []Candidate

	lockedMissed bool
}

func (d *dayState) load() int { return len(d.locked) + len(d.assigned) }

type run struct {
	prefs  ResolvedPreferences
	travel travelEstimator
	theme  string
	maxOps int

	days   []*dayState
	byDate map[string]*dayState
	names  map[string]string

	result    *Result
	exhausted bool
}

// Schedule runs the scheduling engine. It never fails: anything that cannot
// be placed is reported in Result.Unplaced, and rows rejected at the boundary
// in Result.Rejected. Identical requests produce identical results.
func Schedule(req Request) *Result {
	prefs := ResolvePreferences(req.Preferences)
	candidates, rejected := NormalizeCandidates(req.Candidates)
	dates := normalizeDates(req.Dates, req.MaxDays)

	r := &run{
		prefs:  prefs,
		theme:  req.Theme,
		maxOps: req.MaxOperations,
		byDate: map[string]*dayState{},
		names:  make(map[string]string, len(candidates)),
		result: &Result{
			Placements: []Placement{},
			Unplaced:   []Unplaced{},
			Rejected:   rejected,
			DayPlans:   []DayPlan{},
			Operations: []Operation{},
			States:     make(map[string]ItemState, len(candidates)),
		},
	}
	if r.maxOps <= 0 {
		r.maxOps = DefaultMaxOperations
	}
	mpm := req.MetersPerMinute
	if mpm <= 0 {
		mpm = MetersPerMinuteForMode(prefs.TravelMode)
	}
	r.travel = travelEstimator{metersPerMinute: mpm, cache: req.TravelCache}

	for _, c := range candidates {
		r.names[c.ID] = c.Name
		r.result.States[c.ID] = StatePending
	}
	if len(dates) == 0 {
		r.drop(candidates, ReasonNoDates)
		return r.result
	}

	r.buildDays(dates, groupFixedBlocks(req.FixedBlocks))
	r.assign(candidates, req.ClusterStrategy, req.GridResolution)
	r.pack()
	r.finish()
	return r.result
}

func (r *run) buildDays(dates []string, blocks map[string][]FixedBlock) {
	for _, date := range dates {
		d := &dayState{date: date, weekday: DayOfWeekFromISODate(date), blocks: blocks[date]}
		busy := make([]Interval, 0, len(d.blocks))
		for _, b := range d.blocks {
			busy = append(busy, Interval{StartMinute: b.StartMinute, EndMinute: b.EndMinute})
		}
		d.windows = ComputeFreeWindows(r.prefs.DayStartMinute, r.prefs.DayEndMinute, busy)
		d.freeMinutes = totalMinutes(d.windows)
		r.days = append(r.days, d)
		r.byDate[date] = d
	}
}

// assign pins locked candidates to their date and spreads the rest over the
// days cluster by cluster.
func (r *run) assign(candidates []Candidate, strategy ClusterStrategy, resolution float64) {
	var unlocked []Candidate
	for _, c := range candidates {
		if d, ok := r.byDate[c.lockDate()]; ok {
			d.locked = append(d.locked, c)
			r.result.States[c.ID] = StateAssignedToDay
			continue
		}
		// A lock outside the date pool is ignored.
		unlocked = append(unlocked, c)
	}
	if len(unlocked) == 0 {
		return
	}

	var clusters []Cluster
	var loose []Candidate
	if r.useKMeans(strategy, unlocked) {
		clusters, loose = KMeansClusters(unlocked, len(r.days))
	} else {
		clusters = GridClusters(unlocked, resolution)
	}

	for _, cl := range RankClusters(clusters, r.theme, r.prefs.Interests) {
		items := OrderByNearestNeighbor(cl.Items, nil)
		for len(items) > 0 {
			d := r.leastLoadedDay()
			room := r.prefs.DailyItemCap - d.load()
			if room <= 0 {
				// Every day is full; the packer spills what does not fit.
				room = len(items)
			}
			take := min(room, len(items))
			r.assignTo(d, items[:take])
			items = items[take:]
		}
	}
	for _, c := range loose {
		r.assignTo(r.leastLoadedDay(), []Candidate{c})
	}
}

func (r *run) useKMeans(strategy ClusterStrategy, unlocked []Candidate) bool {
	switch strategy {
	case ClusterGrid:
		return false
	case ClusterKMeans:
		return true
	}
	located := 0
	for _, c := range unlocked {
		if c.Coordinates != nil {
			located++
		}
	}
	return len(r.days) > 1 && located > 1
}

func (r *run) assignTo(d *dayState, items []Candidate) {
	for _, c := range items {
		d.assigned = append(d.assigned, c)
		r.result.States[c.ID] = StateAssignedToDay
	}
}

// leastLoadedDay prefers fewer items, then more free time, then the earlier date.
func (r *run) leastLoadedDay() *dayState {
	best := r.days[0]
	for _, d := range r.days[1:] {
		if d.load() < best.load() || (d.load() == best.load() && d.freeMinutes > best.freeMinutes) {
			best = d
		}
	}
	return best
}

func (r *run) pack() {
	var spill []Candidate
	for i, d := range r.days {
		last := i == len(r.days)-1
		if r.exhausted {
			r.drop(d.locked, ReasonBudget)
			r.drop(d.assigned, ReasonBudget)
			continue
		}

		pool := append(append([]Candidate{}, spill...), d.assigned...)
		spill = nil
		room := max(0, r.prefs.DailyItemCap-len(d.locked))
		picked, overflow := pool[:min(room, len(pool))], pool[min(room, len(pool)):]

		start := dayStartCoordinate(d.blocks, append(append([]Candidate{}, d.locked...), picked...))
		locked := OrderByNearestNeighbor(d.locked, start)
		flexStart := start
		for j := len(locked) - 1; j >= 0; j-- {
			if locked[j].Coordinates != nil {
				flexStart = locked[j].Coordinates
				break
			}
		}
		flexible := OrderByNearestNeighbor(picked, flexStart)

		queue := append(append([]Candidate{}, locked...), flexible...)
		for _, c := range queue {
			r.result.States[c.ID] = StateOrdered
		}

		p := newPacker(d, r.prefs, r.travel, start)
		for qi, c := range queue {
			if r.budgetSpent() {
				r.drop(queue[qi:], ReasonBudget)
				r.drop(overflow, ReasonBudget)
				overflow = nil
				break
			}
			if pl, ok := p.place(c); ok {
				r.result.Placements = append(r.result.Placements, pl)
				r.result.States[c.ID] = StatePlaced
				continue
			}
			switch {
			case qi < len(locked):
				d.lockedMissed = true
				r.unplace(c, ReasonLockedNoTime)
			case last:
				r.unplace(c, ReasonNoTime)
			default:
				spill = append(spill, c)
				r.result.States[c.ID] = StateSpilled
			}
		}

		for _, c := range overflow {
			if last {
				r.unplace(c, ReasonNoTime)
				continue
			}
			spill = append(spill, c)
			r.result.States[c.ID] = StateSpilled
		}
	}
	if r.exhausted {
		r.drop(spill, ReasonBudget)
	}
}

func (r *run) budgetSpent() bool {
	if len(r.result.Placements) >= r.maxOps {
		r.exhausted = true
		r.result.BudgetExhausted = true
	}
	return r.exhausted
}

func (r *run) unplace(c Candidate, reason string) {
	r.result.Unplaced = append(r.result.Unplaced, Unplaced{ID: c.ID, Name: c.Name, Reason: reason})
	r.result.States[c.ID] = StateUnplaced
}

func (r *run) drop(items []Candidate, reason string) {
	for _, c := range items {
		r.unplace(c, reason)
	}
}

func (r *run) finish() {
	sort.SliceStable(r.result.Placements, func(i, j int) bool {
		a, b := r.result.Placements[i], r.result.Placements[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartMinute != b.StartMinute {
			return a.StartMinute < b.StartMinute
		}
		return a.ID < b.ID
	})
	r.result.Operations = OperationsFor(r.result.Placements)

	missed := map[string]bool{}
	for _, d := range r.days {
		if d.lockedMissed {
			missed[d.date] = true
		}
	}
	r.result.DayPlans = SummarizeDays(r.result.Placements, r.names, SummaryOptions{
		Theme:        r.theme,
		Pace:         r.prefs.Pace,
		LockedMissed: missed,
	})
}

// OperationsFor turns placements into generic activity updates.
func OperationsFor(placements []Placement) []Operation {
	ops := make([]Operation, 0, len(placements))
	for _, p := range placements {
		ops = append(ops, Operation{
			Type:      OperationUpdateActivity,
			ID:        p.ID,
			Date:      p.Date,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		})
	}
	return ops
}

// packer walks one day's free windows left to right.
type packer struct {
	day      *dayState
	dayStart int
	buffer   int
	travel   travelEstimator
	startLoc *LatLng

	wi       int
	cursor   int
	loc      *LatLng
	anchored bool
}

func newPacker(d *dayState, prefs ResolvedPreferences, travel travelEstimator, start *LatLng) *packer {
	p := &packer{
		day:      d,
		dayStart: prefs.DayStartMinute,
		buffer:   prefs.BufferMinutes,
		travel:   travel,
		startLoc: start,
	}
	if len(d.windows) > 0 {
		p.cursor = d.windows[0].StartMinute
		p.anchored, p.loc = p.windowAnchor(0, start)
	}
	return p
}

// windowAnchor reports whether something precedes window j on this day and
// where the traveller stands when the window opens.
func (p *packer) windowAnchor(j int, fallback *LatLng) (bool, *LatLng) {
	w := p.day.windows[j]
	if w.StartMinute <= p.dayStart {
		return false, p.startLoc
	}
	var anchor *FixedBlock
	for i := range p.day.blocks {
		b := &p.day.blocks[i]
		if b.Coordinates == nil || b.EndMinute > w.StartMinute {
			continue
		}
		if anchor == nil || b.EndMinute >= anchor.EndMinute {
			anchor = b
		}
	}
	if anchor != nil {
		return true, anchor.Coordinates
	}
	return true, fallback
}

// place finds the earliest slot for c at or after the cursor. The packer
// state only advances on success, so a failed item does not consume windows.
func (p *packer) place(c Candidate) (Placement, bool) {
	open := OpenIntervalsForDay(c.OpenHours, p.day.weekday)
	for j := p.wi; j < len(p.day.windows); j++ {
		w := p.day.windows[j]
		cursor, loc, anchored := p.cursor, p.loc, p.anchored
		if j != p.wi {
			cursor = w.StartMinute
			anchored, loc = p.windowAnchor(j, p.loc)
		}

		earliest := cursor
		if anchored {
			earliest += p.travel.minutes(loc, c.Coordinates) + p.buffer
		}
		earliest = max(earliest, w.StartMinute)

		start, ok := fitWindow(open, earliest, w.EndMinute, c.DurationMinutes)
		if !ok {
			continue
		}
		end := start + c.DurationMinutes
		p.wi, p.cursor, p.loc, p.anchored = j, end, c.Coordinates, true
		return Placement{
			ID:          c.ID,
			Date:        p.day.date,
			StartMinute: start,
			EndMinute:   end,
			StartTime:   FormatMinutesToHHmm(start),
			EndTime:     FormatMinutesToHHmm(end),
		}, true
	}
	return Placement{}, false
}

// fitWindow returns the earliest start >= earliest such that the duration
// ends by limit and, when open hours apply, lies inside one open interval.
func fitWindow(open []Interval, earliest, limit, duration int) (int, bool) {
	if len(open) == 0 {
		return earliest, earliest+duration <= limit
	}
	if fixed, ok := AutoCorrectToNextOpenInterval(open, earliest, earliest+duration); ok &&
		fixed.StartMinute >= earliest && fixed.EndMinute <= limit {
		return fixed.StartMinute, true
	}
	for _, iv := range open {
		s := max(iv.StartMinute, earliest)
		if s+duration <= min(iv.EndMinute, limit) {
			return s, true
		}
	}
	return 0, false
}
