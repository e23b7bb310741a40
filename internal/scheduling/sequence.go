package scheduling

import "sort"

// OrderByNearestNeighbor returns a visiting order built greedily: start at
// the item nearest to start (or the south-westernmost item when start is
// nil), then keep hopping to the closest unvisited item. Items without
// coordinates go last, sorted by name then id. Distance ties go to the
// smaller id.
func OrderByNearestNeighbor(items []Candidate, start *LatLng) []Candidate {
	var located, unlocated []Candidate
	for _, c := range items {
		if c.Coordinates != nil {
			located = append(located, c)
		} else {
			unlocated = append(unlocated, c)
		}
	}
	sort.Slice(unlocated, func(i, j int) bool {
		if unlocated[i].Name != unlocated[j].Name {
			return unlocated[i].Name < unlocated[j].Name
		}
		return unlocated[i].ID < unlocated[j].ID
	})

	route := make([]Candidate, 0, len(items))
	if len(located) > 0 {
		sort.Slice(located, func(i, j int) bool { return lessPoint(located[i], located[j]) })
		visited := make([]bool, len(located))

		current := 0
		if start != nil {
			current = nearestUnvisited(located, visited, *start)
		}
		for {
			visited[current] = true
			route = append(route, located[current])
			if len(route) == len(located) {
				break
			}
			current = nearestUnvisited(located, visited, *located[current].Coordinates)
		}
	}
	return append(route, unlocated...)
}

func nearestUnvisited(items []Candidate, visited []bool, from LatLng) int {
	best, bestDist := -1, 0.0
	for i, c := range items {
		if visited[i] {
			continue
		}
		d := DistanceMeters(from, *c.Coordinates)
		if best < 0 || d < bestDist || (d == bestDist && c.ID < items[best].ID) {
			best, bestDist = i, d
		}
	}
	return best
}

// dayStartCoordinate picks where a day's route begins: the earliest fixed
// block that has a location, else the centroid of the queued items.
func dayStartCoordinate(blocks []FixedBlock, items []Candidate) *LatLng {
	var first *FixedBlock
	for i := range blocks {
		b := &blocks[i]
		if b.Coordinates == nil {
			continue
		}
		if first == nil || b.StartMinute < first.StartMinute {
			first = b
		}
	}
	if first != nil {
		c := *first.Coordinates
		return &c
	}
	return centroidOf(items)
}
