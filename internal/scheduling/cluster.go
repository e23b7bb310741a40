package scheduling

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	DefaultGridResolution = 0.02
	NoCoordsClusterKey    = "no_coords"
	kMeansRounds          = 8
)

// Cluster is a group of candidates meant to share a day.
type Cluster struct {
	Key      string
	Items    []Candidate
	Centroid *LatLng
}

// GridClusters buckets candidates by rounding their coordinates to a grid of
// the given resolution in degrees. Candidates without coordinates share the
// NoCoordsClusterKey bucket. Output is ordered by key, items by id.
func GridClusters(items []Candidate, resolution float64) []Cluster {
	if resolution <= 0 || math.IsNaN(resolution) {
		resolution = DefaultGridResolution
	}
	buckets := map[string][]Candidate{}
	for _, c := range items {
		key := NoCoordsClusterKey
		if c.Coordinates != nil {
			key = fmt.Sprintf("g:%d:%d",
				int64(math.Round(c.Coordinates.Lat/resolution)),
				int64(math.Round(c.Coordinates.Lng/resolution)))
		}
		buckets[key] = append(buckets[key], c)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Cluster, 0, len(keys))
	for _, k := range keys {
		members := sortedByID(buckets[k])
		out = append(out, Cluster{Key: k, Items: members, Centroid: centroidOf(members)})
	}
	return out
}

// KMeansClusters groups candidates with coordinates into at most desired
// clusters. Candidates without coordinates are returned separately.
func KMeansClusters(items []Candidate, desired int) ([]Cluster, []Candidate) {
	var points, noCoords []Candidate
	distinct := map[LatLng]struct{}{}
	for _, c := range items {
		if c.Coordinates == nil {
			noCoords = append(noCoords, c)
			continue
		}
		points = append(points, c)
		distinct[*c.Coordinates] = struct{}{}
	}
	noCoords = sortedByID(noCoords)

	k := min(desired, len(distinct))
	if k <= 0 {
		return []Cluster{}, noCoords
	}

	sort.Slice(points, func(i, j int) bool { return lessPoint(points[i], points[j]) })
	centroids := seedCentroids(points, k)

	assign := make([]int, len(points))
	for i := range assign {
		assign[i] = -1
	}
	for round := 0; round < kMeansRounds; round++ {
		changed := false
		for i, p := range points {
			j := nearestCentroid(*p.Coordinates, centroids)
			if assign[i] != j {
				assign[i] = j
				changed = true
			}
		}
		if !changed {
			break
		}
		sums := make([]LatLng, k)
		counts := make([]int, k)
		for i, p := range points {
			sums[assign[i]].Lat += p.Coordinates.Lat
			sums[assign[i]].Lng += p.Coordinates.Lng
			counts[assign[i]]++
		}
		for j := range centroids {
			if counts[j] > 0 {
				centroids[j] = LatLng{Lat: sums[j].Lat / float64(counts[j]), Lng: sums[j].Lng / float64(counts[j])}
			}
		}
	}

	members := make([][]Candidate, k)
	for i, p := range points {
		members[assign[i]] = append(members[assign[i]], p)
	}
	out := make([]Cluster, 0, k)
	for j := range members {
		if len(members[j]) == 0 {
			continue
		}
		c := centroids[j]
		out = append(out, Cluster{Key: fmt.Sprintf("k%02d", j), Items: sortedByID(members[j]), Centroid: &c})
	}
	return out, noCoords
}

// seedCentroids uses farthest-point seeding over points sorted by lessPoint.
func seedCentroids(points []Candidate, k int) []LatLng {
	centroids := []LatLng{*points[0].Coordinates}
	chosen := map[LatLng]bool{*points[0].Coordinates: true}
	for len(centroids) < k {
		best, bestDist := -1, -1.0
		for i, p := range points {
			if chosen[*p.Coordinates] {
				continue
			}
			d := math.Inf(1)
			for _, c := range centroids {
				d = math.Min(d, DistanceMeters(*p.Coordinates, c))
			}
			if d > bestDist || (d == bestDist && p.ID < points[best].ID) {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			break
		}
		centroids = append(centroids, *points[best].Coordinates)
		chosen[*points[best].Coordinates] = true
	}
	return centroids
}

func nearestCentroid(p LatLng, centroids []LatLng) int {
	best, bestDist := 0, math.Inf(1)
	for j, c := range centroids {
		if d := DistanceMeters(p, c); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// ScoreCluster rates a cluster for day filling: one point per item, ten per
// item matching the theme, three per item matching a user interest.
func ScoreCluster(c Cluster, theme string, interests []string) int {
	theme = normalizeTag(theme)
	wanted := make([]string, 0, len(interests))
	for _, in := range interests {
		if n := normalizeTag(in); n != "" {
			wanted = append(wanted, n)
		}
	}

	score := len(c.Items)
	for _, item := range c.Items {
		if theme != "" && hasTag(item.TypeTags, theme) {
			score += 10
		}
		for _, w := range wanted {
			if hasTag(item.TypeTags, w) {
				score += 3
				break
			}
		}
	}
	return score
}

// RankClusters orders clusters by descending score, ties by key.
func RankClusters(clusters []Cluster, theme string, interests []string) []Cluster {
	scores := make(map[string]int, len(clusters))
	for _, c := range clusters {
		scores[c.Key] = ScoreCluster(c, theme, interests)
	}
	ranked := append([]Cluster(nil), clusters...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].Key], scores[ranked[j].Key]
		if si != sj {
			return si > sj
		}
		return ranked[i].Key < ranked[j].Key
	})
	return ranked
}

func normalizeTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if normalizeTag(t) == want {
			return true
		}
	}
	return false
}

func centroidOf(items []Candidate) *LatLng {
	var sum LatLng
	n := 0
	for _, c := range items {
		if c.Coordinates == nil {
			continue
		}
		sum.Lat += c.Coordinates.Lat
		sum.Lng += c.Coordinates.Lng
		n++
	}
	if n == 0 {
		return nil
	}
	return &LatLng{Lat: sum.Lat / float64(n), Lng: sum.Lng / float64(n)}
}

// lessPoint orders candidates with coordinates by lat, lng, then id.
func lessPoint(a, b Candidate) bool {
	if a.Coordinates.Lat != b.Coordinates.Lat {
		return a.Coordinates.Lat < b.Coordinates.Lat
	}
	if a.Coordinates.Lng != b.Coordinates.Lng {
		return a.Coordinates.Lng < b.Coordinates.Lng
	}
	return a.ID < b.ID
}

func sortedByID(items []Candidate) []Candidate {
	out := append([]Candidate(nil), items...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
