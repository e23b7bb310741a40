package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(id string, lat, lng float64, tags ...string) Candidate {
	return Candidate{ID: id, Name: id, Coordinates: &LatLng{Lat: lat, Lng: lng}, DurationMinutes: 60, TypeTags: tags}
}

func nowhere(id, name string) Candidate {
	return Candidate{ID: id, Name: name, DurationMinutes: 60}
}

func ids(items []Candidate) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestGridClusters(t *testing.T) {
	clusters := GridClusters([]Candidate{
		at("b", 10.002, 20.002),
		at("a", 10.001, 20.001),
		at("far", 11, 21),
		nowhere("x", "X"),
	}, 0)

	require.Len(t, clusters, 3)
	byKey := map[string][]string{}
	for _, c := range clusters {
		byKey[c.Key] = ids(c.Items)
	}
	assert.Equal(t, []string{"x"}, byKey[NoCoordsClusterKey])

	var nearKey string
	for k, members := range byKey {
		if len(members) == 2 {
			nearKey = k
		}
	}
	require.NotEmpty(t, nearKey)
	assert.Equal(t, []string{"a", "b"}, byKey[nearKey])
}

func TestKMeansClustersSeparatesGroups(t *testing.T) {
	items := []Candidate{
		at("b2", 10.5, 10.501),
		at("a1", 10, 10),
		at("a3", 10.001, 10),
		at("b1", 10.5, 10.5),
		at("a2", 10, 10.001),
		nowhere("n1", "Nowhere"),
	}

	clusters, noCoords := KMeansClusters(items, 2)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"n1"}, ids(noCoords))
	assert.Equal(t, "k00", clusters[0].Key)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(clusters[0].Items))
	assert.Equal(t, []string{"b1", "b2"}, ids(clusters[1].Items))
	require.NotNil(t, clusters[1].Centroid)
	assert.InDelta(t, 10.5, clusters[1].Centroid.Lat, 1e-9)

	again, _ := KMeansClusters(items, 2)
	assert.Equal(t, clusters, again)
}

func TestKMeansClustersCapsKAtDistinctPoints(t *testing.T) {
	items := []Candidate{at("a", 1, 1), at("b", 1, 1), at("c", 2, 2)}
	clusters, _ := KMeansClusters(items, 5)
	assert.Len(t, clusters, 2)

	clusters, noCoords := KMeansClusters([]Candidate{nowhere("x", "X")}, 3)
	assert.Empty(t, clusters)
	assert.Len(t, noCoords, 1)
}

func TestScoreAndRankClusters(t *testing.T) {
	museums := Cluster{Key: "m", Items: []Candidate{at("1", 0, 0, "Museum"), at("2", 0, 0, "street_food")}}
	parks := Cluster{Key: "p", Items: []Candidate{at("3", 0, 0, "park"), at("4", 0, 0), at("5", 0, 0)}}
	plain := Cluster{Key: "a", Items: []Candidate{at("6", 0, 0), at("7", 0, 0), at("8", 0, 0)}}

	assert.Equal(t, 2+10+3, ScoreCluster(museums, "museum", []string{"street food"}))
	assert.Equal(t, 3, ScoreCluster(parks, "museum", nil))

	ranked := RankClusters([]Cluster{parks, plain, museums}, "museum", []string{"street food"})
	assert.Equal(t, "m", ranked[0].Key)
	assert.Equal(t, "a", ranked[1].Key, "equal scores fall back to the key")
	assert.Equal(t, "p", ranked[2].Key)
}
