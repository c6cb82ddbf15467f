package analyze

import "math"

// DefaultClusterTolerance is the relative distance within which a value
// joins an existing cluster.
const DefaultClusterTolerance = 0.10

// Cluster groups near-equal numeric values. The representative is the
// first value assigned to the cluster and never changes, so clustering is
// deterministic for a given input order.
type Cluster struct {
	// Representative is the first member's value.
	Representative float64

	// Indexes are positions into the input slice, in assignment order.
	Indexes []int
}

// Size returns the number of members.
func (c Cluster) Size() int {
	return len(c.Indexes)
}

// ClusterValues assigns each value to the first existing cluster, scanned
// in creation order, whose representative is within the relative tolerance
// |v - rep| / rep < tolerance; when none matches the value opens a new
// cluster. Greedy first-match insertion makes the representative the first
// element seen rather than a centroid, so boundaries near the tolerance
// edge depend on input order. Callers must feed values in a fixed order to
// keep output reproducible.
//
// A zero representative is excluded from the relative comparison and stays
// a singleton, so zero never appears as a divisor.
func ClusterValues(values []float64, tolerance float64) []Cluster {
	clusters := make([]Cluster, 0)

	for i, v := range values {
		joined := false
		for j, c := range clusters {
			if c.Representative == 0 {
				continue
			}
			if math.Abs(v-c.Representative)/c.Representative < tolerance {
				clusters[j].Indexes = append(clusters[j].Indexes, i)
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, Cluster{
				Representative: v,
				Indexes:        []int{i},
			})
		}
	}
	return clusters
}

// clusterSpread returns the smallest and largest representatives and their
// relative spread (max-min)/min. Zero representatives are excluded from
// the spread so an accidental zero price cannot divide by itself.
func clusterSpread(clusters []Cluster) (min, max, spread float64) {
	min = math.Inf(1)
	for _, c := range clusters {
		if c.Representative == 0 {
			continue
		}
		if c.Representative < min {
			min = c.Representative
		}
		if c.Representative > max {
			max = c.Representative
		}
	}
	if math.IsInf(min, 1) || min == 0 {
		return 0, 0, 0
	}
	return min, max, (max - min) / min
}
