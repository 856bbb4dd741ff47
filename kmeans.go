package pixelart

import (
	"math/rand"
	"slices"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"
)

const (
	// paletteSeed fixes the clustering RNG so identical inputs always
	// produce identical palettes.
	paletteSeed = 0

	// kmeansTolerance is the total centroid movement, in normalized
	// color units, below which the iteration stops.
	kmeansTolerance = 5.0 / 255.0

	// kmeansMaxIterations bounds the iteration when convergence stalls.
	kmeansMaxIterations = 50
)

// runKMeans groups the observations into at most k clusters with
// Lloyd's algorithm. Initial centroids are distinct observations drawn
// from a source seeded with seed, so the result is fully deterministic:
// the same samples and k always yield the same centroids in the same
// order. The effective k is capped at the number of distinct
// observations. A cluster left empty by an assignment round keeps its
// previous centroid.
func runKMeans(samples clusters.Observations, k int, seed int64) clusters.Clusters {
	if k <= 0 || len(samples) == 0 {
		return nil
	}

	cc := seedClusters(samples, k, rand.New(rand.NewSource(seed)))
	prev := make([]float64, 3)
	for range kmeansMaxIterations {
		cc.Reset()
		for _, s := range samples {
			// Nearest scans clusters in order, so equidistant samples
			// always land in the lowest-indexed cluster.
			cc[cc.Nearest(s)].Append(s)
		}

		movement := 0.0
		for i := range cc {
			copy(prev, cc[i].Center)
			cc[i].Recenter()
			movement += floats.Distance(prev, cc[i].Center, 2)
		}
		if movement < kmeansTolerance {
			break
		}
	}
	return cc
}

// seedClusters places initial centroids on distinct sample values
// chosen by rng, at most one centroid per distinct value.
func seedClusters(samples clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	uniq := make([]clusters.Coordinates, 0, len(samples))
	seen := make(map[[3]float64]struct{}, len(samples))
	for _, s := range samples {
		c := s.Coordinates()
		key := [3]float64{c[0], c[1], c[2]}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, c)
	}
	k = min(k, len(uniq))

	cc := make(clusters.Clusters, 0, k)
	for _, idx := range rng.Perm(len(uniq))[:k] {
		cc = append(cc, clusters.Cluster{Center: slices.Clone(uniq[idx])})
	}
	return cc
}
