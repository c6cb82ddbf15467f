package analyze

import (
	"reflect"
	"testing"
)

func TestClusterValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		values    []float64
		tolerance float64
		wantReps  []float64
		wantSizes []int
	}{
		{
			name:      "restatements collapse into one cluster",
			values:    []float64{1000, 1030, 1050},
			tolerance: 0.10,
			wantReps:  []float64{1000},
			wantSizes: []int{3},
		},
		{
			name:      "distinct price points stay separate",
			values:    []float64{1000, 1000, 1000, 1500, 1500},
			tolerance: 0.10,
			wantReps:  []float64{1000, 1500},
			wantSizes: []int{3, 2},
		},
		{
			name:      "representative is first element not centroid",
			values:    []float64{1000, 1090, 1180},
			tolerance: 0.10,
			wantReps:  []float64{1000, 1180},
			wantSizes: []int{2, 1},
		},
		{
			name:      "zero stays a singleton",
			values:    []float64{0, 0, 100},
			tolerance: 0.10,
			wantReps:  []float64{0, 0, 100},
			wantSizes: []int{1, 1, 1},
		},
		{
			name:      "empty input",
			values:    nil,
			tolerance: 0.10,
			wantReps:  []float64{},
			wantSizes: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clusters := ClusterValues(tt.values, tt.tolerance)

			reps := make([]float64, 0, len(clusters))
			sizes := make([]int, 0, len(clusters))
			for _, c := range clusters {
				reps = append(reps, c.Representative)
				sizes = append(sizes, c.Size())
			}

			if !reflect.DeepEqual(reps, tt.wantReps) {
				t.Errorf("representatives = %v, want %v", reps, tt.wantReps)
			}
			if !reflect.DeepEqual(sizes, tt.wantSizes) {
				t.Errorf("sizes = %v, want %v", sizes, tt.wantSizes)
			}
		})
	}
}

func TestClusterValues_Deterministic(t *testing.T) {
	t.Parallel()

	values := []float64{990, 1010, 1100, 1210, 1330, 1000, 1460}

	first := ClusterValues(values, 0.10)
	for i := 0; i < 10; i++ {
		if got := ClusterValues(values, 0.10); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, want %v", i, got, first)
		}
	}
}

func TestClusterSpread(t *testing.T) {
	t.Parallel()

	clusters := ClusterValues([]float64{1000, 1000, 1000, 1500, 1500}, 0.10)
	min, max, spread := clusterSpread(clusters)

	if min != 1000 || max != 1500 {
		t.Errorf("min, max = %v, %v, want 1000, 1500", min, max)
	}
	if spread != 0.5 {
		t.Errorf("spread = %v, want 0.5", spread)
	}
}

func TestClusterSpread_IgnoresZeroRepresentatives(t *testing.T) {
	t.Parallel()

	clusters := ClusterValues([]float64{0, 1000, 1500}, 0.10)
	min, max, spread := clusterSpread(clusters)

	if min != 1000 || max != 1500 {
		t.Errorf("min, max = %v, %v, want 1000, 1500", min, max)
	}
	if spread != 0.5 {
		t.Errorf("spread = %v, want 0.5", spread)
	}
}
