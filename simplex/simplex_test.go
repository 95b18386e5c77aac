package simplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIllustrations(t *testing.T) {
	panels := Illustrations()
	require.Len(t, panels, 3)

	for i, il := range panels {
		t.Run(il.Title, func(t *testing.T) {
			require.Equal(t, i+1, il.Dimension)
			require.NoError(t, il.Validate())

			opt := il.OptimalVertex()
			for _, v := range il.Vertices {
				require.LessOrEqual(t, v.Objective(), opt.Objective())
			}
			for _, c := range opt {
				require.Equal(t, 1.0, c)
			}
		})
	}
}

func TestCubeGeometry(t *testing.T) {
	c := cube()
	require.Len(t, c.Vertices, 8)
	require.Len(t, c.Edges, 12)

	for _, e := range c.Edges {
		diff := 0
		for k := range 3 {
			if c.Vertices[e[0]][k] != c.Vertices[e[1]][k] {
				diff++
			}
		}
		require.Equal(t, 1, diff, "edge %v must change exactly one coordinate", e)
	}

	require.Equal(t, []Edge{{0, 1}, {1, 3}, {3, 7}}, c.PathEdges())
	require.Equal(t, "(1, 1, 0)", c.Vertices[3].String())
}

func TestValidate(t *testing.T) {
	t.Run("diagonal step", func(t *testing.T) {
		il := square()
		il.Path = []int{0, 2}
		require.ErrorIs(t, il.Validate(), ErrInvalidPath)
	})

	t.Run("path stops early", func(t *testing.T) {
		il := square()
		il.Path = []int{0, 1}
		err := il.Validate()
		require.ErrorIs(t, err, ErrInvalidPath)
		require.Contains(t, err.Error(), "not the optimum (1, 1)")
	})

	t.Run("objective decreases", func(t *testing.T) {
		il := square()
		il.Path = []int{1, 0, 3, 2}
		require.ErrorIs(t, il.Validate(), ErrInvalidPath)
	})

	t.Run("index out of range", func(t *testing.T) {
		il := segment()
		il.Path = []int{0, 5}
		require.ErrorIs(t, il.Validate(), ErrInvalidPath)
	})

	t.Run("wrong dimension", func(t *testing.T) {
		il := segment()
		il.Vertices = []Vertex{{0, 0}, {1}}
		require.ErrorIs(t, il.Validate(), ErrInvalidPath)
	})
}

func TestExplain(t *testing.T) {
	lines := square().Explain()
	require.Equal(t, []string{
		"2D: square: the optimal point is (1, 1) (objective 2).",
		"  The simplex method moves along edges: (0, 0) -> (1, 0) -> (1, 1).",
	}, lines)

	lines = segment().Explain()
	require.Equal(t, "1D: line segment: the optimal point is (1) (objective 1).", lines[0])
}

func TestPathEdges(t *testing.T) {
	require.Nil(t, Illustration{Path: []int{0}}.PathEdges())
	require.Equal(t, []Edge{{0, 1}}, segment().PathEdges())
}
