package session

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...cmeans.Option) *cmeans.Engine {
	t.Helper()
	eng, err := cmeans.New(opts...)
	require.NoError(t, err)
	return eng
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(newEngine(t))
	require.NoError(t, err)

	assert.Equal(t, cmeans.AlgorithmFuzzy, s.Algorithm())
	assert.Equal(t, model.DefaultBounds, s.Bounds())
	assert.Empty(t, s.Points())
	assert.Empty(t, s.Centroids())
	assert.Equal(t, 0, s.Iteration())
}

func TestNew_Invalid(t *testing.T) {
	eng := newEngine(t)

	_, err := New(eng, WithBounds(model.Bounds{MinX: 1, MaxX: -1}))
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = New(eng, WithEpsilon(-1))
	assert.ErrorIs(t, err, ErrInvalidEpsilon)

	_, err = New(eng, WithEpsilon(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidEpsilon)

	_, err = New(eng, WithAlgorithm(cmeans.Algorithm(9)))
	assert.ErrorIs(t, err, cmeans.ErrUnknownAlgorithm)
}

func TestAddPoint_Bounds(t *testing.T) {
	s, err := New(newEngine(t), WithBounds(model.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}))
	require.NoError(t, err)

	require.NoError(t, s.AddPoint(model.Pt(10, 0)))
	require.NoError(t, s.AddCentroid(model.Pt(5, 5)))

	err = s.AddPoint(model.Pt(11, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, model.Pt(11, 0), oob.Point)

	assert.ErrorIs(t, s.AddCentroid(model.Pt(0, -0.5)), ErrOutOfBounds)

	assert.Equal(t, model.Points{model.Pt(10, 0)}, s.Points())
	assert.Equal(t, model.Points{model.Pt(5, 5)}, s.Centroids())
}

func TestGeneratePoints(t *testing.T) {
	s, err := New(newEngine(t), WithSeed(7))
	require.NoError(t, err)

	generated := s.GeneratePoints(20)
	require.Len(t, generated, 20)
	assert.Equal(t, generated, s.Points())
	for _, p := range generated {
		assert.True(t, s.Bounds().Contains(p))
	}

	seeds := s.SeedCentroids(3)
	assert.Len(t, seeds, 3)
	assert.Equal(t, seeds, s.Centroids())
}

func TestIterate_CommitsCandidates(t *testing.T) {
	s, err := New(newEngine(t), WithAlgorithm(cmeans.AlgorithmHard))
	require.NoError(t, err)

	for _, p := range model.Points{model.Pt(0, 0), model.Pt(2, 0), model.Pt(10, 0), model.Pt(12, 0)} {
		require.NoError(t, s.AddPoint(p))
	}
	require.NoError(t, s.AddCentroid(model.Pt(0, 0)))
	require.NoError(t, s.AddCentroid(model.Pt(10, 0)))

	r, err := s.Iterate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.Cost)
	assert.Equal(t, model.Points{model.Pt(1, 0), model.Pt(11, 0)}, s.Centroids())
	assert.Equal(t, 1, s.Iteration())
}

func TestIterate_NoCandidates(t *testing.T) {
	s, err := New(newEngine(t))
	require.NoError(t, err)
	require.NoError(t, s.AddCentroid(model.Pt(1, 1)))

	r, err := s.Iterate(context.Background())
	assert.ErrorIs(t, err, ErrNoCandidates)
	require.NotNil(t, r)
	assert.Equal(t, model.Points{model.Pt(1, 1)}, s.Centroids(), "centroids untouched")
	assert.Equal(t, 0, s.Iteration())
}

func TestIterate_Converged(t *testing.T) {
	s, err := New(newEngine(t), WithAlgorithm(cmeans.AlgorithmHard))
	require.NoError(t, err)
	require.NoError(t, s.AddPoint(model.Pt(3, 3)))
	require.NoError(t, s.AddCentroid(model.Pt(3, 3)))

	_, err = s.Iterate(context.Background())
	assert.ErrorIs(t, err, ErrConverged)
}

func TestIterate_Degenerate(t *testing.T) {
	var buf bytes.Buffer
	logger := cmeans.NewLogger(slog.NewTextHandler(&buf, nil))

	s, err := New(newEngine(t), WithLogger(logger))
	require.NoError(t, err)

	s.points = model.Points{model.Pt(0, 0), model.Pt(5, 0)}

	// Every distance to a NaN centroid is NaN, and so is its candidate.
	s.centroids = model.Points{model.Pt(math.NaN(), 0)}
	_, err = s.Iterate(context.Background())
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.Contains(t, buf.String(), "centroids rejected")
}

func TestSetAlgorithm(t *testing.T) {
	s, err := New(newEngine(t))
	require.NoError(t, err)

	require.NoError(t, s.SetAlgorithm(cmeans.AlgorithmHard))
	assert.Equal(t, cmeans.AlgorithmHard, s.Algorithm())
	assert.ErrorIs(t, s.SetAlgorithm(cmeans.Algorithm(-1)), cmeans.ErrUnknownAlgorithm)
	assert.Equal(t, cmeans.AlgorithmHard, s.Algorithm())
}

func TestReset(t *testing.T) {
	s, err := New(newEngine(t), WithAlgorithm(cmeans.AlgorithmHard))
	require.NoError(t, err)
	s.GeneratePoints(10)
	s.SeedCentroids(2)
	_, _ = s.Iterate(context.Background())

	s.Reset()
	assert.Empty(t, s.Points())
	assert.Empty(t, s.Centroids())
	assert.Equal(t, 0, s.Iteration())
	assert.Equal(t, cmeans.AlgorithmHard, s.Algorithm())
}

func TestRun_HardReachesFixedPoint(t *testing.T) {
	s, err := New(newEngine(t), WithAlgorithm(cmeans.AlgorithmHard))
	require.NoError(t, err)

	for _, p := range model.Points{model.Pt(0, 0), model.Pt(2, 0), model.Pt(10, 0), model.Pt(12, 0)} {
		require.NoError(t, s.AddPoint(p))
	}
	s.SetCentroids(model.Points{model.Pt(0, 0), model.Pt(10, 0)})

	out, err := s.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, out.Converged)
	assert.Equal(t, 2, out.Iterations)
	assert.Equal(t, model.Points{model.Pt(1, 0), model.Pt(11, 0)}, out.Centroids)
	assert.Equal(t, 4.0, out.Result.Cost)
}

func TestRun_Epsilon(t *testing.T) {
	s, err := New(newEngine(t), WithAlgorithm(cmeans.AlgorithmFuzzy), WithEpsilon(1e6))
	require.NoError(t, err)
	s.GeneratePoints(10)
	s.SeedCentroids(2)

	out, err := s.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, out.Converged)
	assert.Equal(t, 0, out.Iterations)
}

func TestRun_MaxIter(t *testing.T) {
	s, err := New(newEngine(t), WithSeed(1))
	require.NoError(t, err)
	s.GeneratePoints(40)
	s.SeedCentroids(3)

	out, err := s.Run(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Iterations)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := New(newEngine(t))
	require.NoError(t, err)
	s.GeneratePoints(10)
	s.SeedCentroids(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Run(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NoCandidates(t *testing.T) {
	s, err := New(newEngine(t))
	require.NoError(t, err)

	_, err = s.Run(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNoCandidates)
}
