package activity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/briangreenhill/ftracker/internal/training"
)

// testTrack builds a straight northbound track: each point is about 100 m
// and 30 s after the previous one.
func testTrack(points int) []byte {
	start := time.Date(2024, time.May, 1, 7, 0, 0, 0, time.UTC)
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="ftracker-test" xmlns="http://www.topografix.com/GPX/1/1">
<trk><name>Morning Run</name><trkseg>
`)
	for i := 0; i < points; i++ {
		fmt.Fprintf(&b, `<trkpt lat="%.6f" lon="13.400000"><ele>%d</ele><time>%s</time></trkpt>
`, 52.5+float64(i)*0.0009, 30+i, start.Add(time.Duration(i)*30*time.Second).Format(time.RFC3339))
	}
	b.WriteString("</trkseg></trk></gpx>\n")
	return []byte(b.String())
}

func TestCalculateSplits(t *testing.T) {
	g, err := gpx.ParseBytes(testTrack(30))
	require.NoError(t, err)

	splits := calculateSplits(g)
	require.Len(t, splits, 3)
	assert.Equal(t, 1000.0, splits[0].Distance)
	assert.Equal(t, 1000.0, splits[1].Distance)
	assert.InDelta(t, 900, splits[2].Distance, 50)
	assert.InDelta(t, 300, splits[0].SplitTime, 30)

	var total float64
	for _, s := range splits {
		total += s.SplitTime
	}
	assert.InDelta(t, 29*30, total, 1e-6)
}

func TestImportGPX(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	track := testTrack(30)

	w, err := svc.ImportGPX(ctx, track, 70)
	require.NoError(t, err)
	assert.Equal(t, training.CodeRunning, w.Code)
	assert.Equal(t, "Running", w.Info.TrainingType)
	assert.InDelta(t, 29*30/3600.0, w.Info.Duration, 1e-9)
	assert.InDelta(t, 2.9, w.Info.Distance, 0.4)
	assert.Equal(t, 70.0, w.Data[2])
	assert.Len(t, w.Splits, 3)

	got, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, track, got.GPX)
	assert.Equal(t, w.Splits, got.Splits)
}

func TestImportGPXWithoutPoints(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ImportGPX(context.Background(), testTrack(0), 70)
	assert.ErrorIs(t, err, errNoTrackPoints)
}

func TestReadGPXFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.gpx")
	require.NoError(t, os.WriteFile(path, testTrack(3), 0o644))

	b, err := readGPXFile(path)
	require.NoError(t, err)
	assert.Equal(t, testTrack(3), b)

	_, err = readGPXFile(dir)
	assert.Error(t, err)

	_, err = readGPXFile(filepath.Join(dir, "missing.gpx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
