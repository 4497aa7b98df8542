package activity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/briangreenhill/ftracker/internal/training"
)

var errNoTrackPoints = errors.New("gpx file has no track points")

// ImportGPX stores a recorded run. The step count is estimated from the
// moving distance and the running step length.
func (a *Service) ImportGPX(ctx context.Context, gpxBytes []byte, weight float64) (Workout, error) {
	g, err := gpx.ParseBytes(gpxBytes)
	if err != nil {
		return Workout{}, err
	}
	if trackPoints(g) == 0 {
		return Workout{}, errNoTrackPoints
	}

	meters := g.MovingData().MovingDistance
	if meters == 0 {
		meters = g.Length2D()
	}
	hours := g.Duration() / 3600
	steps := math.Round(meters / training.RunningLenStep)

	return a.add(ctx, Workout{
		Code:   training.CodeRunning,
		Data:   []float64{steps, hours, weight},
		Splits: calculateSplits(g),
		GPX:    gpxBytes,
	})
}

func trackPoints(g *gpx.GPX) int {
	n := 0
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			n += len(segment.Points)
		}
	}
	return n
}

// calculateSplits walks the track and cuts a split at every full kilometer.
// Whatever remains after the last full kilometer becomes a final partial split.
func calculateSplits(g *gpx.GPX) []Split {
	var (
		splits        []Split
		totalDistance float64
		startTime     time.Time
		started       bool
		last          *gpx.GPXPoint
	)

	for ti := range g.Tracks {
		for si := range g.Tracks[ti].Segments {
			points := g.Tracks[ti].Segments[si].Points
			for i := 1; i < len(points); i++ {
				prev, cur := &points[i-1], &points[i]
				totalDistance += prev.Distance2D(cur)
				last = cur

				if !started {
					startTime = prev.Timestamp
					started = true
				}

				for totalDistance >= 1000 {
					splits = append(splits, Split{
						Distance:  1000,
						SplitTime: cur.Timestamp.Sub(startTime).Seconds(),
						Elevation: cur.Elevation.Value(),
					})
					startTime = cur.Timestamp
					totalDistance -= 1000
				}
			}
		}
	}

	if totalDistance > 0 && last != nil {
		splits = append(splits, Split{
			Distance:  totalDistance,
			SplitTime: last.Timestamp.Sub(startTime).Seconds(),
			Elevation: last.Elevation.Value(),
		})
	}

	return splits
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	file, err := os.Open(gpxFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
