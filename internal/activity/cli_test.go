package activity

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/training"
)

func runCLI(t *testing.T, svc *Service, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.Config{DefaultWeightKg: 75}
	cli := NewCLI(&out, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), svc, args)
	err := cli.Run(context.Background())
	return out.String(), err
}

func TestCLIReportSamples(t *testing.T) {
	out, err := runCLI(t, newTestService(t), "report")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Тип тренировки: Swimming; Длительность: 1.000 ч; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 264.000.", lines[0])
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 13296750.000.", lines[1])
	assert.Equal(t, "Тип тренировки: SportsWalking; Длительность: 1.000 ч; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.", lines[2])
}

func TestCLIReportSinglePackage(t *testing.T) {
	out, err := runCLI(t, newTestService(t), "report", "--type", "RUN", "--data", "15000, 1, 75")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "Тип тренировки: Running;")

	_, err = runCLI(t, newTestService(t), "report", "--type", "XYZ", "--data", "1,1,1")
	assert.ErrorIs(t, err, training.ErrUnknownActivityCode)

	_, err = runCLI(t, newTestService(t), "report", "--type", "RUN", "--data", "1,x,1")
	assert.Error(t, err)
}

func TestCLIReportNeedsBothFlags(t *testing.T) {
	out, err := runCLI(t, newTestService(t), "report", "--data", "15000,1,75")
	assert.Error(t, err)
	assert.NotContains(t, out, "Тип тренировки")

	out, err = runCLI(t, newTestService(t), "report", "--type", "RUN")
	assert.Error(t, err)
	assert.NotContains(t, out, "Тип тренировки")
}

func TestCLIAddAndList(t *testing.T) {
	svc := newTestService(t)

	out, err := runCLI(t, svc, "add", "--type", "WLK", "--data", "9000,1,75,180")
	require.NoError(t, err)
	assert.Contains(t, out, "added successfully")

	out, err = runCLI(t, svc, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Тип тренировки: SportsWalking;")

	_, err = runCLI(t, svc, "add")
	assert.Error(t, err)
}

func TestCLIAddGPX(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "run.gpx")
	require.NoError(t, os.WriteFile(path, testTrack(30), 0o644))

	out, err := runCLI(t, svc, "add", "--gpx", path, "--weight", "68")
	require.NoError(t, err)
	assert.Contains(t, out, "Тип тренировки: Running;")

	workouts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, 68.0, workouts[0].Data[2])
}

func TestCLIUsage(t *testing.T) {
	out, err := runCLI(t, newTestService(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: ftracker")
	assert.Contains(t, out, "RUN, SWM, WLK")
}
