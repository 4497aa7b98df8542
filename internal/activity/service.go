package activity

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/briangreenhill/ftracker/internal/observability"
	"github.com/briangreenhill/ftracker/internal/training"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Service struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewService(db *sql.DB, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Compute turns a sensor package into a summary without storing it.
func (a *Service) Compute(code string, data []float64) (training.InfoMessage, error) {
	t, err := training.ReadPackage(code, data)
	if err != nil {
		observability.RecordRejected(rejectReason(err))
		a.logger.Warn("Rejected sensor package", slog.String("code", code), slog.Any("error", err))
		return training.InfoMessage{}, err
	}

	info := t.TrainingInfo()
	observability.RecordComputed(info.TrainingType, info.Calories)
	return info, nil
}

// Add computes the package and stores it. A package identical to one
// already stored replaces it.
func (a *Service) Add(ctx context.Context, code string, data []float64) (Workout, error) {
	return a.add(ctx, Workout{Code: training.Code(code), Data: data})
}

func (a *Service) add(ctx context.Context, w Workout) (Workout, error) {
	info, err := a.Compute(string(w.Code), w.Data)
	if err != nil {
		return Workout{}, err
	}

	w.ID = uuid.NewString()
	w.Info = info
	w.Message = info.Message()
	w.Created = time.Now().UTC()
	hash := inputHash(w)

	existingRow := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM workouts WHERE input_hash = ?", hash)
	var count int
	if err := existingRow.Scan(&count); err != nil {
		return Workout{}, err
	}
	if count > 0 {
		_, err := a.db.ExecContext(ctx, "DELETE FROM workouts WHERE input_hash = ?", hash)
		if err != nil {
			return Workout{}, err
		}
		a.logger.Info("Deleted existing workout", slog.String("hash", hash))
	}

	dataBlob, err := encodeGob(w.Data)
	if err != nil {
		return Workout{}, err
	}
	var splitsBlob []byte
	if len(w.Splits) > 0 {
		if splitsBlob, err = encodeGob(w.Splits); err != nil {
			return Workout{}, err
		}
	}

	res, err := a.db.ExecContext(ctx, `
    INSERT INTO workouts
    (id,
    code,
    training_type,
    data,
    duration,
    distance,
    speed,
    calories,
    splits,
    gpx,
    input_hash,
    created_at)
    VALUES
    (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		string(w.Code),
		info.TrainingType,
		dataBlob,
		info.Duration,
		info.Distance,
		info.Speed,
		info.Calories,
		splitsBlob,
		w.GPX,
		hash,
		w.Created,
	)
	if err != nil {
		return Workout{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Workout{}, err
	}

	if affected != 1 {
		return Workout{}, fmt.Errorf("expected 1 row to be affected, got %d", affected)
	}

	observability.RecordStored(w.Created)
	a.logger.Info("Stored workout", slog.String("id", w.ID), slog.String("training_type", info.TrainingType))
	return w, nil
}

const selectWorkout = "SELECT id, code, training_type, data, duration, distance, speed, calories, splits, gpx, created_at FROM workouts"

func (a *Service) Get(ctx context.Context, id string) (Workout, error) {
	row := a.db.QueryRowContext(ctx, selectWorkout+" WHERE id = ?", id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return w, err
}

func (a *Service) List(ctx context.Context) ([]Workout, error) {
	rows, err := a.db.QueryContext(ctx, selectWorkout+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row scanner) (Workout, error) {
	var (
		w          Workout
		code       string
		dataVal    []byte
		splitsVal  []byte
		createdVal time.Time
	)
	if err := row.Scan(&w.ID, &code, &w.Info.TrainingType, &dataVal,
		&w.Info.Duration, &w.Info.Distance, &w.Info.Speed, &w.Info.Calories,
		&splitsVal, &w.GPX, &createdVal); err != nil {
		return Workout{}, err
	}

	w.Code = training.Code(code)
	w.Created = createdVal.UTC()
	w.Message = w.Info.Message()

	if err := decodeGob(dataVal, &w.Data); err != nil {
		return Workout{}, fmt.Errorf("decoding data of workout %s: %w", w.ID, err)
	}
	if len(splitsVal) > 0 {
		if err := decodeGob(splitsVal, &w.Splits); err != nil {
			return Workout{}, fmt.Errorf("decoding splits of workout %s: %w", w.ID, err)
		}
	}

	return w, nil
}

func encodeGob(v any) ([]byte, error) {
	var buffer bytes.Buffer
	enc := gob.NewEncoder(&buffer)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func decodeGob(b []byte, v any) error {
	dec := gob.NewDecoder(bytes.NewBuffer(b))
	return dec.Decode(v)
}

func inputHash(w Workout) string {
	h := sha256.New()
	h.Write([]byte(w.Code))
	for _, v := range w.Data {
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(v, 'g', -1, 64)))
	}
	h.Write([]byte{0})
	h.Write(w.GPX)
	return hex.EncodeToString(h.Sum(nil))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownActivityCode):
		return "unknown_code"
	case errors.Is(err, training.ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, training.ErrDivisionUndefined):
		return "division_undefined"
	case errors.Is(err, training.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
