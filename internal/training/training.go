// Package training derives distance, mean speed and spent calories for a
// workout from raw sensor readings.
package training

import (
	"errors"
	"fmt"
)

const (
	mInKm  = 1000.0
	minInH = 60.0
)

var (
	// ErrUnknownActivityCode is returned when a package carries a code outside SWM, RUN and WLK.
	ErrUnknownActivityCode = errors.New("unknown activity code")
	// ErrArityMismatch is returned when a package has the wrong number of values for its code.
	ErrArityMismatch = errors.New("wrong number of values for activity")
	// ErrInvalidInput is returned when a count is negative or not a whole number.
	ErrInvalidInput = errors.New("invalid input value")
	// ErrDivisionUndefined is returned when a formula would divide by zero.
	ErrDivisionUndefined = errors.New("division by zero in training formula")
)

// Training is implemented by every workout variant.
type Training interface {
	// Distance is the covered distance in km.
	Distance() float64
	// MeanSpeed is the average speed over the whole duration in km/h.
	MeanSpeed() float64
	SpentCalories() float64
	TrainingInfo() InfoMessage
}

// training holds the readings shared by all variants. It has no
// SpentCalories, so it does not satisfy Training on its own.
type training struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newTraining(action int, duration, weight, lenStep float64) (training, error) {
	if action < 0 {
		return training{}, fmt.Errorf("%w: action count %d", ErrInvalidInput, action)
	}
	if duration == 0 {
		return training{}, fmt.Errorf("%w: duration is 0", ErrDivisionUndefined)
	}
	return training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}, nil
}

func (t training) distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

func (t training) meanSpeed() float64 {
	return t.distance() / t.duration
}

func info(name string, t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: name,
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
