package training

import "fmt"

const (
	walkingLenStep = 0.65
	kmhInMsec      = 0.278
	cmInM          = 100.0

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a race walk; calories depend on the walker's height.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking returns ErrDivisionUndefined when duration or height is 0.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	t, err := newTraining(action, duration, weight, walkingLenStep)
	if err != nil {
		return nil, err
	}
	if height == 0 {
		return nil, fmt.Errorf("%w: height is 0", ErrDivisionUndefined)
	}
	return &SportsWalking{training: t, height: height}, nil
}

func (w *SportsWalking) Distance() float64 {
	return w.distance()
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.meanSpeed()
}

// SpentCalories sums the weight and speed terms before scaling by minutes.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed() * kmhInMsec
	return (walkingCaloriesWeightMultiplier*w.weight +
		(speed*speed/(w.height/cmInM))*walkingSpeedHeightMultiplier*w.weight) *
		(w.duration * minInH)
}

func (w *SportsWalking) TrainingInfo() InfoMessage {
	return info("SportsWalking", w, w.duration)
}
