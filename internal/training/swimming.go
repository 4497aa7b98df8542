package training

import "fmt"

const (
	swimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 2.0
	swimmingCaloriesWeightMultiplier = 1.1
)

// Swimming is a pool swim. Speed comes from the pool lengths, distance
// from the stroke count.
type Swimming struct {
	training
	lengthPool float64
	countPool  int
}

// NewSwimming returns ErrDivisionUndefined when duration is 0.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	t, err := newTraining(action, duration, weight, swimmingLenStep)
	if err != nil {
		return nil, err
	}
	if countPool < 0 {
		return nil, fmt.Errorf("%w: pool count %d", ErrInvalidInput, countPool)
	}
	return &Swimming{training: t, lengthPool: lengthPool, countPool: countPool}, nil
}

func (s *Swimming) Distance() float64 {
	return s.distance()
}

func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}

func (s *Swimming) TrainingInfo() InfoMessage {
	return info("Swimming", s, s.duration)
}
