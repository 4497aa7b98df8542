package training

const (
	runningLenStep = 0.65

	runningCaloriesMeanSpeedMultiplier = 18.0
	runningCaloriesMeanSpeedShift      = 1.79
)

// RunningLenStep is the step length in meters used for runs.
const RunningLenStep = runningLenStep

// Running is a run measured in steps.
type Running struct {
	training
}

// NewRunning returns ErrDivisionUndefined when duration is 0.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining(action, duration, weight, runningLenStep)
	if err != nil {
		return nil, err
	}
	return &Running{training: t}, nil
}

func (r *Running) Distance() float64 {
	return r.distance()
}

func (r *Running) MeanSpeed() float64 {
	return r.meanSpeed()
}

func (r *Running) SpentCalories() float64 {
	return (r.MeanSpeed()*runningCaloriesMeanSpeedMultiplier + runningCaloriesMeanSpeedShift) *
		r.weight / r.duration * mInKm
}

func (r *Running) TrainingInfo() InfoMessage {
	return info("Running", r, r.duration)
}
