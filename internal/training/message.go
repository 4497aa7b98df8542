package training

import "fmt"

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary with three decimal digits per value.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
