package training

import (
	"fmt"
	"math"
	"sort"
)

// Code selects a workout variant.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

type variant struct {
	arity int
	build func(data []float64) (Training, error)
}

var variants = map[Code]variant{
	CodeSwimming: {arity: 5, build: func(data []float64) (Training, error) {
		action, err := count("action", data[0])
		if err != nil {
			return nil, err
		}
		pools, err := count("pool count", data[4])
		if err != nil {
			return nil, err
		}
		s, err := NewSwimming(action, data[1], data[2], data[3], pools)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
	CodeRunning: {arity: 3, build: func(data []float64) (Training, error) {
		action, err := count("action", data[0])
		if err != nil {
			return nil, err
		}
		r, err := NewRunning(action, data[1], data[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	CodeWalking: {arity: 4, build: func(data []float64) (Training, error) {
		action, err := count("action", data[0])
		if err != nil {
			return nil, err
		}
		w, err := NewSportsWalking(action, data[1], data[2], data[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	}},
}

// Codes lists the recognised activity codes in sorted order.
func Codes() []Code {
	codes := make([]Code, 0, len(variants))
	for c := range variants {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// ReadPackage builds the variant for code, assigning data positionally as
// action, duration, weight, then height (WLK) or pool length and pool
// count (SWM).
func ReadPackage(code string, data []float64) (Training, error) {
	v, ok := variants[Code(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, code)
	}
	if len(data) != v.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrArityMismatch, code, v.arity, len(data))
	}
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: value %d of %s is %v", ErrInvalidInput, i, code, x)
		}
	}
	return v.build(data)
}

func count(name string, v float64) (int, error) {
	if v < 0 || v >= math.MaxInt || v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a whole non-negative number below %d, got %v", ErrInvalidInput, name, math.MaxInt, v)
	}
	return int(v), nil
}
