package session

import (
	"fmt"
	"math"
	"strconv"
)

// ValidationError marks a malformed or out-of-range setting argument.
// The session is left untouched when it is returned.
type ValidationError struct {
	Param string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Param)
}

// SetTemperature parses raw and updates the temperature, 0.0..2.0.
func (s *Session) SetTemperature(raw string) (float64, error) {
	v, err := parseFloat(raw, "temperature", MinTemperature, MaxTemperature)
	if err != nil {
		return 0, err
	}
	s.Temperature = v
	return v, nil
}

// SetTopP parses raw and updates top_p, 0.0..1.0.
func (s *Session) SetTopP(raw string) (float64, error) {
	v, err := parseFloat(raw, "top_p", MinTopP, MaxTopP)
	if err != nil {
		return 0, err
	}
	s.TopP = v
	return v, nil
}

// SetThinkingBudget parses raw and updates the thinking budget, 0..24576.
func (s *Session) SetThinkingBudget(raw string) (int, error) {
	if raw == "" {
		return 0, &ValidationError{Param: "thinking_budget", Value: raw}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < MinBudget || v > MaxBudget {
		return 0, &ValidationError{Param: "thinking_budget", Value: raw}
	}
	s.ThinkingBudget = v
	return v, nil
}

func (s *Session) ToggleGrounding() bool {
	s.GroundingEnabled = !s.GroundingEnabled
	return s.GroundingEnabled
}

func (s *Session) ToggleThinking() bool {
	s.ThinkingVisible = !s.ThinkingVisible
	return s.ThinkingVisible
}

// AdjustTemperature shifts temperature by delta, clamping to the valid
// range instead of failing.
func (s *Session) AdjustTemperature(delta float64) float64 {
	s.Temperature = clamp(roundStep(s.Temperature+delta), MinTemperature, MaxTemperature)
	return s.Temperature
}

// AdjustTopP shifts top_p by delta with the same clamping behavior.
func (s *Session) AdjustTopP(delta float64) float64 {
	s.TopP = clamp(roundStep(s.TopP+delta), MinTopP, MaxTopP)
	return s.TopP
}

func parseFloat(raw, param string, min, max float64) (float64, error) {
	if raw == "" {
		return 0, &ValidationError{Param: param, Value: raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < min || v > max {
		return 0, &ValidationError{Param: param, Value: raw}
	}
	return v, nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundStep keeps repeated 0.1 adjustments from accumulating float noise.
func roundStep(v float64) float64 {
	return math.Round(v*10) / 10
}
