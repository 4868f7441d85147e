package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTemperature(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, raw := range []string{"0", "0.3", "0.9", "1.5", "2"} {
			t.Run(raw, func(t *testing.T) {
				s := New(nil)
				v, err := s.SetTemperature(raw)
				require.NoError(t, err)
				assert.Equal(t, v, s.Temperature)
			})
		}
	})

	t.Run("invalid values leave session unchanged", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "-0.1", "2.1", "NaN", "1,5"} {
			t.Run(raw, func(t *testing.T) {
				s := New(nil)
				_, err := s.SetTemperature(raw)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "temperature", validationErr.Param)
				assert.Equal(t, DefaultTemperature, s.Temperature)
			})
		}
	})
}

func TestSetTopP(t *testing.T) {
	s := New(nil)

	v, err := s.SetTopP("0.5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 0.5, s.TopP)

	_, err = s.SetTopP("1.01")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0.5, s.TopP)
}

func TestSetThinkingBudget(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"4096", 4096, false},
		{"24576", 24576, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"24577", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := New(nil)
			v, err := s.SetThinkingBudget(tt.raw)
			if tt.wantErr {
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, DefaultThinkingBudget, s.ThinkingBudget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.want, s.ThinkingBudget)
		})
	}
}

func TestAdjustTemperature_ClampsAtBoundaries(t *testing.T) {
	s := New(nil)
	s.Temperature = MaxTemperature

	for range 3 {
		assert.Equal(t, MaxTemperature, s.AdjustTemperature(AdjustStep))
	}

	s.Temperature = MinTemperature
	for range 3 {
		assert.Equal(t, MinTemperature, s.AdjustTemperature(-AdjustStep))
	}
}

func TestAdjustTemperature_StepsWithoutFloatNoise(t *testing.T) {
	s := New(nil)

	assert.Equal(t, 0.4, s.AdjustTemperature(AdjustStep))
	assert.Equal(t, 0.5, s.AdjustTemperature(AdjustStep))
	assert.Equal(t, 0.4, s.AdjustTemperature(-AdjustStep))
}

func TestAdjustTopP_ClampsAtBoundaries(t *testing.T) {
	s := New(nil)

	assert.Equal(t, MaxTopP, s.AdjustTopP(AdjustStep))
	assert.Equal(t, MaxTopP, s.AdjustTopP(AdjustStep))

	s.TopP = MinTopP
	assert.Equal(t, MinTopP, s.AdjustTopP(-AdjustStep))
}

func TestToggles_AreInvolutions(t *testing.T) {
	s := New(nil)

	assert.True(t, s.ToggleGrounding())
	assert.False(t, s.ToggleGrounding())
	assert.False(t, s.GroundingEnabled)

	assert.False(t, s.ToggleThinking())
	assert.True(t, s.ToggleThinking())
	assert.True(t, s.ThinkingVisible)
}
