package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionLabel_KnownCodes(t *testing.T) {
	assert.Equal(t, "Clear", ConditionLabel(0))
	assert.Equal(t, "Partly Cloudy", ConditionLabel(2))
	assert.Equal(t, "Fog", ConditionLabel(45))
	assert.Equal(t, "Rain", ConditionLabel(61))
	assert.Equal(t, "Thunderstorm", ConditionLabel(95))
}

func TestConditionLabel_UnknownCodeDegradesToUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", ConditionLabel(999))
	assert.Equal(t, "Unknown", ConditionLabel(-1))
	assert.Equal(t, "Unknown", ConditionLabel(42))
}
