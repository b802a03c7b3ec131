package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floodaware.app/internal/core/weather"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  weather.Snapshot
		wantLevel Level
		wantWhy   []string
	}{
		{
			name:      "HeavyRainOnly",
			snapshot:  weather.Snapshot{RainfallMm1h: 60, WindSpeedMs: 5, HumidityPct: 40},
			wantLevel: LevelHigh,
			wantWhy:   []string{"Heavy Rainfall: 60mm/h"},
		},
		{
			name:      "WindAndHumidity",
			snapshot:  weather.Snapshot{RainfallMm1h: 10, WindSpeedMs: 20, HumidityPct: 90},
			wantLevel: LevelMedium,
			wantWhy:   []string{"High Wind Speed: 20 m/s", "High Humidity: 90%"},
		},
		{
			name:      "AllRulesFire",
			snapshot:  weather.Snapshot{RainfallMm1h: 72.5, WindSpeedMs: 15.5, HumidityPct: 97},
			wantLevel: LevelHigh,
			wantWhy:   []string{"Heavy Rainfall: 72.5mm/h", "High Wind Speed: 15.5 m/s", "High Humidity: 97%"},
		},
		{
			name:      "ValuesAtThresholdDoNotFire",
			snapshot:  weather.Snapshot{RainfallMm1h: 50, WindSpeedMs: 15, HumidityPct: 85},
			wantLevel: LevelLow,
			wantWhy:   []string{"No critical alerts for your area."},
		},
		{
			name:      "CalmDefaults",
			snapshot:  weather.Snapshot{},
			wantLevel: LevelLow,
			wantWhy:   []string{"No critical alerts for your area."},
		},
		{
			name:      "HumidityOnly",
			snapshot:  weather.Snapshot{HumidityPct: 86},
			wantLevel: LevelMedium,
			wantWhy:   []string{"High Humidity: 86%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, reasons := Classify(tt.snapshot, DefaultThresholds())
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantWhy, reasons)
		})
	}
}

func TestClassify_BelowAllThresholdsIsLow(t *testing.T) {
	for rain := 0.0; rain <= 50; rain += 12.5 {
		for wind := 0.0; wind <= 15; wind += 5 {
			for humidity := 0; humidity <= 85; humidity += 17 {
				s := weather.Snapshot{RainfallMm1h: rain, WindSpeedMs: wind, HumidityPct: humidity}
				level, reasons := Classify(s, DefaultThresholds())
				assert.Equal(t, LevelLow, level)
				assert.Equal(t, []string{NoAlertsReason}, reasons)
			}
		}
	}
}

func TestClassify_ReasonsFollowRuleOrder(t *testing.T) {
	th := DefaultThresholds()
	rain := weather.Snapshot{RainfallMm1h: 51}
	wind := weather.Snapshot{WindSpeedMs: 16}
	humid := weather.Snapshot{HumidityPct: 86}

	combos := []struct {
		snapshot weather.Snapshot
		prefixes []string
	}{
		{weather.Snapshot{RainfallMm1h: 51, HumidityPct: 86}, []string{"Heavy Rainfall", "High Humidity"}},
		{weather.Snapshot{WindSpeedMs: 16, HumidityPct: 86}, []string{"High Wind Speed", "High Humidity"}},
		{weather.Snapshot{RainfallMm1h: 51, WindSpeedMs: 16}, []string{"Heavy Rainfall", "High Wind Speed"}},
	}
	for _, c := range combos {
		_, reasons := Classify(c.snapshot, th)
		assert.Len(t, reasons, len(c.prefixes))
		for i, p := range c.prefixes {
			assert.Contains(t, reasons[i], p)
		}
	}

	level, _ := Classify(rain, th)
	assert.Equal(t, LevelHigh, level)
	level, _ = Classify(wind, th)
	assert.Equal(t, LevelMedium, level)
	level, _ = Classify(humid, th)
	assert.Equal(t, LevelMedium, level)
}

func TestClassify_UsesProvidedThresholds(t *testing.T) {
	strict := Thresholds{RainfallMm1h: 5, WindSpeedMs: 5, HumidityPct: 50}

	level, reasons := Classify(weather.Snapshot{RainfallMm1h: 6}, strict)

	assert.Equal(t, LevelHigh, level)
	assert.Equal(t, []string{"Heavy Rainfall: 6mm/h"}, reasons)
}
