package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
)

var (
	ikeja = location.Coordinates{Latitude: 6.6018, Longitude: 3.3515}
	abuja = location.Coordinates{Latitude: 9.0765, Longitude: 7.3986}
)

func TestAssess_AbsentWeatherFailsOpen(t *testing.T) {
	a := Assess(ikeja, abuja, nil, risk.DefaultThresholds())

	assert.Equal(t, risk.LevelUnknown, a.RiskLevel)
	assert.Equal(t, ColorGreen, a.RenderColor)
	assert.Empty(t, a.Reasons)
	assert.Equal(t, Badge{Label: "unknown", Color: ColorGray}, a.Badge)
	assert.Equal(t, TravelUnknown, a.TravelCondition)
	assert.Nil(t, a.Weather)
}

func TestAssess_ColorFollowsRiskLevel(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  weather.Snapshot
		wantLevel risk.Level
		wantColor Color
	}{
		{"Calm", weather.Snapshot{RainfallMm1h: 2, WindSpeedMs: 3, HumidityPct: 60}, risk.LevelLow, ColorGreen},
		{"Humid", weather.Snapshot{HumidityPct: 92}, risk.LevelMedium, ColorRed},
		{"Windy", weather.Snapshot{WindSpeedMs: 18}, risk.LevelMedium, ColorRed},
		{"Flooding", weather.Snapshot{RainfallMm1h: 64}, risk.LevelHigh, ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := tt.snapshot
			a := Assess(ikeja, abuja, &snapshot, risk.DefaultThresholds())
			assert.Equal(t, tt.wantLevel, a.RiskLevel)
			assert.Equal(t, tt.wantColor, a.RenderColor)
			assert.NotEmpty(t, a.Reasons)
		})
	}
}

func TestRenderColorFor(t *testing.T) {
	assert.Equal(t, ColorGreen, RenderColorFor(risk.LevelUnknown))
	assert.Equal(t, ColorGreen, RenderColorFor(risk.LevelLow))
	assert.Equal(t, ColorRed, RenderColorFor(risk.LevelMedium))
	assert.Equal(t, ColorRed, RenderColorFor(risk.LevelHigh))
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *weather.Snapshot
		want     Badge
	}{
		{"NoWeather", nil, Badge{BadgeUnknown, ColorGray}},
		{"HeavyRain", &weather.Snapshot{RainfallMm1h: 51}, Badge{BadgeHighRisk, ColorRed}},
		{"Gale", &weather.Snapshot{WindSpeedMs: 21}, Badge{BadgeHighRisk, ColorRed}},
		{"ModerateRain", &weather.Snapshot{RainfallMm1h: 30}, Badge{BadgeMediumRisk, ColorOrange}},
		{"Breezy", &weather.Snapshot{WindSpeedMs: 12}, Badge{BadgeMediumRisk, ColorOrange}},
		{"AtCutoffs", &weather.Snapshot{RainfallMm1h: 25, WindSpeedMs: 10}, Badge{BadgeLowRisk, ColorGreen}},
		// High humidity does not affect the badge scale
		{"HumidOnly", &weather.Snapshot{HumidityPct: 99}, Badge{BadgeLowRisk, ColorGreen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BadgeFor(tt.snapshot))
		})
	}
}

func TestBadgeScaleIsIndependentFromAlertThresholds(t *testing.T) {
	// wind 18 m/s is above the alert threshold but below the badge's high cutoff
	s := &weather.Snapshot{WindSpeedMs: 18}

	a := Assess(ikeja, abuja, s, risk.DefaultThresholds())

	assert.Equal(t, risk.LevelMedium, a.RiskLevel)
	assert.Equal(t, ColorRed, a.RenderColor)
	assert.Equal(t, Badge{BadgeMediumRisk, ColorOrange}, a.Badge)
}

func TestTravelConditionFor(t *testing.T) {
	assert.Equal(t, TravelGood, TravelConditionFor(&weather.Snapshot{TemperatureC: 28, ConditionText: "scattered clouds"}))
	assert.Equal(t, TravelNotGood, TravelConditionFor(&weather.Snapshot{TemperatureC: 28, ConditionText: "Light Rain"}))
	assert.Equal(t, TravelNotGood, TravelConditionFor(&weather.Snapshot{TemperatureC: 35, ConditionText: "clear sky"}))
	assert.Equal(t, TravelNotGood, TravelConditionFor(&weather.Snapshot{TemperatureC: 15, ConditionText: "clear sky"}))
	assert.Equal(t, TravelUnknown, TravelConditionFor(nil))
}

func TestWaypoints(t *testing.T) {
	origin := location.Coordinates{Latitude: 6, Longitude: 3}
	dest := location.Coordinates{Latitude: 10, Longitude: 7}

	points := Waypoints(origin, dest)

	assert.Equal(t, []location.Coordinates{origin, {Latitude: 8, Longitude: 5}, dest}, points)
}
