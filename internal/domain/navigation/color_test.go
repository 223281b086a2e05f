package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
)

func TestIsStopColor_Defaults(t *testing.T) {
	p := entity.DefaultParams()

	require.True(t, IsStopColor(p, 255, 0, 0))
	require.True(t, IsStopColor(p, 100, 85, 80))
	require.False(t, IsStopColor(p, 100, 86, 80), "green tolerance is 15")
	require.False(t, IsStopColor(p, 100, 85, 81), "blue tolerance is 20")
	require.False(t, IsStopColor(p, 255, 255, 255))
}

func TestIsTrackColor_Defaults(t *testing.T) {
	p := entity.DefaultParams()

	require.True(t, IsTrackColor(p, 255, 255, 255))
	require.True(t, IsTrackColor(p, 240, 240, 240))
	require.False(t, IsTrackColor(p, 239, 255, 255))
	require.False(t, IsTrackColor(p, 255, 0, 0))
}

func TestColorPredicates_MonotoneInThresholds(t *testing.T) {
	base := entity.DefaultParams()
	raised := base
	raised.StopGreenTolerance += 10
	raised.StopBlueTolerance += 5
	raised.TrackRedThresh += 3
	raised.TrackGreenThresh += 2
	raised.TrackBlueThresh += 7

	for px := 0; px <= 0xFFFF; px += 7 {
		r, g, b := Decode(uint16(px))
		if IsStopColor(raised, r, g, b) {
			require.True(t, IsStopColor(base, r, g, b), "pixel %#04x", px)
		}
		if IsTrackColor(raised, r, g, b) {
			require.True(t, IsTrackColor(base, r, g, b), "pixel %#04x", px)
		}
	}
}
