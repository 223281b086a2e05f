package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
)

func TestStopDecision_ExactPercent(t *testing.T) {
	// 42*10000/209 = 2009
	require.True(t, StopDecision(42, 209, 20))
	// 41*10000/209 = 1961
	require.False(t, StopDecision(41, 209, 20))
	require.True(t, StopDecision(0, 209, 0))
	require.False(t, StopDecision(100, 0, 20))
}

func TestDetectStop_RedBlockInsideBox(t *testing.T) {
	p := entity.DefaultParams()
	f := synthFrame(pxWhite)
	f.Fill(76, 20, 86, 30, pxRed)

	res := DetectStop(f, p)
	require.True(t, res.Detected)
	require.Equal(t, 100, res.Votes)
	require.Equal(t, 286, res.Area)
	require.Equal(t, entity.MaskOn, res.Mask.At(80, 25))
	require.Equal(t, p.Rows, res.Mask.Rows)
	require.Equal(t, p.Cols, res.Mask.Cols)
}

func TestDetectStop_NoRed(t *testing.T) {
	p := entity.DefaultParams()

	res := DetectStop(synthFrame(pxWhite), p)
	require.False(t, res.Detected)
	require.Zero(t, res.Votes)

	// рамка области рисуется всегда
	require.Equal(t, entity.MaskOn, res.Mask.At(75, 15))
	require.Equal(t, entity.MaskOn, res.Mask.At(85, 40))
	require.Equal(t, uint8(0), res.Mask.At(80, 25))
}

func TestDetectStop_RedOutsideBoxDoesNotVote(t *testing.T) {
	p := entity.DefaultParams()
	f := synthFrame(pxGray)
	f.Fill(0, 0, 70, 96, pxRed)

	res := DetectStop(f, p)
	require.False(t, res.Detected)
	require.Zero(t, res.Votes)
	require.Equal(t, uint8(0), res.Mask.At(10, 10))
}

func TestDetectStop_FullBox(t *testing.T) {
	p := entity.DefaultParams()
	f := synthFrame(pxRed)

	res := DetectStop(f, p)
	require.True(t, res.Detected)
	require.Equal(t, p.StopBox.Area(), res.Votes)
}

func TestDetectStop_ZeroAreaBox(t *testing.T) {
	p := entity.DefaultParams()
	p.StopBox = entity.NewBox(40, 85, 15, 75)

	res := DetectStop(synthFrame(pxRed), p)
	require.False(t, res.Detected)
	require.Zero(t, res.Area)
	require.Zero(t, res.Mask.Count())
}

func TestDetectStop_Threshold(t *testing.T) {
	p := entity.DefaultParams()

	// 58 голосов: 580000/286 = 2027 >= 2000
	f := synthFrame(pxGray)
	fillVotes(f, p, 58)
	require.True(t, DetectStop(f, p).Detected)

	// 57 голосов: 570000/286 = 1993 < 2000
	f = synthFrame(pxGray)
	fillVotes(f, p, 57)
	require.False(t, DetectStop(f, p).Detected)
}

// fillVotes окрашивает n пикселей области в красный, построчно.
func fillVotes(f *entity.Frame, p entity.Params, n int) {
	b := p.StopBox
	for y := b.TopLeft.Y; y <= b.BottomRight.Y && n > 0; y++ {
		for x := b.TopLeft.X; x <= b.BottomRight.X && n > 0; x++ {
			f.Set(y, x, pxRed)
			n--
		}
	}
}
