package navigation

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
)

func TestFindExtremes_Triangle(t *testing.T) {
	c := entity.Contour{
		image.Pt(10, 60), image.Pt(10, 62), image.Pt(40, 95), image.Pt(45, 95), image.Pt(20, 60),
	}

	e := FindExtremes(c)
	require.Equal(t, image.Pt(10, 60), e.TopLeft)
	require.Equal(t, image.Pt(20, 60), e.TopRight)
	require.Equal(t, image.Pt(40, 95), e.BottomLeft)
	require.Equal(t, image.Pt(45, 95), e.BottomRight)
	require.Equal(t, image.Pt(10, 60), e.LeftTop)
	require.Equal(t, image.Pt(10, 62), e.LeftBottom)
	require.Equal(t, image.Pt(45, 95), e.RightTop)
	require.Equal(t, image.Pt(45, 95), e.RightBottom)
}

func TestFindExtremes_OriginIsARealPoint(t *testing.T) {
	e := FindExtremes(rect(0, 0, 3, 3))
	require.Equal(t, image.Pt(0, 0), e.TopLeft)
	require.Equal(t, image.Pt(0, 0), e.LeftTop)
	require.Equal(t, image.Pt(3, 0), e.TopRight)
	require.Equal(t, image.Pt(0, 3), e.BottomLeft)
	require.Equal(t, image.Pt(3, 3), e.RightBottom)
}

func TestFindExtremes_OrderIndependent(t *testing.T) {
	c := entity.Contour{
		image.Pt(5, 2), image.Pt(3, 4), image.Pt(3, 7), image.Pt(6, 9),
		image.Pt(9, 9), image.Pt(9, 5), image.Pt(8, 2),
	}
	rev := slices.Clone(c)
	slices.Reverse(rev)

	require.Equal(t, FindExtremes(c), FindExtremes(rev))
}

func TestFindExtremes_Empty(t *testing.T) {
	require.Equal(t, entity.Extremes{}, FindExtremes(nil))
}
