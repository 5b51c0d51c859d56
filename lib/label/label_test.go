package label_test

import (
	"fmt"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"oss.terrastruct.com/util-go/assert"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/textmeasure"
)

var mono = textmeasure.NewMonospace(10, 16)

func TestBox(t *testing.T) {
	t.Parallel()

	font := textmeasure.DefaultFont()
	testCases := []struct {
		name       string
		text       string
		decoration label.Decoration
		exp        geo.Dimension
	}{
		{name: "empty", text: "", decoration: label.Padded, exp: geo.Dimension{}},
		{name: "plain", text: "abc", decoration: label.None, exp: geo.NewDimension(30, 16)},
		{name: "padded", text: "abc", decoration: label.Padded, exp: geo.NewDimension(44, 30)},
		{name: "multiline", text: "a\nbcde", decoration: label.Padded, exp: geo.NewDimension(54, 46)},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, label.Box(mono, font, tc.text, tc.decoration))
		})
	}
}

func TestPlace(t *testing.T) {
	t.Parallel()

	bounds := geo.NewRectangle(10, 20, 100, 40)
	d := geo.NewDimension(40, 20)
	assert.Equal(t, geo.NewPoint(10, 20), label.Place(bounds, d, label.TopLeft))
	assert.Equal(t, geo.NewPoint(40, 20), label.Place(bounds, d, label.TopCenter))
	assert.Equal(t, geo.NewPoint(40, 30), label.Place(bounds, d, label.Center))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	font := textmeasure.DefaultFont()
	testCases := []struct {
		name  string
		text  string
		width float64
		exp   []string
	}{
		{name: "empty", text: "", width: 100, exp: []string{""}},
		{name: "fits", text: "hello world", width: 110, exp: []string{"hello world"}},
		{name: "splits", text: "hello world", width: 100, exp: []string{"hello", "world"}},
		{name: "greedy", text: "a b c d e", width: 50, exp: []string{"a b c", "d e"}},
		{name: "long_word", text: "a supercalifragilistic b", width: 30, exp: []string{"a", "supercalifragilistic", "b"}},
		{name: "zero_width", text: "a b", width: 0, exp: []string{"a", "b"}},
		{name: "keeps_newlines", text: "a b\nc", width: 1000, exp: []string{"a b", "c"}},
		{name: "collapses_spaces", text: "a    b", width: 1000, exp: []string{"a b"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tassert.Equal(t, tc.exp, label.Wrap(mono, font, tc.text, tc.width))
		})
	}
}

func TestWrapMonotonic(t *testing.T) {
	t.Parallel()

	font := textmeasure.DefaultFont()
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"createdBy() returns a newly allocated instance",
		"x",
		"aaaaaaaaaaaa b cc ddd eeee fffff",
	}
	for i, text := range texts {
		text := text
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			t.Parallel()
			prev := 1
			for width := 500.0; width >= 0; width -= 5 {
				lines := label.Wrap(mono, font, text, width)
				tassert.GreaterOrEqual(t, len(lines), prev, "width %v", width)
				prev = len(lines)
			}
		})
	}
}

func TestWrapString(t *testing.T) {
	t.Parallel()

	assert.String(t, "hello\nworld", label.WrapString(mono, textmeasure.DefaultFont(), "hello world", 60))
}

func TestEdgeLabelWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 180.0, label.EdgeLabelWidth(geo.NewLine(geo.NewPoint(0, 0), geo.NewPoint(200, 0))))
	assert.Equal(t, float64(label.MIN_EDGE_LABEL_WIDTH), label.EdgeLabelWidth(geo.NewLine(geo.NewPoint(0, 0), geo.NewPoint(30, 40))))
}

func TestGetPointOnLine(t *testing.T) {
	t.Parallel()

	//            ┌────┐
	//            │    │ 10
	//            └────┘
	//               5
	// ─────────────────────────────
	// 0            100           200
	l := geo.NewLine(geo.NewPoint(0, 0), geo.NewPoint(200, 0))
	testCases := []struct {
		position label.Position
		exp      geo.Point
	}{
		{position: label.OutsideTopCenter, exp: geo.NewPoint(80, -16)},
		{position: label.OutsideBottomCenter, exp: geo.NewPoint(80, 6)},
		{position: label.InsideMiddleCenter, exp: geo.NewPoint(80, -5)},
		{position: label.InsideMiddleLeft, exp: geo.NewPoint(30, -5)},
		{position: label.OutsideTopRight, exp: geo.NewPoint(130, -16)},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.position.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.position.GetPointOnLine(l, 2, 40, 10))
		})
	}
}
