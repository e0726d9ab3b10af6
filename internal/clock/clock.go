// Package clock holds the presentation arithmetic of the main view: time
// formatting, the rainbow colour cycle, font scaling and the logarithmic
// duration slider.
package clock

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"deskclock/internal/timer"
)

const (
	TimeLayout = "15:04:05"

	// HueSpeed is the fraction of the colour wheel travelled per second.
	HueSpeed   = 0.2
	Saturation = 0.8
	Value      = 1.0

	widthFontRatio  = 0.15
	heightFontRatio = 0.4
)

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func FormatRemaining(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Hue returns the hue in [0, 1) for the given time since start.
func Hue(sinceStart time.Duration) float64 {
	h := math.Mod(sinceStart.Seconds()*HueSpeed, 1)
	if h < 0 {
		h += 1
	}
	return h
}

// RainbowColor is the clock colour at the given time since start.
func RainbowColor(sinceStart time.Duration) color.NRGBA {
	return HSV(Hue(sinceStart), Saturation, Value)
}

// HSV converts hue, saturation and value in [0, 1] to an opaque colour.
func HSV(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 1) * 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

func channel(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// FontSize scales the clock text with the window.
func FontSize(width, height float32) float32 {
	return float32(math.Min(float64(width*widthFontRatio), float64(height*heightFontRatio)))
}

// SliderToDuration maps a slider position in [0, 1] onto the allowed
// duration range on a logarithmic scale.
func SliderToDuration(pos float64) time.Duration {
	pos = math.Max(0, math.Min(1, pos))
	lo, hi := math.Log(timer.MinDuration.Seconds()), math.Log(timer.MaxDuration.Seconds())
	seconds := math.Exp(lo + pos*(hi-lo))
	return timer.ClampDuration(time.Duration(math.Round(seconds)) * time.Second)
}

// DurationToSlider is the inverse of SliderToDuration.
func DurationToSlider(d time.Duration) float64 {
	d = timer.ClampDuration(d)
	lo, hi := math.Log(timer.MinDuration.Seconds()), math.Log(timer.MaxDuration.Seconds())
	return (math.Log(d.Seconds()) - lo) / (hi - lo)
}
