package tank

import "github.com/chewxy/math32"

// Volume estimates the liquid volume in liters from a fresh distance
// sample in centimeters.
//
// The diameter enters linearly, not as diameter²/4: the deployed
// appliance was calibrated against this formula, so it is the contract,
// not a bug. NaN inputs (unset profile, sensor timeout) propagate to a
// NaN result.
func Volume(p Profile, distanceCm float32) float32 {
	height := p.MinHeight - distanceCm
	return (math32.Pi * p.Diameter * height) / 1000
}

// DisplayVolume clamps negative volumes to zero for rendering only;
// stored fields are untouched. NaN passes through so the caller can
// show the setup prompt instead of a number.
func DisplayVolume(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// BarFill maps volume onto a progress bar barW pixels wide:
// clamp(volume, 0, target) scaled linearly. A zero, negative or NaN
// target renders an empty bar rather than dividing by it.
func BarFill(volume, target float32, barW int) int {
	if math32.IsNaN(volume) || math32.IsNaN(target) {
		return 0
	}
	if target <= 0 || volume <= 0 {
		return 0
	}
	if volume >= target {
		return barW
	}
	return int(volume / target * float32(barW))
}
