// Package gamemath holds small pure helpers shared by the physics systems.
package gamemath

// snapTolerance absorbs float error in the drag subtraction, so 1.1-0.7
// counts as 0.4.
const snapTolerance = 1e-9

// ApplyDrag reduces speed toward zero by drag and snaps it to exactly zero
// once its magnitude is at or below epsilon.
func ApplyDrag(speedX, drag, epsilon float64) float64 {
	switch {
	case speedX > 0:
		speedX -= drag
		if speedX <= epsilon+snapTolerance {
			return 0
		}
	case speedX < 0:
		speedX += drag
		if speedX >= -epsilon-snapTolerance {
			return 0
		}
	}
	return speedX
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Approach adds step to speed, moving toward target without passing the point
// where another step would exceed it. Returns speed unchanged once it is within
// one step of target.
func Approach(speed, step, target float64) float64 {
	if target >= 0 {
		if speed <= target-step {
			return speed + step
		}
		return speed
	}
	if speed >= target+step {
		return speed - step
	}
	return speed
}
