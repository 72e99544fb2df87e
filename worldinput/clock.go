package worldinput

import "time"

var clockStart = time.Now()

// nowSeconds returns a monotonic seconds timestamp suitable for driving
// Easer/Zoomer sampling — callers only ever compare two such values, so the
// epoch is arbitrary as long as it is fixed for the process lifetime.
func nowSeconds() float64 {
	return time.Since(clockStart).Seconds()
}
