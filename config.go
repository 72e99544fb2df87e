// Package gravisim wires the simulation's packages into a runnable whole
// and carries the handful of constants a user plausibly wants to override
// at startup.
package gravisim

import (
	"github.com/orbitsim/gravisim/compute"
	"github.com/orbitsim/gravisim/physics"
	"github.com/orbitsim/gravisim/seer"
)

// Config collects the compute, physics and seer constants, each defaulting
// to the value baked into the package that owns it, plus the window size and
// debug flag. cmd/gravisim reads only ScreenWidth, ScreenHeight and Debug;
// the other fields report the package constants, and changing them does not
// alter the simulation.
type Config struct {
	DesiredCPS       uint32
	Gravity          float64
	SeerComputeDelta float64
	SeerMaxPlots     int
	SeerFaultTol     float64
	ParallelThreshold int
	ScreenWidth      uint32
	ScreenHeight     uint32
	Debug            bool
}

// DefaultConfig returns a Config populated from every package's own
// constants, so changing a default in one place can never silently drift
// from what the rest of the simulation actually does.
func DefaultConfig() Config {
	return Config{
		DesiredCPS:        compute.DesiredCPS,
		Gravity:           physics.Gravity,
		SeerComputeDelta:  seer.ComputeDelta,
		SeerMaxPlots:      seer.MaxPlots,
		SeerFaultTol:      seer.FaultTolerance,
		ParallelThreshold: physics.ParallelThreshold,
		ScreenWidth:       1280,
		ScreenHeight:      720,
		Debug:             false,
	}
}
