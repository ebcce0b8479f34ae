// Package analysis extracts time series from recorded frames and studies
// them.
//
//   - [RadialSeries]: distance of one particle from the boundary center
//   - [HeightSeries]: vertical position of one particle
//   - [SettleIndex]: when a series comes to rest near a target
//   - [PowerSpectrum], [DominantFrequency]: oscillation content
//   - [TrajectoryToASCII]: a quick look at a particle's path
//
// Frames in which the particle does not exist yet are skipped, so series
// start at the frame where it was spawned.
//
//	r := analysis.RadialSeries(frames, 0)
//	if i := analysis.SettleIndex(r, 280, 0.5); i >= 0 {
//	    // particle came to rest against the wall
//	}
package analysis
