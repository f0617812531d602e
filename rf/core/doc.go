// Package core provides shared numeric helpers and value types for the rf
// packages: dB conversion, frequency grids, the [UnloadedQ] sentinel and the
// sweep options consumed by curve analysis.
package core
