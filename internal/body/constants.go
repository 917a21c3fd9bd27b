package body

// Physical constants and display scaling.
const (
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G = 6.67430e-11

	// SunMass is the mass of the Sun in kilograms.
	SunMass = 1.989e30

	// AU is one astronomical unit in meters.
	AU = 1.496e11

	// DistanceScale maps meters to display units.
	DistanceScale = 1e-9

	// RadiusScale maps meters to display units for body radii.
	RadiusScale = 1e-6

	// SecondsPerDay converts the orbital speed to angle-per-frame
	// at one simulated day per frame.
	SecondsPerDay = 86400
)
