package domain

// Objective is the wellness goal picked during onboarding
type Objective string

// Availability is how much time per day the user can spend on missions
type Availability string

// Intensity is how demanding missions should be
type Intensity string

// Style is the preferred flavour of activity
type Style string

const (
	ObjectiveEnergy   Objective = "energy"
	ObjectiveStress   Objective = "stress"
	ObjectiveMovement Objective = "movement"
)

const (
	AvailabilityLow    Availability = "low"
	AvailabilityMedium Availability = "medium"
	AvailabilityHigh   Availability = "high"
)

const (
	IntensityGentle Intensity = "gentle"
	IntensityNormal Intensity = "normal"
	IntensityActive Intensity = "active"
)

const (
	StyleMindful  Style = "mindful"
	StyleCreative Style = "creative"
	StyleSocial   Style = "social"
)

// Defaults applied when a stored or partial preferences record carries an unknown value
const (
	DefaultObjective    = ObjectiveEnergy
	DefaultAvailability = AvailabilityMedium
	DefaultIntensity    = IntensityNormal
	DefaultStyle        = StyleMindful
)

// Objectives lists every objective in catalog order
var Objectives = []Objective{ObjectiveEnergy, ObjectiveStress, ObjectiveMovement}

// Valid reports whether o is a known objective
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveEnergy, ObjectiveStress, ObjectiveMovement:
		return true
	}
	return false
}

// Valid reports whether a is a known availability
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityLow, AvailabilityMedium, AvailabilityHigh:
		return true
	}
	return false
}

// Valid reports whether i is a known intensity
func (i Intensity) Valid() bool {
	switch i {
	case IntensityGentle, IntensityNormal, IntensityActive:
		return true
	}
	return false
}

// Valid reports whether s is a known style
func (s Style) Valid() bool {
	switch s {
	case StyleMindful, StyleCreative, StyleSocial:
		return true
	}
	return false
}

// Preferences holds the four onboarding answers. Created once, read thereafter.
type Preferences struct {
	Objective    Objective    `json:"objective"`
	Availability Availability `json:"availability"`
	Intensity    Intensity    `json:"intensity"`
	Style        Style        `json:"style"`
}

// DefaultPreferences is what an empty or unreadable preferences record degrades to
func DefaultPreferences() Preferences {
	return Preferences{
		Objective:    DefaultObjective,
		Availability: DefaultAvailability,
		Intensity:    DefaultIntensity,
		Style:        DefaultStyle,
	}
}

// Normalized returns a copy with every unknown field replaced by its default
func (p Preferences) Normalized() Preferences {
	if !p.Objective.Valid() {
		p.Objective = DefaultObjective
	}
	if !p.Availability.Valid() {
		p.Availability = DefaultAvailability
	}
	if !p.Intensity.Valid() {
		p.Intensity = DefaultIntensity
	}
	if !p.Style.Valid() {
		p.Style = DefaultStyle
	}
	return p
}

// Valid reports whether every field holds a known value
func (p Preferences) Valid() bool {
	return p.Objective.Valid() && p.Availability.Valid() && p.Intensity.Valid() && p.Style.Valid()
}
