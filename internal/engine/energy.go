package engine

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Profile carries the user attributes the energy model needs. It is a plain
// value passed into every computation; the engine never stores one.
type Profile struct {
	Sex                Sex     `json:"sex"`
	Age                int     `json:"age"`
	HeightCM           float64 `json:"heightCm"`
	WeightKg           float64 `json:"weightKg"` // baseline weight at onboarding
	ActivityLevel      string  `json:"activityLevel"`
	SustainabilityMode bool    `json:"sustainabilityMode"`
}

// ActivityMultipliers maps activity level names to their TDEE multiplier.
// Single source of truth for valid levels; also used for input validation.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	// FallbackTDEE is used when the profile is incomplete (pre-onboarding).
	// Dashboards must render before height/age/sex are known, so a missing
	// profile yields this constant instead of an error.
	FallbackTDEE = 2000.0

	// DefaultActivityMultiplier applies when the activity level is unset or
	// unknown; sedentary is the conservative choice.
	DefaultActivityMultiplier = 1.2
)

// BMR computes the Mifflin-St Jeor basal metabolic rate for the given
// day-effective weight. ok is false when height, age, or sex is missing,
// in which case callers should fall back to FallbackTDEE.
func BMR(p Profile, weightKg float64) (bmr float64, ok bool) {
	if p.HeightCM <= 0 || p.Age <= 0 || weightKg <= 0 {
		return 0, false
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return 0, false
	}

	bmr = 10*weightKg + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, true
}

// TDEE computes total daily energy expenditure for the given day-effective
// weight: BMR scaled by the profile's activity multiplier. An incomplete
// profile yields FallbackTDEE rather than an error.
func TDEE(p Profile, weightKg float64) float64 {
	bmr, ok := BMR(p, weightKg)
	if !ok {
		return FallbackTDEE
	}

	mult, found := ActivityMultipliers[p.ActivityLevel]
	if !found {
		mult = DefaultActivityMultiplier
	}
	return bmr * mult
}
