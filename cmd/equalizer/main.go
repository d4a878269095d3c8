package main

//// Small CLI tool to compute the equalizing factors for a participant
//// without going through the service. Handy when seeding user profiles.

import (
	"flag"
	"fmt"
	"os"

	"github.com/fitcomp/fitcomp/internal/equalize"
)

func main() {
	gender := flag.String("gender", "M", "participant gender [M | F]")
	age := flag.Float64("age", 0, "age in years (0 = use default)")
	height := flag.Float64("height", 0, "height in cm (0 = use default)")
	weight := flag.Float64("weight", 0, "weight in kg (0 = use default)")
	asJSON := flag.Bool("json", false, "print the persisted ratios as JSON")
	flag.Parse()

	g := equalize.Gender(*gender)
	if g != equalize.Male && g != equalize.Female {
		fmt.Fprintf(os.Stderr, "unknown gender %q, use M or F\n", *gender)
		os.Exit(1)
	}

	biometrics := equalize.Biometrics{Gender: g}
	if *age > 0 {
		biometrics.AgeYears = age
	}
	if *height > 0 {
		biometrics.HeightCm = height
	}
	if *weight > 0 {
		biometrics.WeightKg = weight
	}

	factors := equalize.Compute(biometrics)
	ratios := factors.Ratios()

	if *asJSON {
		fmt.Printf(
			`{"scaling_kcal":%g,"scaling_distance":%g}`+"\n",
			ratios.ScalingKcal, ratios.ScalingDistance,
		)
		return
	}

	fmt.Printf("estimated daily energy use: %d kcal\n", factors.BMRKcal)
	fmt.Printf("estimated step length:      %.2f m\n", factors.StepLengthM)
	fmt.Printf("effort factor:              %.2f%% (ratio %g)\n", factors.ScalingKcal, ratios.ScalingKcal)
	fmt.Printf("distance factor:            %.1f%% (ratio %g)\n", factors.ScalingDistance, ratios.ScalingDistance)
}
