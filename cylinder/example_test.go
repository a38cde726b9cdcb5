package cylinder_test

import (
	"fmt"

	"github.com/lumenoptics/owg/cylinder"
)

// ExampleModes enumerates the guided LP modes of a few-mode fiber.
//
// Scenario:
//
//	A step-index fiber operated at V = 5: two radial orders of the ℓ=0
//	family fit, the ℓ=1 and ℓ=2 families each contribute one mode, and
//	ℓ=3 is cut off (its first mode needs V > 5.136).
func ExampleModes() {
	modes, err := cylinder.Modes(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, m := range modes {
		fmt.Println(m)
	}
	// Output:
	// LP01
	// LP02
	// LP11
	// LP21
}

// ExampleFiber_V shows the standard single-mode check: with V below
// 2.405 only the fundamental mode propagates.
func ExampleFiber_V() {
	f := cylinder.Fiber{
		CoreIndex:  1.46,
		CladIndex:  1.45,
		Radius:     3.3e-6,
		Wavelength: 1.55e-6,
	}
	v := f.V()

	s, err := cylinder.LPModeValue(v, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	lp11, err := cylinder.LPModeValue(v, 1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("V=%.2f\n", v)
	fmt.Printf("LP01 guided: %v\n", s.Guided)
	fmt.Printf("LP11 guided: %v\n", lp11.Guided)
	// Output:
	// V=2.28
	// LP01 guided: true
	// LP11 guided: false
}
