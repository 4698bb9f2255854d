// Package mix provides dry/wet mixing for audio effects.
package mix

// DryWet blends a processed signal into the original.
// amount: 0.0 = 100% dry, 1.0 = 100% wet
func DryWet(dry, wet, amount float32) float32 {
	return dry*(1.0-amount) + wet*amount
}

// DryWetBuffer performs in-place dry/wet mixing, writing the blend back
// into dry.
// amount: 0.0 = 100% dry, 1.0 = 100% wet
func DryWetBuffer(dry, wet []float32, amount float32) {
	dryGain := 1.0 - amount

	length := len(dry)
	if len(wet) < length {
		length = len(wet)
	}

	for i := 0; i < length; i++ {
		dry[i] = dry[i]*dryGain + wet[i]*amount
	}
}
