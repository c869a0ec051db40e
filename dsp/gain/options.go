package gain

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-admrender/dsp/pan/extent"
	"github.com/cwbudde/algo-admrender/dsp/pan/screen"
)

// config holds a [GainCalculator]'s construction-time options.
type config struct {
	referenceScreen  screen.Descriptor
	ambisonicEncoder extent.AmbisonicEncoder
}

func defaultConfig() config {
	return config{
		referenceScreen: screen.DefaultDescriptor,
	}
}

// Option configures a [GainCalculator] at construction time.
type Option func(*config) error

// WithReferenceScreen overrides the nominal reference screen that
// incoming positions are assumed to be authored against; screen scaling
// warps from this screen onto each call's ObjectMetadata.ScreenRef.
// Defaults to [screen.DefaultDescriptor].
func WithReferenceScreen(ref screen.Descriptor) Option {
	return func(c *config) error {
		if math.IsNaN(ref.AzimuthMin) || math.IsNaN(ref.AzimuthMax) ||
			math.IsNaN(ref.ElevationMin) || math.IsNaN(ref.ElevationMax) {
			return fmt.Errorf("gain: reference screen: NaN value")
		}

		if ref.AzimuthMin >= ref.AzimuthMax {
			return fmt.Errorf("gain: reference screen: azimuth min %g must be < max %g", ref.AzimuthMin, ref.AzimuthMax)
		}

		if ref.ElevationMin >= ref.ElevationMax {
			return fmt.Errorf("gain: reference screen: elevation min %g must be < max %g", ref.ElevationMin, ref.ElevationMax)
		}

		c.referenceScreen = ref

		return nil
	}
}

// WithAmbisonicEncoder attaches an Ambisonic encoder, enabling
// [GainCalculator.CalculateAmbisonicCoefficients]. Without one, that
// method returns an error.
func WithAmbisonicEncoder(enc extent.AmbisonicEncoder) Option {
	return func(c *config) error {
		if enc == nil {
			return fmt.Errorf("gain: ambisonic encoder must not be nil")
		}

		c.ambisonicEncoder = enc

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	c := defaultConfig()

	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}

	return c, nil
}
