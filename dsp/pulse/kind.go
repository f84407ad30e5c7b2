package pulse

import (
	"fmt"
	"strings"
)

// Kind identifies a pulse shape.
type Kind int

const (
	// KindGaussianBorderCos is a flat top with Gaussian rise and fall.
	KindGaussianBorderCos Kind = iota
	// KindGaussianCos is a cosine carrier under a single Gaussian.
	KindGaussianCos
	// KindSineEnvCos is a sine carrier under a half-sine lobe.
	KindSineEnvCos
	// KindSquareSideBand is a cosine carrier under a constant envelope.
	KindSquareSideBand
)

var kindNames = map[Kind]string{
	KindGaussianBorderCos: "gaussian-border-cos",
	KindGaussianCos:       "gaussian-cos",
	KindSineEnvCos:        "sine-env-cos",
	KindSquareSideBand:    "square-sideband",
}

// Kinds returns all shapes in declaration order.
func Kinds() []Kind {
	return []Kind{KindGaussianBorderCos, KindGaussianCos, KindSineEnvCos, KindSquareSideBand}
}

// String returns the lowercase hyphenated shape name accepted by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a shape name as returned by Kind.String. Matching is
// case-insensitive.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("pulse: unknown shape %q", name)
}
