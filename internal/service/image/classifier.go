package image

import (
	"context"
	"image"
	"math/rand"

	"github.com/huylq94/uda-security/internal/logger"
)

// Classifier decides whether a camera image contains a cat.
// The threshold is a fraction in [0, 1]; implementations report true only
// when their confidence meets it.
type Classifier interface {
	ContainsCat(ctx context.Context, img image.Image, confidenceThreshold float32) (bool, error)
}

// FakeClassifier is a stand-in classifier that flips a coin.
// It exists so the system can run without camera hardware or cloud access.
type FakeClassifier struct {
	// rng produces the coin flips. Seeded so runs can be reproduced.
	rng *rand.Rand
}

// NewFakeClassifier creates a fake classifier seeded with the given value.
func NewFakeClassifier(seed int64) *FakeClassifier {
	return &FakeClassifier{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ContainsCat ignores the image and answers randomly.
func (c *FakeClassifier) ContainsCat(ctx context.Context, _ image.Image, _ float32) (bool, error) {
	result := c.rng.Intn(2) == 1

	logger.DebugKV(ctx, "Fake classifier consulted", "cat_detected", result)

	return result, nil
}
