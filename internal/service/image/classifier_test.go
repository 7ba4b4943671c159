package image

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/stretchr/testify/require"
)

var errTestDetect = errors.New("test detect error")

// stubDetector is a canned-response labelDetector for tests.
type stubDetector struct {
	// output is returned from every DetectLabelsWithContext call.
	output *rekognition.DetectLabelsOutput
	// err is returned from every DetectLabelsWithContext call.
	err error
	// input stores the last request for assertions.
	input *rekognition.DetectLabelsInput
}

// DetectLabelsWithContext records the request and returns the canned response.
func (s *stubDetector) DetectLabelsWithContext(_ aws.Context, input *rekognition.DetectLabelsInput, _ ...request.Option) (*rekognition.DetectLabelsOutput, error) {
	s.input = input

	return s.output, s.err
}

// testImage returns a tiny image suitable for JPEG encoding.
func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

// TestFakeClassifier_Deterministic asserts equal seeds produce equal answer sequences.
func TestFakeClassifier_Deterministic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := NewFakeClassifier(42)
	b := NewFakeClassifier(42)

	for i := 0; i < 16; i++ {
		gotA, err := a.ContainsCat(ctx, testImage(), 0.5)
		require.NoError(t, err)

		gotB, err := b.ContainsCat(ctx, testImage(), 0.5)
		require.NoError(t, err)

		require.Equal(t, gotA, gotB)
	}
}

// TestRekognitionClassifier_CatFound asserts a confident cat label is reported.
func TestRekognitionClassifier_CatFound(t *testing.T) {
	t.Parallel()

	stub := &stubDetector{
		output: &rekognition.DetectLabelsOutput{
			Labels: []*rekognition.Label{
				{Name: aws.String("Sofa"), Confidence: aws.Float64(99)},
				{Name: aws.String("cat"), Confidence: aws.Float64(73)},
			},
		},
	}
	classifier := &RekognitionClassifier{client: stub}

	got, err := classifier.ContainsCat(context.Background(), testImage(), 0.5)
	require.NoError(t, err)
	require.True(t, got)

	// Threshold travels as a percentage.
	require.InDelta(t, 50, aws.Float64Value(stub.input.MinConfidence), 0.001)
	require.NotEmpty(t, stub.input.Image.Bytes)
}

// TestRekognitionClassifier_NoCat asserts low-confidence or absent labels are rejected.
func TestRekognitionClassifier_NoCat(t *testing.T) {
	t.Parallel()

	stub := &stubDetector{
		output: &rekognition.DetectLabelsOutput{
			Labels: []*rekognition.Label{
				{Name: aws.String("Cat"), Confidence: aws.Float64(31)},
				{Name: aws.String("Dog"), Confidence: aws.Float64(97)},
			},
		},
	}
	classifier := &RekognitionClassifier{client: stub}

	got, err := classifier.ContainsCat(context.Background(), testImage(), 0.5)
	require.NoError(t, err)
	require.False(t, got)
}

// TestRekognitionClassifier_Error asserts API failures propagate.
func TestRekognitionClassifier_Error(t *testing.T) {
	t.Parallel()

	classifier := &RekognitionClassifier{client: &stubDetector{err: errTestDetect}}

	_, err := classifier.ContainsCat(context.Background(), testImage(), 0.5)
	require.ErrorIs(t, err, errTestDetect)
}
