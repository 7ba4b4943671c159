package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"

	"github.com/huylq94/uda-security/internal/logger"
)

// catLabel is the Rekognition label name that counts as a detection.
const catLabel = "Cat"

// labelDetector is the slice of the Rekognition API the classifier needs.
type labelDetector interface {
	DetectLabelsWithContext(aws.Context, *rekognition.DetectLabelsInput, ...request.Option) (*rekognition.DetectLabelsOutput, error)
}

// RekognitionClassifier classifies camera images with AWS Rekognition.
type RekognitionClassifier struct {
	// client performs the DetectLabels calls.
	client labelDetector
}

// NewRekognitionClassifier creates a classifier backed by a Rekognition
// client in the given region. Credentials come from the default AWS chain.
func NewRekognitionClassifier(region string) (*RekognitionClassifier, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &RekognitionClassifier{
		client: rekognition.New(sess),
	}, nil
}

// ContainsCat submits the image for labeling and reports whether a cat label
// meets the confidence threshold.
func (c *RekognitionClassifier) ContainsCat(ctx context.Context, img image.Image, confidenceThreshold float32) (bool, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return false, fmt.Errorf("encode image: %w", err)
	}

	minConfidence := float64(confidenceThreshold) * 100

	output, err := c.client.DetectLabelsWithContext(ctx, &rekognition.DetectLabelsInput{
		Image: &rekognition.Image{
			Bytes: buf.Bytes(),
		},
		MinConfidence: aws.Float64(minConfidence),
	})
	if err != nil {
		return false, fmt.Errorf("detect labels: %w", err)
	}

	for _, label := range output.Labels {
		name := aws.StringValue(label.Name)
		confidence := aws.Float64Value(label.Confidence)

		logger.DebugKV(ctx, "Rekognition label", "name", name, "confidence", confidence)

		if strings.EqualFold(name, catLabel) && confidence >= minConfidence {
			return true, nil
		}
	}

	return false, nil
}
