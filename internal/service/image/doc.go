// Package image defines the camera-image classifier boundary.
//
// The alarm engine only needs a yes/no answer about cats at a confidence
// threshold. FakeClassifier flips a seeded coin for local runs and tests;
// RekognitionClassifier asks AWS Rekognition to label the image.
package image
