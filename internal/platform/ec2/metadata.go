package ec2

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

// Metadata paths, relative to /latest/meta-data/.
const (
	pathInstanceID       = "instance-id"
	pathAvailabilityZone = "placement/availability-zone"
)

// metadataAPI is the part of the IMDS client used here.
type metadataAPI interface {
	GetMetadata(ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options)) (*imds.GetMetadataOutput, error)
}

// MetadataClient reads instance identity from the instance metadata service.
type MetadataClient struct {
	imds metadataAPI
}

// NewMetadataClient creates a MetadataClient from an AWS config. A non-empty
// endpoint replaces the default http://169.254.169.254.
func NewMetadataClient(cfg aws.Config, endpoint string) *MetadataClient {
	client := imds.NewFromConfig(cfg, func(o *imds.Options) {
		if endpoint != "" {
			o.Endpoint = endpoint
		}
		o.Retryer = aws.NopRetryer{}
	})
	return &MetadataClient{imds: client}
}

// InstanceID returns the id of the instance this process runs on.
func (c *MetadataClient) InstanceID(ctx context.Context) (string, error) {
	return c.get(ctx, pathInstanceID)
}

// AvailabilityZone returns the availability zone of the instance.
func (c *MetadataClient) AvailabilityZone(ctx context.Context) (string, error) {
	return c.get(ctx, pathAvailabilityZone)
}

// Region returns the region of the instance, derived from its availability
// zone.
func (c *MetadataClient) Region(ctx context.Context) (string, error) {
	az, err := c.AvailabilityZone(ctx)
	if err != nil {
		return "", err
	}
	region, err := RegionFromAvailabilityZone(az)
	if err != nil {
		return "", newMetadataError(pathAvailabilityZone, err)
	}
	return region, nil
}

func (c *MetadataClient) get(ctx context.Context, path string) (string, error) {
	out, err := c.imds.GetMetadata(ctx, &imds.GetMetadataInput{Path: path})
	if err != nil {
		return "", newMetadataError(path, err)
	}
	defer out.Content.Close()

	body, err := io.ReadAll(out.Content)
	if err != nil {
		return "", newMetadataError(path, fmt.Errorf("failed to read response body: %w", err))
	}

	value := strings.TrimSpace(string(body))
	if value == "" {
		return "", newMetadataError(path, fmt.Errorf("empty response"))
	}
	return value, nil
}

// RegionFromAvailabilityZone drops the trailing zone letter from an
// availability zone: us-west-2c becomes us-west-2.
func RegionFromAvailabilityZone(az string) (string, error) {
	az = strings.TrimSpace(az)
	region := strings.TrimRightFunc(az, unicode.IsLetter)
	if region == az || region == "" {
		return "", fmt.Errorf("availability zone %q has no zone letter suffix", az)
	}
	return region, nil
}
