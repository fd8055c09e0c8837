package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/config"
	"github.com/imamik/eksutil/internal/platform/ec2"
	"github.com/imamik/eksutil/internal/util/labels"
)

// InstanceMetadata reads the identity of the current instance.
type InstanceMetadata interface {
	InstanceID(ctx context.Context) (string, error)
	Region(ctx context.Context) (string, error)
}

// InstanceTagReader reads the tags of an instance.
type InstanceTagReader interface {
	InstanceTags(ctx context.Context, instanceID string) (labels.Tags, error)
}

var (
	loadAWSConfig       = ec2.LoadConfig
	newInstanceMetadata = func(cfg aws.Config, endpoint string) InstanceMetadata {
		return ec2.NewMetadataClient(cfg, endpoint)
	}
	newInstanceTagReader = func(cfg aws.Config, region, endpoint string) InstanceTagReader {
		return ec2.NewTagsClient(cfg, region, endpoint)
	}
)

// NodeLabelsOptions are the map-ec2-tags-to-node-labels flags. Empty fields
// fall back to the configuration.
type NodeLabelsOptions struct {
	TagPrefix string
	Namespace string

	// Tags, when set, replaces the EC2 lookup with these key=value pairs.
	Tags []string
}

// MapEC2TagsToNodeLabels prints the instance's tags, filtered by prefix, as
// a single comma-separated node label line on stdout.
func MapEC2TagsToNodeLabels(ctx context.Context, global GlobalOptions, opts NodeLabelsOptions) error {
	ctx, cfg, err := setup(ctx, global)
	if err != nil {
		return err
	}
	logger := logr.FromContextOrDiscard(ctx)

	if opts.TagPrefix != "" {
		cfg.NodeLabels.TagPrefix = opts.TagPrefix
	}
	if opts.Namespace != "" {
		cfg.NodeLabels.Namespace = opts.Namespace
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	var tags labels.Tags
	if len(opts.Tags) > 0 {
		tags = labels.ParsePairs(opts.Tags)
		logger.V(1).Info("using tags from flags", "count", len(tags))
	} else {
		tags, err = fetchInstanceTags(ctx, cfg)
		if err != nil {
			return err
		}
	}

	filtered := labels.FilterTags(tags, cfg.NodeLabels.TagPrefix)
	logger.V(1).Info("filtered tags", "prefix", cfg.NodeLabels.TagPrefix, "kept", len(filtered), "total", len(tags))

	for _, problem := range labels.Validate(filtered, cfg.NodeLabels.Namespace) {
		logger.Info("node label is not a valid Kubernetes label", "problem", problem.Error())
	}

	_, _ = fmt.Fprintln(stdout, labels.Format(filtered, cfg.NodeLabels.Namespace))
	return nil
}

// fetchInstanceTags looks up the current instance and returns its tags. All
// calls share the metadata timeout.
func fetchInstanceTags(ctx context.Context, cfg *config.Config) (labels.Tags, error) {
	logger := logr.FromContextOrDiscard(ctx)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeouts.Metadata)
	defer cancel()

	awsCfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	metadata := newInstanceMetadata(awsCfg, cfg.NodeLabels.IMDSEndpoint)
	instanceID, err := metadata.InstanceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get instance id: %w", err)
	}
	region, err := metadata.Region(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	logger.V(1).Info("resolved instance", "instanceID", instanceID, "region", region)

	tags, err := newInstanceTagReader(awsCfg, region, cfg.NodeLabels.EC2Endpoint).InstanceTags(ctx, instanceID)
	if err != nil {
		if ec2.IsAccessDenied(err) {
			logger.Info("the instance role needs ec2:DescribeTags to map tags to node labels")
		}
		return nil, fmt.Errorf("failed to get tags of instance %s: %w", instanceID, err)
	}
	return tags, nil
}
