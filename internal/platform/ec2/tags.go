package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/eksutil/internal/util/labels"
)

// TagsClient reads EC2 resource tags.
type TagsClient struct {
	ec2    ec2.DescribeTagsAPIClient
	region string
}

// NewTagsClient creates a TagsClient for region. A non-empty endpoint
// replaces the regional EC2 endpoint.
func NewTagsClient(cfg aws.Config, region, endpoint string) *TagsClient {
	client := ec2.NewFromConfig(cfg, func(o *ec2.Options) {
		o.Region = region
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.Retryer = aws.NopRetryer{}
	})
	return &TagsClient{ec2: client, region: region}
}

// InstanceTags returns every tag of the instance in API order.
func (c *TagsClient) InstanceTags(ctx context.Context, instanceID string) (labels.Tags, error) {
	input := &ec2.DescribeTagsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("resource-id"),
				Values: []string{instanceID},
			},
		},
	}

	tags := labels.Tags{}
	paginator := ec2.NewDescribeTagsPaginator(c.ec2, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, newMetadataError("DescribeTags", err)
		}
		for _, tag := range page.Tags {
			tags = append(tags, labels.Tag{
				Key:   aws.ToString(tag.Key),
				Value: aws.ToString(tag.Value),
			})
		}
	}
	return tags, nil
}
