package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/eksutil/cmd/eksutil/handlers"
)

// MapEC2TagsToNodeLabels returns the command printing EC2 tags as node labels.
//
// Optional flags:
//
//	--tag-prefix: Only map tags whose key starts with this prefix
//	--namespace: Domain prefix for label keys (default: ec2.amazonaws.com)
//	--tag: key=value pair used instead of querying EC2 (repeatable)
func MapEC2TagsToNodeLabels() *cobra.Command {
	var opts handlers.NodeLabelsOptions

	cmd := &cobra.Command{
		Use:   "map-ec2-tags-to-node-labels",
		Short: "Print this instance's EC2 tags as kubelet node labels",
		Long: `Read the tags of the EC2 instance this runs on and print them as a
comma-separated list of node labels, suitable for kubelet --node-labels.

Keys and values are reduced to [A-Za-z0-9._-], surrounding '-', '_' and '.'
are trimmed, and every key is put under the namespace domain.

Examples:
  # All tags
  eksutil map-ec2-tags-to-node-labels

  # Only tags starting with "k8s-label/"
  eksutil map-ec2-tags-to-node-labels --tag-prefix k8s-label/

  # Preview without AWS access
  eksutil map-ec2-tags-to-node-labels --tag "Name=time machine" --tag energy=1.21-GigaWatts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMapEC2TagsToNodeLabels(cmd.Context(), globalOptions, opts)
		},
	}

	cmd.Flags().StringVar(&opts.TagPrefix, "tag-prefix", "", "Only map tags whose key starts with this prefix (default: all tags)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Domain prefix for label keys (default: ec2.amazonaws.com)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "key=value tag to map instead of querying EC2 (repeatable)")

	return cmd
}
