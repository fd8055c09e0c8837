package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/eksutil/cmd/eksutil/handlers"
)

func TestMapEC2TagsToNodeLabels(t *testing.T) {
	cmd := MapEC2TagsToNodeLabels()

	assert.Equal(t, "map-ec2-tags-to-node-labels", cmd.Name())
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"tag-prefix", "namespace", "tag"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestMapEC2TagsToNodeLabels_PassesFlags(t *testing.T) {
	orig := runMapEC2TagsToNodeLabels
	t.Cleanup(func() { runMapEC2TagsToNodeLabels = orig })

	var (
		gotGlobal handlers.GlobalOptions
		gotOpts   handlers.NodeLabelsOptions
	)
	runMapEC2TagsToNodeLabels = func(_ context.Context, global handlers.GlobalOptions, opts handlers.NodeLabelsOptions) error {
		gotGlobal, gotOpts = global, opts
		return nil
	}

	root := Root()
	root.SetArgs([]string{
		"--log-level", "debug",
		"map-ec2-tags-to-node-labels",
		"--tag-prefix", "k8s-label/",
		"--namespace", "example.com",
		"--tag", "Name=time machine",
		"--tag", "a=b,c",
	})
	require.NoError(t, root.Execute())

	assert.Equal(t, handlers.GlobalOptions{LogLevel: "debug"}, gotGlobal)
	assert.Equal(t, handlers.NodeLabelsOptions{
		TagPrefix: "k8s-label/",
		Namespace: "example.com",
		Tags:      []string{"Name=time machine", "a=b,c"},
	}, gotOpts, "tag values are not split on commas")
}

func TestMapEC2TagsToNodeLabels_RejectsArgs(t *testing.T) {
	orig := runMapEC2TagsToNodeLabels
	t.Cleanup(func() { runMapEC2TagsToNodeLabels = orig })
	runMapEC2TagsToNodeLabels = func(context.Context, handlers.GlobalOptions, handlers.NodeLabelsOptions) error {
		t.Fatal("handler must not run")
		return nil
	}

	root := Root()
	root.SetArgs([]string{"map-ec2-tags-to-node-labels", "extra"})
	assert.Error(t, root.Execute())
}
