// Package labels turns EC2 instance tags into kubelet node labels.
//
// Tag keys and values are sanitized down to the [A-Za-z0-9._-] character
// set, namespaced under a domain prefix (ec2.amazonaws.com by default) and
// serialized as a comma-separated key=value list suitable for the kubelet
// --node-labels flag. Tag order is preserved as received.
package labels
