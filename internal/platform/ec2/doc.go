// Package ec2 reads instance identity from the EC2 instance metadata
// service and instance tags from the EC2 API.
//
// Metadata goes through IMDSv2 (session token first, then the metadata
// path). Region is derived from the availability zone. Tags come from
// DescribeTags filtered by resource id, in the order the API returns them.
// Every failure is reported as [ErrMetadataUnavailable] and is never retried.
package ec2
