package ec2

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrMetadataUnavailable is returned when instance metadata or tags cannot
// be read.
var ErrMetadataUnavailable = errors.New("instance metadata unavailable")

// MetadataError describes a failed metadata or tag lookup.
type MetadataError struct {
	// Op is the lookup that failed, e.g. "instance-id" or "DescribeTags".
	Op string
	// Code is the AWS API error code, when the service returned one.
	Code string
	Err  error
}

func (e *MetadataError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s): %v", ErrMetadataUnavailable, e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrMetadataUnavailable, e.Op, e.Err)
}

func (e *MetadataError) Unwrap() []error {
	return []error{ErrMetadataUnavailable, e.Err}
}

// newMetadataError wraps err, keeping the API error code when there is one.
func newMetadataError(op string, err error) error {
	return &MetadataError{Op: op, Code: apiErrorCode(err), Err: err}
}

// apiErrorCode extracts the service error code, or "" for transport and
// client-side errors.
func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsAccessDenied reports whether the EC2 API refused the call for lack of
// permissions, usually a missing ec2:DescribeTags on the instance role.
func IsAccessDenied(err error) bool {
	switch apiErrorCode(err) {
	case "UnauthorizedOperation", "AccessDenied", "AccessDeniedException":
		return true
	}
	return false
}
