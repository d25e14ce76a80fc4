package implementation

import "activitylog-be/internal/pkg/apperror"

// storageErr wraps a database failure so it surfaces to callers as a
// retryable service error instead of degrading into an empty result.
func storageErr(op string, err error) error {
	return apperror.NewStorageUnavailable("storage: "+op, err)
}
