package pages

import "fmt"

// DiscoveryError reports that the entry root could not be listed, or that a
// page folder inside it could not be inspected. No partial result accompanies it.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover pages in %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// DuplicateBundleError reports two pages mapping to the same bundle id.
type DuplicateBundleError struct {
	BundleID  string
	Existing  string
	Duplicate string
}

func (e *DuplicateBundleError) Error() string {
	return fmt.Sprintf("bundle %q is already mapped to %s, refusing to remap it to %s", e.BundleID, e.Existing, e.Duplicate)
}

// FileCreationError reports that a stub entry file could not be created.
type FileCreationError struct {
	Path string
	Err  error
}

func (e *FileCreationError) Error() string {
	return fmt.Sprintf("create entry file %s: %v", e.Path, e.Err)
}

func (e *FileCreationError) Unwrap() error {
	return e.Err
}
