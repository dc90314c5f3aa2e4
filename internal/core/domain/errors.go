package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidManifestRoot is returned when the manifest root is empty, absolute or escapes the working directory.
	ErrInvalidManifestRoot = zerr.New("invalid manifest root")

	// ErrEmptyManifest is returned when the manifest lists no dependencies.
	ErrEmptyManifest = zerr.New("manifest has no dependencies")

	// ErrMissingDependencyName is returned when a manifest entry has no name.
	ErrMissingDependencyName = zerr.New("dependency name is required")

	// ErrDuplicateDependency is returned when two manifest entries share a name.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrUnknownDependencyKind is returned when a manifest entry has an unrecognized kind.
	ErrUnknownDependencyKind = zerr.New("unknown dependency kind")

	// ErrMissingSource is returned when a manifest entry has no source URL.
	ErrMissingSource = zerr.New("dependency source is required")

	// ErrDestinationOutsideRoot is returned when a destination does not live under the manifest root.
	ErrDestinationOutsideRoot = zerr.New("destination outside dependency root")

	// ErrRevisionOnFile is returned when a file dependency declares a revision.
	ErrRevisionOnFile = zerr.New("revision is only supported on repositories")

	// ErrManifestParseFailed is returned when the embedded manifest cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse dependency manifest")

	// ErrCloneFailed is returned when a repository cannot be cloned.
	ErrCloneFailed = zerr.New("failed to clone repository")

	// ErrCheckoutFailed is returned when a repository cannot be switched to its revision.
	ErrCheckoutFailed = zerr.New("failed to check out revision")

	// ErrCheckoutDirMissing is returned when the repository to pin does not exist on disk.
	ErrCheckoutDirMissing = zerr.New("checkout directory missing")

	// ErrRevisionNotFound is returned when a revision resolves to neither a branch nor a commit.
	ErrRevisionNotFound = zerr.New("revision not found")

	// ErrDestinationExists is returned when a directory to create is already present.
	ErrDestinationExists = zerr.New("destination already exists")

	// ErrCreateDirFailed is returned when a directory cannot be created.
	ErrCreateDirFailed = zerr.New("failed to create directory")

	// ErrDownloadFailed is returned when an HTTP request cannot be completed.
	ErrDownloadFailed = zerr.New("failed to download file")

	// ErrDownloadStatus is returned when the server answers with a non-success status.
	ErrDownloadStatus = zerr.New("unexpected download status")

	// ErrDownloadWriteFailed is returned when a downloaded body cannot be written to disk.
	ErrDownloadWriteFailed = zerr.New("failed to write downloaded file")

	// ErrFetchAborted is returned when a fatal step failure stops the run.
	ErrFetchAborted = zerr.New("dependency preparation aborted")

	// ErrHeadResolveFailed is returned when a repository HEAD cannot be read.
	ErrHeadResolveFailed = zerr.New("failed to resolve repository head")

	// ErrHashFailed is returned when a file fingerprint cannot be computed.
	ErrHashFailed = zerr.New("failed to hash file")

	// ErrStoreWriteFailed is returned when a fetch record cannot be persisted.
	ErrStoreWriteFailed = zerr.New("failed to write fetch record")

	// ErrRecordMarshalFailed is returned when a fetch record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal fetch record")
)
