package common

var (
	// PackageName is used as the service tag when none is configured
	PackageName = "github.com/ruteri/storage-url"

	// Version is set at build time with -ldflags "-X github.com/ruteri/storage-url/common.Version=..."
	Version = "dev"
)
