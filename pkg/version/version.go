package version

// Version is set at build time with
// -ldflags "-X github.com/arjungandhi/datepick/pkg/version.Version=v1.2.3"
var Version = "dev"
