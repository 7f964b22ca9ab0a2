package timekeeper

// Version is overridden at build time with -ldflags "-X github.com/amirhossein-jamali/timekeeper.Version=..."
var Version = "0.1.0-dev"
