package bitlab

// Version is the release of the library and the bitlab binary.
const Version = "0.1.0"
