package xmldom

// Version is the library version, reported by cmd/xmldom-format.
const Version = "0.1.0"
