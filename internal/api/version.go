package api

// Version is the server release version reported by GET /version.
const Version = "1.0.0"
