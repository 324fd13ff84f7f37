package abminit

// Version gives the version number of this copy of abminit.
const Version = "0.3.1"
