package domain

// BootstrapData describes the first administrator created on an empty system.
type BootstrapData struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}
