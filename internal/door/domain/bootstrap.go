package domain

type BootstrapData struct {
	AdminUserName string
	AdminEmail    string
	AdminPassword string
}
