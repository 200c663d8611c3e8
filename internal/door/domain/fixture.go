package domain

// Fixture is a YAML document describing initial users, doors and grants.
type Fixture struct {
	Users  []FixtureUser  `yaml:"users"`
	Doors  []string       `yaml:"doors"`
	Grants []FixtureGrant `yaml:"grants"`
}

type FixtureUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Admin    bool   `yaml:"admin"`
}

// FixtureGrant issues a share for UserName on DoorName, optionally already
// validated.
type FixtureGrant struct {
	UserName  string `yaml:"user"`
	DoorName  string `yaml:"door"`
	Validated bool   `yaml:"validated"`
}
