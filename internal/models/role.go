package models

// Role — уровень привилегий персонала
type Role string

const (
	RoleJanitor       Role = "janitor"
	RoleModerator     Role = "moderator"
	RoleDeveloper     Role = "developer"
	RoleAdministrator Role = "administrator"
)

// DefaultRing — кольцо ролей, от младшей к старшей
var DefaultRing = []Role{RoleJanitor, RoleModerator, RoleDeveloper, RoleAdministrator}
