package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldPassword = "password"
	FieldUserType = "user_type"
)

type User struct {
	ID       int64  `db:"id"        readonly:"true"`
	Name     string `db:"name"`
	Password string `db:"password"`
	UserType string `db:"user_type"`
}
