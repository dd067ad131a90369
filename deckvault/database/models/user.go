package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
	RoleGuest = "GUEST"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       string `bun:"id,pk"`
	Username string `bun:"username,notnull,unique"`
	APIToken string `bun:"api_token,notnull,unique"`
	Role     string `bun:"role,notnull,default:'USER'"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
