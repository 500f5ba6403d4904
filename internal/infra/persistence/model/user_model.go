package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 values generated by the repository.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"type:varchar(100);not null"`
	UsernameNormalized string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_users_username_normalized"`
	Name               string    `gorm:"type:varchar(100)"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	UserRoles []UserRoleModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:ux_roles_name"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'user_roles' table. The serial ID records assignment order.
type UserRoleModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_user_roles_user_role,priority:1"`
	RoleID    int64     `gorm:"not null;uniqueIndex:ux_user_roles_user_role,priority:2"`
	CreatedAt time.Time

	Role *RoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
