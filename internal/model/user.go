// File: internal/model/user.go
package model

import "time"

// User 對應 users 資料表的一筆紀錄。
// PasswordHash 與 UpdatedAt 允許 NULL，因此以指標表示。
type User struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash *string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
