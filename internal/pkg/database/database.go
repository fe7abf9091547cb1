package database

import "gorm.io/gorm"

// DB is the connection opened by SetupDatabase
var DB *gorm.DB

// GetDB returns the connection opened by SetupDatabase
func GetDB() *gorm.DB {
	return DB
}
