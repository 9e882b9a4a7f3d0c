package main

import (
	"gin-inventory/infra"
	"gin-inventory/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()
	defer infra.CloseDB(db)

	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}
}
