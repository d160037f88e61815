package main

import (
	"fmt"
	"os"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"
	"pieforproviders/app/routes/auth"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: add_user <email> <password> <full name>")
		return
	}
	email, password, fullName := os.Args[1], os.Args[2], os.Args[3]

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Email:                    email,
		Password:                 hash,
		FullName:                 fullName,
		Language:                 "english",
		PhoneType:                models.PhoneCell,
		OptInEmail:               true,
		OptInText:                true,
		ServiceAgreementAccepted: true,
		IsActive:                 true,
	}

	user, err = database.FindOrCreateUser(db, user)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}
	if err := database.ConfirmUser(db, user.ID); err != nil {
		fmt.Printf("Error confirming user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.FullName, user.Email)
}
