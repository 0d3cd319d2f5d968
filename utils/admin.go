package utils

import (
	"log"

	"marketwire/config"
	"marketwire/repository"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin provisions the CMS account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Runs at startup so the login endpoint always has exactly one account to
// check against.
func EnsureAdmin(admins repository.AdminRepository) error {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(config.AppConfig.AdminPassword),
		config.AppConfig.SaltRound,
	)
	if err != nil {
		return err
	}

	if err := admins.Upsert(config.AppConfig.AdminEmail, string(hash)); err != nil {
		return err
	}

	log.Printf("Admin account ready for %s", config.AppConfig.AdminEmail)
	return nil
}
