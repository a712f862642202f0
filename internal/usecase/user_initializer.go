package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/repo/memory"
	"gopkg.in/yaml.v3"
)

//go:embed default_users.yaml
var defaultUsersData []byte

type DefaultUser struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Role   string `yaml:"role"`
	Status string `yaml:"status"`
}

// SeedDirectory loads the embedded user directory on startup. Entries that
// already exist (matched by email) are left untouched, so a restart never
// resets presence.
func SeedDirectory(userRepo memory.UserRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var defaultUsers []DefaultUser
	if err := yaml.Unmarshal(defaultUsersData, &defaultUsers); err != nil {
		return fmt.Errorf("unmarshal default users: %w", err)
	}

	created := 0
	for _, du := range defaultUsers {
		existing, err := userRepo.GetByEmail(ctx, du.Email)
		if err != nil {
			return fmt.Errorf("check existing user %s: %w", du.Email, err)
		}
		if existing != nil {
			continue
		}
		user := &models.User{
			Name:   du.Name,
			Email:  du.Email,
			Role:   du.Role,
			Status: models.UserStatus(du.Status),
		}
		if err := userRepo.Upsert(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", du.Email, err)
		}
		created++
	}

	log.Infow(ctx, "user directory seeded", "total", len(defaultUsers), "created", created)
	return nil
}
