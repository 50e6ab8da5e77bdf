// seed_superadmin crea (o promueve) la cuenta superadmin inicial. Sin un
// superadmin sembrado nadie puede elevar roles: el registro por API siempre
// nace como "user".
//
// Uso: SEED_SUPERADMIN_EMAIL=... SEED_SUPERADMIN_PASSWORD=... go run ./cmd/seed_superadmin
// Si la cuenta ya existe se promueve a superadmin y se actualiza la password.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/infrastructure/postgres"
	"github.com/invorya/stockroom-api/pkg/config"
)

func main() {
	email := os.Getenv("SEED_SUPERADMIN_EMAIL")
	password := os.Getenv("SEED_SUPERADMIN_PASSWORD")
	name := os.Getenv("SEED_SUPERADMIN_NAME")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_SUPERADMIN_EMAIL y SEED_SUPERADMIN_PASSWORD son obligatorios")
		os.Exit(1)
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "la password debe tener al menos 8 caracteres")
		os.Exit(1)
	}
	if name == "" {
		name = email
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.Role = entity.RoleSuperadmin
		existing.UpdatedAt = now
		if err := users.Update(existing); err != nil {
			fmt.Fprintf(os.Stderr, "Promover usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario %s promovido a superadmin\n", email)
		return
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleSuperadmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Superadmin %s creado\n", email)
}
