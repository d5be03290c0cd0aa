package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the built-in admin role and user",
	Long:  `Seed the database with the system admin role and a default admin account for development and first-run setup.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB, cfg.Database)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			// Children before parents.
			tables := []string{
				"audit_logs",
				"tna_training_rows", "tna_approvals", "tna",
				"evaluasi_objectives", "evaluasi_skills", "evaluasi_feedback", "evaluasi",
				"training_module_weeks", "training_modules",
				"requirements", "terapis",
				"users", "roles",
			}
			for _, t := range tables {
				if err := db.Exec("DELETE FROM " + t).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", t, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		var roleID string
		row := db.Raw("SELECT id FROM roles WHERE name = ?", "admin").Row()
		if err := row.Scan(&roleID); err != nil {
			roleID = uuid.NewString()
			if err := db.Exec(
				`INSERT INTO roles (id, name, description, permissions, is_system, created_at, updated_at)
				 VALUES (?, ?, ?, ?, true, now(), now())`,
				roleID, "admin", "Built-in administrator role", `{"all": true}`,
			).Error; err != nil {
				log.Fatalf("failed to insert admin role: %v", err)
			}
			fmt.Println("Seeded admin role")
		} else {
			fmt.Println("admin role already exists")
		}

		var exists int
		row = db.Raw("SELECT 1 FROM users WHERE username = ?", "admin").Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		if err := db.Exec(
			`INSERT INTO users (id, username, password_hash, full_name, role_id, is_active, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, true, now(), now())`,
			uuid.NewString(), "admin", string(hash), "Administrator", roleID,
		).Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}
		fmt.Println("Seeded admin user: admin")
	},
}
